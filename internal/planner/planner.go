// Package planner maps calendar days to recipe references.
//
// Slots hold recipe IDs as weak references. The planner never assumes a
// referenced recipe still exists: deletion cascades through ClearRecipe
// so a dangling reference is never observable by a reader.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// Planner holds at most one DailyPlan per calendar date and keeps its
// state synchronized with the persistence snapshot, same discipline as
// the recipe collection.
type Planner struct {
	mu          sync.RWMutex
	days        map[string]*domain.DailyPlan // keyed by PlanDateLayout date
	persistence domain.Persistence
	log         *logger.Logger
}

// Open creates a planner hydrated from the persistence snapshot. A
// corrupt snapshot starts the planner empty; the returned error wraps
// ErrCorruptSnapshot and the planner is valid either way.
func Open(ctx context.Context, p domain.Persistence, log *logger.Logger) (*Planner, error) {
	pl := &Planner{
		days:        make(map[string]*domain.DailyPlan),
		persistence: p,
		log:         log,
	}

	value, ok, err := p.Load(ctx, domain.KeyPlanner)
	if err != nil {
		log.Warn("planner snapshot unreadable, starting empty: %v", err)
		return pl, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if !ok {
		log.Debug("no planner snapshot, starting empty")
		return pl, nil
	}

	var days []*domain.DailyPlan
	if err := json.Unmarshal(value, &days); err != nil {
		log.Warn("planner snapshot corrupt, starting empty: %v", err)
		return pl, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}

	for _, day := range days {
		// One entry per date; later duplicates in a tampered snapshot lose.
		if _, exists := pl.days[day.Date]; !exists {
			pl.days[day.Date] = day
		}
	}
	log.Info("loaded %d planned days", len(pl.days))
	return pl, nil
}

// SetMeal assigns a recipe to a meal slot on the given date. An empty
// recipeID clears the slot. Days with no remaining assignments are
// dropped from the snapshot.
func (pl *Planner) SetMeal(ctx context.Context, date string, slot domain.MealSlot, recipeID string) error {
	if !slot.Valid() {
		return fmt.Errorf("unknown meal slot %q", slot)
	}
	if _, err := time.Parse(domain.PlanDateLayout, date); err != nil {
		return fmt.Errorf("bad plan date %q: %w", date, err)
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	day, ok := pl.days[date]
	if !ok {
		if recipeID == "" {
			return nil // clearing an absent slot is a no-op
		}
		day = &domain.DailyPlan{Date: date}
		pl.days[date] = day
	}

	day.SetSlot(slot, recipeID)
	if day.Empty() {
		delete(pl.days, date)
	}

	pl.log.Debug("plan %s %s -> %q", date, slot, recipeID)
	pl.flush(ctx)
	return nil
}

// GetWeek returns seven DailyPlans starting at startDate, in day order.
// Days with no assignments come back as empty plans, so callers always
// see exactly seven entries.
func (pl *Planner) GetWeek(startDate time.Time) []domain.DailyPlan {
	pl.mu.RLock()
	defer pl.mu.RUnlock()

	out := make([]domain.DailyPlan, 0, 7)
	for i := 0; i < 7; i++ {
		date := domain.FormatPlanDate(startDate.AddDate(0, 0, i))
		if day, ok := pl.days[date]; ok {
			out = append(out, *day)
		} else {
			out = append(out, domain.DailyPlan{Date: date})
		}
	}
	return out
}

// ClearRecipe empties every slot referencing the given recipe ID. This
// is the delete cascade: expected maintenance, never an error.
func (pl *Planner) ClearRecipe(ctx context.Context, recipeID string) {
	if recipeID == "" {
		return
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	cleared := 0
	for date, day := range pl.days {
		for _, slot := range domain.Slots {
			if day.Slot(slot) == recipeID {
				day.SetSlot(slot, "")
				cleared++
			}
		}
		if day.Empty() {
			delete(pl.days, date)
		}
	}

	if cleared > 0 {
		pl.log.Info("cleared %d planner slot(s) for deleted recipe %s", cleared, recipeID)
		pl.flush(ctx)
	}
}

// flush serializes the planned days, date-sorted, and hands them to
// persistence. Save errors are logged and swallowed. Callers hold pl.mu.
func (pl *Planner) flush(ctx context.Context) {
	days := make([]*domain.DailyPlan, 0, len(pl.days))
	for _, day := range pl.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	value, err := json.Marshal(days)
	if err != nil {
		pl.log.Error("marshal planner snapshot: %v", err)
		return
	}
	if err := pl.persistence.Save(ctx, domain.KeyPlanner, value); err != nil {
		pl.log.Error("save planner snapshot: %v", err)
	}
}
