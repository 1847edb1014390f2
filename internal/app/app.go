// Package app wires the core components behind one facade. The UI
// talks only to App; App owns no state of its own. Everything hangs
// off the explicit store, planner, and session objects constructed in
// main and passed in here.
package app

import (
	"context"
	"fmt"
	"time"

	"clipchef/internal/collection"
	"clipchef/internal/cooking"
	"clipchef/internal/domain"
	"clipchef/internal/logger"
	"clipchef/internal/normalize"
	"clipchef/internal/planner"
	"clipchef/internal/shopping"
)

// App exposes the operations the presentation layer consumes.
type App struct {
	extractor domain.Extractor
	recipes   *collection.Store
	plans     *planner.Planner
	sessions  *cooking.Registry
	timers    *cooking.Supervisor
	log       *logger.Logger
}

// New assembles the facade and registers the delete cascade: removing a
// recipe clears its planner slots, invalidates a cooking session bound
// to it, and cancels its step timers.
func New(extractor domain.Extractor, recipes *collection.Store, plans *planner.Planner, sessions *cooking.Registry, log *logger.Logger) *App {
	a := &App{
		extractor: extractor,
		recipes:   recipes,
		plans:     plans,
		sessions:  sessions,
		log:       log,
	}

	recipes.OnDelete(func(id string) {
		plans.ClearRecipe(context.Background(), id)
		sessions.Invalidate(id)
		if a.timers != nil {
			a.timers.CancelRecipe(id)
		}
	})

	return a
}

// AttachTimers binds the step timer supervisor. The supervisor's
// notifications go through the UI, and the UI needs the App first, so
// the supervisor arrives after construction.
func (a *App) AttachTimers(t *cooking.Supervisor) { a.timers = t }

// Capture extracts a recipe from the given video URL, normalizes the
// draft, and saves it. Extraction failures surface as ExtractionError
// (retryable); drafts that cannot become a valid recipe surface as
// ValidationError and nothing is stored.
func (a *App) Capture(ctx context.Context, url string) (*domain.Recipe, error) {
	draft, err := a.extractor.Extract(ctx, url)
	if err != nil {
		a.log.Warn("capture failed: %v", err)
		return nil, err
	}

	r, err := normalize.Normalize(draft, url, time.Now())
	if err != nil {
		a.log.Warn("draft rejected: %v", err)
		return nil, err
	}

	if err := a.recipes.Add(ctx, r); err != nil {
		return nil, fmt.Errorf("store captured recipe: %w", err)
	}
	a.log.Info("captured %q from %s", r.Title, url)
	return r, nil
}

// Recipes lists the collection, most-recent-first.
func (a *App) Recipes() []*domain.Recipe { return a.recipes.List() }

// Recipe returns one recipe by ID.
func (a *App) Recipe(id string) (*domain.Recipe, error) { return a.recipes.Get(id) }

// UpdateRecipe replaces a recipe wholesale.
func (a *App) UpdateRecipe(ctx context.Context, r *domain.Recipe) error {
	return a.recipes.Update(ctx, r)
}

// DeleteRecipe removes a recipe; the registered hooks run the cascade.
func (a *App) DeleteRecipe(ctx context.Context, id string) error {
	return a.recipes.Delete(ctx, id)
}

// ToggleIngredient flips an ingredient's checked flag and writes the
// recipe back through the store. Returns the updated recipe.
func (a *App) ToggleIngredient(ctx context.Context, recipeID, ingredientID string) (*domain.Recipe, error) {
	r, err := a.recipes.Get(recipeID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == ingredientID {
			r.Ingredients[i].Checked = !r.Ingredients[i].Checked
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("ingredient %s: %w", ingredientID, domain.ErrNotFound)
	}

	if err := a.recipes.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ToggleStep flips a step's completed flag and writes the recipe back.
func (a *App) ToggleStep(ctx context.Context, recipeID, stepID string) (*domain.Recipe, error) {
	r, err := a.recipes.Get(recipeID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range r.Steps {
		if r.Steps[i].ID == stepID {
			r.Steps[i].Completed = !r.Steps[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("step %s: %w", stepID, domain.ErrNotFound)
	}

	if err := a.recipes.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SetMeal assigns a recipe to a planner slot. Setting a recipe that is
// not in the collection fails with ErrNotFound; clearing (empty ID)
// always succeeds.
func (a *App) SetMeal(ctx context.Context, date string, slot domain.MealSlot, recipeID string) error {
	if recipeID != "" {
		if _, err := a.recipes.Get(recipeID); err != nil {
			return err
		}
	}
	return a.plans.SetMeal(ctx, date, slot, recipeID)
}

// Week returns the seven DailyPlans starting at startDate.
func (a *App) Week(startDate time.Time) []domain.DailyPlan {
	return a.plans.GetWeek(startDate)
}

// ShoppingList derives the current shopping list. Pure read, never
// cached.
func (a *App) ShoppingList() []domain.ShoppingItem {
	return shopping.Build(a.recipes.List())
}

// StartCooking opens a cooking session on the recipe's steps.
func (a *App) StartCooking(recipeID string) (*cooking.Session, error) {
	r, err := a.recipes.Get(recipeID)
	if err != nil {
		return nil, err
	}
	return a.sessions.Start(r)
}

// ActiveSession returns the running cooking session, if any.
func (a *App) ActiveSession() *cooking.Session { return a.sessions.Active() }

// EndCooking discards the active session.
func (a *App) EndCooking() { a.sessions.End() }

// StartStepTimer begins the countdown for the session's active step, if
// that step is timed.
func (a *App) StartStepTimer(s *cooking.Session) {
	if a.timers == nil {
		return
	}
	a.timers.StartTimer(s.RecipeID(), s.Step())
}

// StepTimerRemaining reports the countdown left on a step's timer.
func (a *App) StepTimerRemaining(stepID string) (time.Duration, bool) {
	if a.timers == nil {
		return 0, false
	}
	return a.timers.Remaining(stepID)
}
