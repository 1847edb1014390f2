// Package collection maintains the authoritative set of saved recipes.
//
// The store is ordered most-recent-first and keeps its full state
// synchronized with a persistence snapshot: every mutation flushes, and
// construction hydrates. Flushes are fire-and-forget: a failed save is
// logged, never propagated, so a crash between a mutation and its
// flush can lose that mutation.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// DeleteHook runs after a recipe is removed. The planner registers one
// to clear dangling meal slots; the cooking registry registers one to
// invalidate sessions bound to the recipe.
type DeleteHook func(recipeID string)

// Store holds the recipe collection. Safe for concurrent access,
// although the app drives it from a single writer.
type Store struct {
	mu          sync.RWMutex
	recipes     []*domain.Recipe // most-recent-first
	persistence domain.Persistence
	log         *logger.Logger
	hooks       []DeleteHook
}

// Open creates a store hydrated from the persistence snapshot. If the
// stored snapshot does not parse, the store starts empty and the
// returned error wraps ErrCorruptSnapshot. The store itself is valid
// and usable either way.
func Open(ctx context.Context, p domain.Persistence, log *logger.Logger) (*Store, error) {
	s := &Store{persistence: p, log: log}

	value, ok, err := p.Load(ctx, domain.KeyRecipes)
	if err != nil {
		log.Warn("recipes snapshot unreadable, starting empty: %v", err)
		return s, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if !ok {
		log.Debug("no recipes snapshot, starting empty")
		return s, nil
	}

	var recipes []*domain.Recipe
	if err := json.Unmarshal(value, &recipes); err != nil {
		log.Warn("recipes snapshot corrupt, starting empty: %v", err)
		return s, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}

	s.recipes = recipes
	log.Info("loaded %d recipes", len(recipes))
	return s, nil
}

// OnDelete registers a hook fired after every successful Delete.
func (s *Store) OnDelete(hook DeleteHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Add inserts a recipe at the head of the collection. Fails with
// ErrAlreadyExists if the ID is already present.
func (s *Store) Add(ctx context.Context, r *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(r.ID) >= 0 {
		return fmt.Errorf("recipe %s: %w", r.ID, domain.ErrAlreadyExists)
	}

	s.recipes = append([]*domain.Recipe{r.Clone()}, s.recipes...)
	s.log.Debug("added recipe %s (%q), total=%d", r.ID, r.Title, len(s.recipes))
	s.flush(ctx)
	return nil
}

// Update replaces the recipe with the matching ID wholesale. Returns
// ErrNotFound if the ID is absent.
func (s *Store) Update(ctx context.Context, r *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(r.ID)
	if i < 0 {
		return fmt.Errorf("recipe %s: %w", r.ID, domain.ErrNotFound)
	}

	s.recipes[i] = r.Clone()
	s.log.Debug("updated recipe %s (%q)", r.ID, r.Title)
	s.flush(ctx)
	return nil
}

// Delete removes the recipe and fires the registered delete hooks so
// planner slots and cooking sessions referencing it are cleaned up.
// Returns ErrNotFound if the ID is absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	hooks := append([]DeleteHook(nil), s.hooks...)
	s.log.Info("deleted recipe %s, total=%d", id, len(s.recipes))
	s.flush(ctx)
	s.mu.Unlock()

	// Hooks run outside the lock: they mutate other aggregates that may
	// re-enter persistence.
	for _, hook := range hooks {
		hook(id)
	}
	return nil
}

// Get returns a copy of the recipe with the given ID.
func (s *Store) Get(id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.find(id)
	if i < 0 {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return s.recipes[i].Clone(), nil
}

// List returns a snapshot of the collection, most-recent-first.
func (s *Store) List() []*domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of saved recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// find returns the index of the recipe with the given ID, or -1.
// Callers hold s.mu.
func (s *Store) find(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// flush serializes the collection and hands it to persistence. Save
// errors are logged and swallowed: durability is best-effort and the
// in-memory state stays authoritative. Callers hold s.mu.
func (s *Store) flush(ctx context.Context) {
	value, err := json.Marshal(s.recipes)
	if err != nil {
		s.log.Error("marshal recipes snapshot: %v", err)
		return
	}
	if err := s.persistence.Save(ctx, domain.KeyRecipes, value); err != nil {
		s.log.Error("save recipes snapshot: %v", err)
	}
}
