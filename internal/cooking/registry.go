package cooking

import (
	"sync"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// Registry tracks the active cooking session so recipe deletion can
// invalidate it. The app runs at most one session at a time (one recipe
// view open), but the registry doesn't rely on that.
type Registry struct {
	mu     sync.Mutex
	active *Session
	log    *logger.Logger
}

// NewRegistry creates an empty session registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{log: log}
}

// Start opens a cooking session for the recipe and makes it the active
// one, replacing any previous session.
func (g *Registry) Start(r *domain.Recipe) (*Session, error) {
	s, err := StartSession(r)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = s
	g.log.Debug("cooking session started for recipe %s (%d steps)", r.ID, s.Len())
	return s, nil
}

// Active returns the current session, or nil if none is running.
func (g *Registry) Active() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active != nil && g.active.Done() {
		g.active = nil
	}
	return g.active
}

// End discards the active session (cooking view closed).
func (g *Registry) End() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = nil
}

// Invalidate terminates the active session if it is bound to the given
// recipe. Wired as a collection delete hook.
func (g *Registry) Invalidate(recipeID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active == nil || g.active.RecipeID() != recipeID {
		return
	}
	g.active.invalidate()
	g.active = nil
	g.log.Info("cooking session invalidated, recipe %s deleted", recipeID)
}
