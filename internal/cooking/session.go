// Package cooking implements the step-by-step cooking mode: a per-recipe
// session tracking sequential progress, plus a background supervisor for
// step timers.
package cooking

import (
	"fmt"

	"clipchef/internal/domain"
)

// Session is the ephemeral cooking-mode state for one recipe. It holds
// a snapshot of the steps taken at start and an active step index with
// invariant 0 <= index < len(steps). Sessions are never persisted;
// closing the view discards them.
type Session struct {
	recipeID string
	steps    []domain.Step
	index    int
	done     bool
}

// StartSession begins cooking mode at step 0. A recipe without steps
// cannot be cooked and fails with ErrNoSteps.
func StartSession(r *domain.Recipe) (*Session, error) {
	if len(r.Steps) == 0 {
		return nil, fmt.Errorf("recipe %s: %w", r.ID, domain.ErrNoSteps)
	}
	return &Session{
		recipeID: r.ID,
		steps:    append([]domain.Step(nil), r.Steps...),
	}, nil
}

// RecipeID returns the recipe this session is bound to.
func (s *Session) RecipeID() string { return s.recipeID }

// Index returns the active step index.
func (s *Session) Index() int { return s.index }

// Len returns the number of steps.
func (s *Session) Len() int { return len(s.steps) }

// Step returns the active step.
func (s *Session) Step() domain.Step { return s.steps[s.index] }

// Done reports whether the session has terminated (advanced past the
// last step or invalidated). A done session is exited, not resumed.
func (s *Session) Done() bool { return s.done }

// Next advances to the following step. At the last step it terminates
// the session instead and reports done=true.
func (s *Session) Next() (done bool) {
	if s.done {
		return true
	}
	if s.index < len(s.steps)-1 {
		s.index++
		return false
	}
	s.done = true
	return true
}

// Prev moves back one step. At step 0 it is a no-op.
func (s *Session) Prev() {
	if s.done {
		return
	}
	if s.index > 0 {
		s.index--
	}
}

// invalidate terminates the session, used when the underlying recipe is
// deleted while cooking.
func (s *Session) invalidate() { s.done = true }
