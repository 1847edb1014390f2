package cooking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// Option configures the supervisor.
type Option func(*Supervisor)

// WithTickInterval sets how often the supervisor decrements timers.
func WithTickInterval(d time.Duration) Option {
	return func(s *Supervisor) {
		s.tickInterval = d
	}
}

// stepTimer is one running countdown bound to a recipe's step.
type stepTimer struct {
	recipeID  string
	label     string
	remaining time.Duration
}

// Supervisor runs step-timer countdowns in the background and
// announces expiry through the notifier. Timed steps carry a minute
// count; the user starts the countdown explicitly from the cooking
// view.
type Supervisor struct {
	notifier     domain.Notifier
	log          *logger.Logger
	tickInterval time.Duration

	mu      sync.Mutex
	timers  map[string]*stepTimer // keyed by step ID
	running bool
	cancel  context.CancelFunc
}

// NewSupervisor creates a timer supervisor.
func NewSupervisor(notifier domain.Notifier, log *logger.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		notifier:     notifier,
		log:          log,
		tickInterval: time.Second,
		timers:       make(map[string]*stepTimer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background tick loop. Non-blocking.
func (s *Supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("timer supervisor already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	go s.loop(childCtx)
	s.log.Info("timer supervisor started (tick=%s)", s.tickInterval)
}

// Stop shuts the supervisor down and drops all timers.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cancel()
	s.running = false
	s.timers = make(map[string]*stepTimer)
	s.log.Info("timer supervisor stopped")
}

// StartTimer begins a countdown for a timed step. Restarting a step's
// timer resets it.
func (s *Supervisor) StartTimer(recipeID string, step domain.Step) {
	if step.TimerMinutes == nil || *step.TimerMinutes <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[step.ID] = &stepTimer{
		recipeID:  recipeID,
		label:     step.Instruction,
		remaining: time.Duration(*step.TimerMinutes) * time.Minute,
	}
	s.log.Debug("started %dm timer for step %s", *step.TimerMinutes, step.ID)
}

// Remaining returns the countdown left for a step, or ok=false if no
// timer is running for it.
func (s *Supervisor) Remaining(stepID string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[stepID]
	if !ok {
		return 0, false
	}
	return t.remaining, true
}

// CancelRecipe drops every timer bound to the given recipe. Wired as a
// collection delete hook alongside session invalidation.
func (s *Supervisor) CancelRecipe(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		if t.recipeID == recipeID {
			delete(s.timers, id)
			s.log.Debug("cancelled timer for step %s", id)
		}
	}
}

// loop is the main tick loop.
func (s *Supervisor) loop(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one cycle: decrement running timers, announce the expired
// ones, and drop them.
func (s *Supervisor) tick(ctx context.Context) {
	s.mu.Lock()
	var fired []*stepTimer
	for id, t := range s.timers {
		t.remaining -= s.tickInterval
		if t.remaining <= 0 {
			fired = append(fired, t)
			delete(s.timers, id)
		}
	}
	s.mu.Unlock()

	for _, t := range fired {
		msg := fmt.Sprintf("Timer done: %s", truncateLabel(t.label, 60))
		if err := s.notifier.NotifyUrgent(ctx, msg); err != nil {
			s.log.Error("timer notify: %v", err)
		}
	}
}

func truncateLabel(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
