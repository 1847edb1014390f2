package cooking

import (
	"context"
	"sync"
	"testing"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// mockNotifier collects notifications for testing.
type mockNotifier struct {
	mu     sync.Mutex
	urgent []string
}

func (m *mockNotifier) Notify(_ context.Context, msg string) error {
	return nil
}

func (m *mockNotifier) NotifyUrgent(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgent = append(m.urgent, msg)
	return nil
}

func (m *mockNotifier) urgentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.urgent)
}

func timedStep(id string, minutes int) domain.Step {
	return domain.Step{ID: id, Instruction: "Simmer the sauce", TimerMinutes: &minutes}
}

func TestSupervisorCountdown(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	notifier := &mockNotifier{}
	ctx := context.Background()

	// Drive ticks by hand for determinism: one tick equals one minute.
	sup := NewSupervisor(notifier, log, WithTickInterval(time.Minute))
	sup.StartTimer("r1", timedStep("s1", 2))

	if remaining, ok := sup.Remaining("s1"); !ok || remaining != 2*time.Minute {
		t.Fatalf("remaining = %v ok=%v, want 2m", remaining, ok)
	}

	sup.tick(ctx)
	if remaining, ok := sup.Remaining("s1"); !ok || remaining != time.Minute {
		t.Fatalf("after 1 tick remaining = %v ok=%v, want 1m", remaining, ok)
	}
	if notifier.urgentCount() != 0 {
		t.Fatal("timer fired early")
	}

	sup.tick(ctx)
	if _, ok := sup.Remaining("s1"); ok {
		t.Fatal("fired timer should be dropped")
	}
	if notifier.urgentCount() != 1 {
		t.Fatalf("urgent notifications = %d, want 1", notifier.urgentCount())
	}
}

func TestSupervisorIgnoresUntimedSteps(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	sup := NewSupervisor(&mockNotifier{}, log)

	sup.StartTimer("r1", domain.Step{ID: "s1", Instruction: "Chop"})
	if _, ok := sup.Remaining("s1"); ok {
		t.Fatal("untimed step got a timer")
	}

	zero := 0
	sup.StartTimer("r1", domain.Step{ID: "s2", Instruction: "Rest", TimerMinutes: &zero})
	if _, ok := sup.Remaining("s2"); ok {
		t.Fatal("zero-minute step got a timer")
	}
}

func TestSupervisorCancelRecipe(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	notifier := &mockNotifier{}
	sup := NewSupervisor(notifier, log, WithTickInterval(time.Minute))

	sup.StartTimer("r1", timedStep("s1", 5))
	sup.StartTimer("r2", timedStep("s2", 5))

	sup.CancelRecipe("r1")
	if _, ok := sup.Remaining("s1"); ok {
		t.Fatal("timer survived recipe cancellation")
	}
	if _, ok := sup.Remaining("s2"); !ok {
		t.Fatal("unrelated recipe's timer was cancelled")
	}

	// A cancelled timer never fires.
	for i := 0; i < 10; i++ {
		sup.tick(context.Background())
	}
	if notifier.urgentCount() != 1 { // only s2
		t.Fatalf("urgent notifications = %d, want 1", notifier.urgentCount())
	}
}

func TestSupervisorStartStop(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	sup := NewSupervisor(&mockNotifier{}, log, WithTickInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sup.Start(ctx)
	sup.Start(ctx) // double start is a logged no-op
	sup.StartTimer("r1", timedStep("s1", 5))
	sup.Stop()

	if _, ok := sup.Remaining("s1"); ok {
		t.Fatal("Stop should drop all timers")
	}
	sup.Stop() // double stop is fine
}
