// Package persist provides snapshot persistence implementations behind
// the domain.Persistence port.
package persist

import (
	"context"
	"sync"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// Compile-time interface check.
var _ domain.Persistence = (*Memory)(nil)

// Memory is an in-memory snapshot store. Used in tests and when the app
// runs without a data file. Safe for concurrent access.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	log       *logger.Logger
}

// NewMemory creates an empty in-memory snapshot store.
func NewMemory(log *logger.Logger) *Memory {
	return &Memory{
		snapshots: make(map[string][]byte),
		log:       log,
	}
}

// Load returns the last snapshot saved under key, or ok=false if none.
func (m *Memory) Load(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.snapshots[key]
	if !ok {
		m.log.Debug("no snapshot for %q", key)
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Save stores a snapshot under key, replacing any previous value.
func (m *Memory) Save(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.snapshots[key] = stored
	m.log.Debug("saved snapshot %q (%d bytes)", key, len(value))
	return nil
}
