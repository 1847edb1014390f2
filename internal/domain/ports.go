package domain

import "context"

// Extractor turns a short-video URL into a recipe draft. The reference
// implementation calls an LLM over HTTP; tests use a stub. The draft is
// untrusted and possibly empty; callers run it through the normalizer
// before storing anything.
type Extractor interface {
	Extract(ctx context.Context, url string) (*Draft, error)
}

// Persistence is the snapshot store the collection and planner flush to.
// Implementations can be in-memory, file-based, or SQLite. Load returns
// ok=false when the key has never been saved.
type Persistence interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// Persistence keys. Each holds the full JSON snapshot of one aggregate.
const (
	KeyRecipes = "recipes"
	KeyPlanner = "planner"
)

// Notifier delivers messages to the user. Implementations can write to
// the terminal UI or stdout; the cooking timer supervisor uses it to
// announce expired step timers.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
