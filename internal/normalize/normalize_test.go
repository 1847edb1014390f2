package normalize

import (
	"errors"
	"testing"
	"time"

	"clipchef/internal/domain"
)

func sampleDraft() *domain.Draft {
	return &domain.Draft{
		Title:      "Tarta de Manzana",
		Category:   "Postre",
		Difficulty: "intermedio",
		PrepTime:   20,
		CookTime:   45,
		Servings:   6,
		Ingredients: []domain.DraftIngredient{
			{Name: "apples", Amount: "4", Unit: "pieces"},
			{Name: "flour", Amount: "2", Unit: "cups"},
		},
		Steps: []domain.DraftStep{
			{Instruction: "Peel and slice the apples."},
			{Instruction: "Bake until golden.", TimerMinutes: 45},
		},
		Notes: "Best served warm.",
		Tips:  []string{"Use tart apples."},
	}
}

func TestNormalizeFull(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	r, err := Normalize(sampleDraft(), "https://example.com/v/123", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.ID == "" {
		t.Fatal("recipe ID is empty")
	}
	if r.Title != "Tarta de Manzana" {
		t.Fatalf("title = %q", r.Title)
	}
	if r.Category != "Postre" {
		t.Fatalf("category = %q", r.Category)
	}
	if r.Difficulty != domain.DifficultyIntermediate {
		t.Fatalf("difficulty = %q", r.Difficulty)
	}
	if r.SourceURL != "https://example.com/v/123" {
		t.Fatalf("sourceUrl = %q", r.SourceURL)
	}
	if r.Thumbnail == "" {
		t.Fatal("thumbnail placeholder missing")
	}
	if r.CreatedAt != now.UnixMilli() {
		t.Fatalf("createdAt = %d, want %d", r.CreatedAt, now.UnixMilli())
	}
	if len(r.Tags) != 1 || r.Tags[0] != "Postre" {
		t.Fatalf("tags = %v, want [Postre]", r.Tags)
	}
	if len(r.Ingredients) != 2 || len(r.Steps) != 2 {
		t.Fatalf("got %d ingredients, %d steps", len(r.Ingredients), len(r.Steps))
	}
	if r.Steps[0].TimerMinutes != nil {
		t.Fatal("untimed step got a timer")
	}
	if r.Steps[1].TimerMinutes == nil || *r.Steps[1].TimerMinutes != 45 {
		t.Fatalf("step timer = %v, want 45", r.Steps[1].TimerMinutes)
	}
}

func TestNormalizeMissingTitle(t *testing.T) {
	tests := []struct {
		name  string
		draft *domain.Draft
	}{
		{"nil draft", nil},
		{"empty title", &domain.Draft{Category: "Main"}},
		{"whitespace title", &domain.Draft{Title: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.draft, "", time.Now())
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != "title" {
				t.Fatalf("field = %q, want title", verr.Field)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	r, err := Normalize(&domain.Draft{Title: "Toast"}, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Category != DefaultCategory {
		t.Fatalf("category = %q, want %q", r.Category, DefaultCategory)
	}
	if r.Difficulty != domain.DifficultyBasic {
		t.Fatalf("difficulty = %q, want basic", r.Difficulty)
	}
	if r.Ingredients == nil || len(r.Ingredients) != 0 {
		t.Fatalf("ingredients = %#v, want empty slice", r.Ingredients)
	}
	if r.Steps == nil || len(r.Steps) != 0 {
		t.Fatalf("steps = %#v, want empty slice", r.Steps)
	}
	if r.Servings != 1 {
		t.Fatalf("servings = %d, want 1", r.Servings)
	}
	if len(r.Tags) != 1 || r.Tags[0] != DefaultCategory {
		t.Fatalf("tags = %v", r.Tags)
	}
}

func TestNormalizeDropsMalformedEntries(t *testing.T) {
	draft := &domain.Draft{
		Title: "Soup",
		Ingredients: []domain.DraftIngredient{
			{Name: "  ", Amount: "1", Unit: "cup"},
			{Name: "carrot", Amount: "2", Unit: "pieces"},
		},
		Steps: []domain.DraftStep{
			{Instruction: ""},
			{Instruction: "Simmer.", TimerMinutes: -3},
		},
	}

	r, err := Normalize(draft, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0].Name != "carrot" {
		t.Fatalf("ingredients = %#v", r.Ingredients)
	}
	if len(r.Steps) != 1 {
		t.Fatalf("steps = %#v", r.Steps)
	}
	if r.Steps[0].TimerMinutes != nil {
		t.Fatal("negative timer should be cleared")
	}
}

func TestNormalizeFreshUniqueIDs(t *testing.T) {
	r, err := Normalize(sampleDraft(), "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{r.ID: true}
	for _, ing := range r.Ingredients {
		if ing.ID == "" || seen[ing.ID] {
			t.Fatalf("duplicate or empty ingredient ID %q", ing.ID)
		}
		seen[ing.ID] = true
		if ing.Checked {
			t.Fatal("checked not reset to false")
		}
	}
	for _, st := range r.Steps {
		if st.ID == "" || seen[st.ID] {
			t.Fatalf("duplicate or empty step ID %q", st.ID)
		}
		seen[st.ID] = true
		if st.Completed {
			t.Fatal("completed not reset to false")
		}
	}

	// Two normalizations of the same draft never share a recipe ID.
	r2, err := Normalize(sampleDraft(), "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r2.ID == r.ID {
		t.Fatal("recipe IDs must be freshly generated per normalization")
	}
}

func TestNormalizeClampsTimes(t *testing.T) {
	r, err := Normalize(&domain.Draft{Title: "X", PrepTime: -5, CookTime: -1, Servings: 0}, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.PrepTime != 0 || r.CookTime != 0 {
		t.Fatalf("times = %d/%d, want 0/0", r.PrepTime, r.CookTime)
	}
	if r.Servings != 1 {
		t.Fatalf("servings = %d, want 1", r.Servings)
	}
}
