// Package normalize converts untrusted extraction drafts into canonical
// recipes.
//
// A draft without a title cannot become a minimally valid recipe and
// fails with a ValidationError. Everything else defaults: missing
// category becomes
// "General", unknown difficulty becomes basic, absent or malformed
// ingredient and step lists become empty sequences. The draft is never
// trusted for identifiers, checked/completed flags, or timestamps.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/ident"
)

// DefaultCategory is substituted when the extractor supplies none.
const DefaultCategory = "General"

// thumbnailSeed builds the placeholder thumbnail reference for a recipe.
func thumbnailSeed(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/600/400", id)
}

// Normalize produces a canonical recipe from an extraction draft.
// sourceURL is the link the draft was extracted from; now stamps
// CreatedAt. The recipe ID and all ingredient/step IDs are freshly
// generated; nothing identifier-like survives from the draft.
func Normalize(draft *domain.Draft, sourceURL string, now time.Time) (*domain.Recipe, error) {
	if draft == nil {
		return nil, &domain.ValidationError{Field: "title", Reason: "empty draft"}
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, &domain.ValidationError{Field: "title"}
	}

	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = DefaultCategory
	}

	r := &domain.Recipe{
		ID:          ident.New(),
		Title:       title,
		SourceURL:   strings.TrimSpace(sourceURL),
		Category:    category,
		Difficulty:  domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(draft.Difficulty))),
		PrepTime:    clampMinutes(draft.PrepTime),
		CookTime:    clampMinutes(draft.CookTime),
		Servings:    clampServings(draft.Servings),
		Ingredients: normalizeIngredients(draft.Ingredients),
		Steps:       normalizeSteps(draft.Steps),
		Notes:       strings.TrimSpace(draft.Notes),
		Tips:        normalizeTips(draft.Tips),
		Tags:        []string{category},
		CreatedAt:   now.UnixMilli(),
	}
	r.Thumbnail = thumbnailSeed(r.ID)

	return r, nil
}

// normalizeIngredients assigns fresh IDs and resets the checked flag.
// Entries without a name are dropped. Always returns a non-nil slice so
// the snapshot serializes as [] rather than null.
func normalizeIngredients(in []domain.DraftIngredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(in))
	for _, ing := range in {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		out = append(out, domain.Ingredient{
			ID:      ident.New(),
			Name:    name,
			Amount:  strings.TrimSpace(ing.Amount),
			Unit:    strings.TrimSpace(ing.Unit),
			Checked: false,
		})
	}
	return out
}

// normalizeSteps assigns fresh IDs and resets the completed flag.
// Entries without an instruction are dropped; non-positive timers are
// cleared.
func normalizeSteps(in []domain.DraftStep) []domain.Step {
	out := make([]domain.Step, 0, len(in))
	for _, st := range in {
		instruction := strings.TrimSpace(st.Instruction)
		if instruction == "" {
			continue
		}
		step := domain.Step{
			ID:          ident.New(),
			Instruction: instruction,
			Completed:   false,
		}
		if st.TimerMinutes > 0 {
			m := st.TimerMinutes
			step.TimerMinutes = &m
		}
		out = append(out, step)
	}
	return out
}

func normalizeTips(in []string) []string {
	out := make([]string, 0, len(in))
	for _, tip := range in {
		if t := strings.TrimSpace(tip); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func clampMinutes(m int) int {
	if m < 0 {
		return 0
	}
	return m
}

func clampServings(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
