package extract

import (
	"context"
	"hash/fnv"

	"clipchef/internal/domain"
)

// Compile-time interface check.
var _ domain.Extractor = (*Stub)(nil)

// Stub is an offline extractor used when no endpoint is configured and
// in tests. It returns a fixed plausible draft so the capture flow
// stays usable without credentials.
type Stub struct{}

// Extract returns a canned draft. The title varies with the URL so
// repeated captures are distinguishable in the collection.
func (Stub) Extract(ctx context.Context, url string) (*domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: err}
	}

	h := fnv.New32a()
	h.Write([]byte(url))
	variants := []string{"Skillet Garlic Noodles", "One-Pan Chicken Rice", "Crispy Smashed Potatoes"}
	title := variants[int(h.Sum32())%len(variants)]

	return &domain.Draft{
		Title:      title,
		Category:   "Main",
		Difficulty: "basic",
		PrepTime:   10,
		CookTime:   20,
		Servings:   2,
		Ingredients: []domain.DraftIngredient{
			{Name: "garlic", Amount: "4", Unit: "cloves"},
			{Name: "noodles", Amount: "250", Unit: "grams"},
			{Name: "soy sauce", Amount: "2", Unit: "tablespoons"},
		},
		Steps: []domain.DraftStep{
			{Instruction: "Boil the noodles until just under al dente."},
			{Instruction: "Fry the garlic in oil over medium heat until golden.", TimerMinutes: 2},
			{Instruction: "Toss noodles with the garlic oil and soy sauce.", TimerMinutes: 10},
		},
		Tips: []string{"Reserve some noodle water to loosen the sauce."},
	}, nil
}
