package extract

import (
	"testing"
)

func TestParseDraftPlain(t *testing.T) {
	raw := `{
        "title": "Shakshuka",
        "category": "Breakfast",
        "difficulty": "basic",
        "prepTime": 10,
        "cookTime": 20,
        "servings": 2,
        "ingredients": [
            {"name": "eggs", "amount": "4", "unit": "pieces"},
            {"name": "tomatoes", "amount": 3, "unit": "pieces"}
        ],
        "steps": [
            {"instruction": "Simmer the tomatoes.", "timerMinutes": 10},
            {"instruction": "Crack in the eggs."}
        ],
        "tips": ["Serve with bread."],
        "notes": "Spice to taste."
    }`

	d, err := ParseDraft(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Title != "Shakshuka" || d.Category != "Breakfast" {
		t.Fatalf("draft = %+v", d)
	}
	if d.PrepTime != 10 || d.CookTime != 20 || d.Servings != 2 {
		t.Fatalf("times = %d/%d/%d", d.PrepTime, d.CookTime, d.Servings)
	}
	if len(d.Ingredients) != 2 {
		t.Fatalf("ingredients = %+v", d.Ingredients)
	}
	// Numeric amounts are converted to display strings.
	if d.Ingredients[1].Amount != "3" {
		t.Fatalf("amount = %q, want \"3\"", d.Ingredients[1].Amount)
	}
	if len(d.Steps) != 2 || d.Steps[0].TimerMinutes != 10 || d.Steps[1].TimerMinutes != 0 {
		t.Fatalf("steps = %+v", d.Steps)
	}
}

func TestParseDraftCodeFence(t *testing.T) {
	raw := "```json\n{\"title\": \"Toast\"}\n```"
	d, err := ParseDraft(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Title != "Toast" {
		t.Fatalf("title = %q", d.Title)
	}
}

func TestParseDraftLenientFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, d *dcheck)
	}{
		{
			name: "string minutes",
			raw:  `{"title":"X","prepTime":"15"}`,
			want: func(t *testing.T, d *dcheck) {
				if d.prep != 15 {
					t.Fatalf("prepTime = %d, want 15", d.prep)
				}
			},
		},
		{
			name: "float minutes truncate",
			raw:  `{"title":"X","cookTime":12.9}`,
			want: func(t *testing.T, d *dcheck) {
				if d.cook != 12 {
					t.Fatalf("cookTime = %d, want 12", d.cook)
				}
			},
		},
		{
			name: "garbage minutes default to zero",
			raw:  `{"title":"X","prepTime":"soon"}`,
			want: func(t *testing.T, d *dcheck) {
				if d.prep != 0 {
					t.Fatalf("prepTime = %d, want 0", d.prep)
				}
			},
		},
		{
			name: "malformed ingredient list becomes empty",
			raw:  `{"title":"X","ingredients":"flour, eggs"}`,
			want: func(t *testing.T, d *dcheck) {
				if d.ings != 0 {
					t.Fatalf("ingredients = %d, want 0", d.ings)
				}
			},
		},
		{
			name: "malformed step list becomes empty",
			raw:  `{"title":"X","steps":{"oops":true}}`,
			want: func(t *testing.T, d *dcheck) {
				if d.steps != 0 {
					t.Fatalf("steps = %d, want 0", d.steps)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDraft(tt.raw)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tt.want(t, &dcheck{
				prep:  d.PrepTime,
				cook:  d.CookTime,
				ings:  len(d.Ingredients),
				steps: len(d.Steps),
			})
		})
	}
}

// dcheck flattens the fields the lenient-parsing table asserts on.
type dcheck struct {
	prep, cook, ings, steps int
}

func TestParseDraftBroken(t *testing.T) {
	if _, err := ParseDraft(`not json at all`); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
	if _, err := ParseDraft(`[1, 2, 3]`); err == nil {
		t.Fatal("expected error for non-object reply")
	}
}
