package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"clipchef/internal/domain"
)

// wireDraft is the lenient wire shape of the model's reply. Numeric and
// sequence fields stay raw so one malformed field degrades to its
// default instead of sinking the whole draft.
type wireDraft struct {
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	PrepTime    json.RawMessage `json:"prepTime"`
	CookTime    json.RawMessage `json:"cookTime"`
	Servings    json.RawMessage `json:"servings"`
	Ingredients json.RawMessage `json:"ingredients"`
	Steps       json.RawMessage `json:"steps"`
	Tips        []string        `json:"tips"`
	Notes       string          `json:"notes"`
}

type wireIngredient struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount"`
	Unit   string          `json:"unit"`
}

type wireStep struct {
	Instruction  string          `json:"instruction"`
	TimerMinutes json.RawMessage `json:"timerMinutes"`
}

// ParseDraft parses the model's JSON reply into a draft. Markdown code
// fences around the JSON are tolerated (models add them often). Only a
// structurally broken top-level document is an error; malformed
// ingredient or step lists silently become empty.
func ParseDraft(raw string) (*domain.Draft, error) {
	raw = stripCodeFence(raw)

	var w wireDraft
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}

	d := &domain.Draft{
		Title:      strings.TrimSpace(w.Title),
		Category:   strings.TrimSpace(w.Category),
		Difficulty: strings.TrimSpace(w.Difficulty),
		PrepTime:   asInt(w.PrepTime),
		CookTime:   asInt(w.CookTime),
		Servings:   asInt(w.Servings),
		Notes:      strings.TrimSpace(w.Notes),
		Tips:       w.Tips,
	}

	var ings []wireIngredient
	if len(w.Ingredients) > 0 && json.Unmarshal(w.Ingredients, &ings) == nil {
		for _, ing := range ings {
			d.Ingredients = append(d.Ingredients, domain.DraftIngredient{
				Name:   strings.TrimSpace(ing.Name),
				Amount: asString(ing.Amount),
				Unit:   strings.TrimSpace(ing.Unit),
			})
		}
	}

	var steps []wireStep
	if len(w.Steps) > 0 && json.Unmarshal(w.Steps, &steps) == nil {
		for _, st := range steps {
			d.Steps = append(d.Steps, domain.DraftStep{
				Instruction:  strings.TrimSpace(st.Instruction),
				TimerMinutes: asInt(st.TimerMinutes),
			})
		}
	}

	return d, nil
}

// asInt reads a raw JSON value as a whole number of minutes. Accepts
// numbers (including floats, which get truncated) and numeric strings.
// Anything else is 0.
func asInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

// asString reads a raw JSON value as a display string. Numbers are
// formatted back to text, since "amount" regularly comes back as 2
// instead of "2".
func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// stripCodeFence removes a surrounding markdown code fence if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
