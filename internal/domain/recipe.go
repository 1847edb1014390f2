// Package domain defines the core types and interfaces for the recipe
// capture app. All other packages depend on domain; domain depends on
// nothing.
package domain

import "time"

// Recipe is a canonical, validated recipe record. Field names and JSON
// tags define the persistence snapshot format exactly.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	SourceURL   string       `json:"sourceUrl,omitempty"`
	Thumbnail   string       `json:"thumbnail"`
	Category    string       `json:"category"`
	Difficulty  Difficulty   `json:"difficulty"`
	PrepTime    int          `json:"prepTime"` // minutes
	CookTime    int          `json:"cookTime"` // minutes
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	Notes       string       `json:"notes"`
	Tips        []string     `json:"tips"`
	Tags        []string     `json:"tags"`
	CreatedAt   int64        `json:"createdAt"` // unix milliseconds
}

// CreatedTime returns the creation timestamp as a time.Time.
func (r *Recipe) CreatedTime() time.Time {
	return time.UnixMilli(r.CreatedAt)
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Clone returns a deep copy of the recipe. Stores hand out clones so
// callers can mutate freely and commit through Update.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	cp.Steps = append([]Step(nil), r.Steps...)
	cp.Tips = append([]string(nil), r.Tips...)
	cp.Tags = append([]string(nil), r.Tags...)
	if r.Steps != nil {
		for i, s := range r.Steps {
			if s.TimerMinutes != nil {
				m := *s.TimerMinutes
				cp.Steps[i].TimerMinutes = &m
			}
		}
	}
	return &cp
}

// Ingredient is a single ingredient line, owned exclusively by its
// parent recipe. Amount is a display string and need not be numeric.
type Ingredient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Unit    string `json:"unit"`
	Checked bool   `json:"checked"`
}

// Step is a single instruction, owned exclusively by its parent recipe.
type Step struct {
	ID           string `json:"id"`
	Instruction  string `json:"instruction"`
	TimerMinutes *int   `json:"timerMinutes,omitempty"` // nil if untimed
	Completed    bool   `json:"completed"`
}

// Difficulty is the skill level of a recipe.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty maps a free-form difficulty label to the enum. The
// extraction provider answers in Spanish, so those labels are accepted
// too. Unknown labels map to basic.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "basic", "básico", "basico":
		return DifficultyBasic
	case "intermediate", "intermedio":
		return DifficultyIntermediate
	case "advanced", "avanzado":
		return DifficultyAdvanced
	default:
		return DifficultyBasic
	}
}
