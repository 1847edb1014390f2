package domain

import "time"

// PlanDateLayout is the calendar-date format used for planner keys.
const PlanDateLayout = "2006-01-02"

// MealSlot names one of the three meals in a DailyPlan.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// Slots lists the meal slots in display order.
var Slots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// Valid reports whether the slot is one of the three known meals.
func (s MealSlot) Valid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner:
		return true
	}
	return false
}

// DailyPlan assigns recipes to one calendar day. Each slot holds a
// recipe ID as a weak reference: the recipe may be deleted
// independently, in which case the slot reads as empty. An empty
// string means no assignment.
type DailyPlan struct {
	Date      string `json:"date"` // PlanDateLayout
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}

// Slot returns the recipe ID assigned to the given meal.
func (p *DailyPlan) Slot(s MealSlot) string {
	switch s {
	case SlotBreakfast:
		return p.Breakfast
	case SlotLunch:
		return p.Lunch
	case SlotDinner:
		return p.Dinner
	}
	return ""
}

// SetSlot assigns a recipe ID to the given meal. An empty ID clears it.
func (p *DailyPlan) SetSlot(s MealSlot, recipeID string) {
	switch s {
	case SlotBreakfast:
		p.Breakfast = recipeID
	case SlotLunch:
		p.Lunch = recipeID
	case SlotDinner:
		p.Dinner = recipeID
	}
}

// Empty reports whether no slot holds an assignment.
func (p *DailyPlan) Empty() bool {
	return p.Breakfast == "" && p.Lunch == "" && p.Dinner == ""
}

// FormatPlanDate renders a time as a planner date key.
func FormatPlanDate(t time.Time) string {
	return t.Format(PlanDateLayout)
}

// ShoppingItem is a derived line on the shopping list: an unchecked
// ingredient plus the title of the recipe that needs it. Never
// persisted; recomputed on every read.
type ShoppingItem struct {
	Ingredient
	RecipeTitle string `json:"recipeTitle"`
}
