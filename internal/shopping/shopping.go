// Package shopping derives the shopping list from the recipe
// collection.
//
// The list is a pure function of current state: every unchecked
// ingredient across all saved recipes becomes one line, tagged with its
// recipe's title. There is no deduplication: two recipes that both need
// salt produce two lines, each checked off independently. Recomputed on
// every read, never cached.
package shopping

import "clipchef/internal/domain"

// Build returns the shopping list for the given recipes. Ordering is
// recipe iteration order (most-recent-first, as the collection lists
// them) then ingredient declaration order.
func Build(recipes []*domain.Recipe) []domain.ShoppingItem {
	items := make([]domain.ShoppingItem, 0)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if ing.Checked {
				continue
			}
			items = append(items, domain.ShoppingItem{
				Ingredient:  ing,
				RecipeTitle: r.Title,
			})
		}
	}
	return items
}
