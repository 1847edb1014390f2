// Package ident generates identifiers for recipes, ingredients, and
// steps.
package ident

import "github.com/google/uuid"

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}
