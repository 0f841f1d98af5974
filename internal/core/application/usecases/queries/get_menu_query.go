package queries

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the card: every category with its items, ordered
// by name.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemView is one dish on the card.
type MenuItemView struct {
	ID          kernel.UUID
	Name        string
	Price       float64
	Description string
}

// MenuCategoryView is one category of the card with its items.
type MenuCategoryView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Items       []MenuItemView
}
