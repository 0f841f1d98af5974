package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the card:
// categories and menu items.
type MenuRepository interface {
	// AddCategory persists a new category.
	AddCategory(ctx context.Context, category *menu.Category) error

	// GetCategory retrieves a category by its identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)

	// AddItem persists a new menu item.
	AddItem(ctx context.Context, item *menu.Item) error

	// UpdateItem persists changes to an existing menu item.
	UpdateItem(ctx context.Context, item *menu.Item) error

	// GetItem retrieves a menu item by its identifier.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)
}
