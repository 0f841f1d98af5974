package queries

import (
	"context"

	"resto/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the card from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu query. Categories and items come back ordered
// by name; a category without items is still listed.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuCategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.description,
			i.id,
			i.name,
			i.price,
			i.description
		FROM menu_categories c
		LEFT JOIN menu_items i ON i.category_id = c.id
		ORDER BY c.name, i.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]MenuCategoryView, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			categoryID      uuid.UUID
			categoryName    string
			categoryDesc    string
			itemID          uuid.NullUUID
			itemName        *string
			itemPrice       *float64
			itemDescription *string
		)

		err = rows.Scan(
			&categoryID, &categoryName, &categoryDesc,
			&itemID, &itemName, &itemPrice, &itemDescription)
		if err != nil {
			return nil, err
		}

		pos, seen := index[categoryID]
		if !seen {
			id, idErr := kernel.UUIDFromBytes(categoryID[:])
			if idErr != nil {
				return nil, idErr
			}

			views = append(views, MenuCategoryView{
				ID:          id,
				Name:        categoryName,
				Description: categoryDesc,
				Items:       make([]MenuItemView, 0),
			})
			pos = len(views) - 1
			index[categoryID] = pos
		}

		if itemID.Valid {
			id, idErr := kernel.UUIDFromBytes(itemID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}

			item := MenuItemView{ID: id}
			if itemName != nil {
				item.Name = *itemName
			}
			if itemPrice != nil {
				item.Price = *itemPrice
			}
			if itemDescription != nil {
				item.Description = *itemDescription
			}
			views[pos].Items = append(views[pos].Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
