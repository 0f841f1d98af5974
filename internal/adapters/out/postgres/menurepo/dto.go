// Package menurepo provides data transfer objects and mapping functions for
// the menu catalogue: categories and items.
package menurepo

import (
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting menu categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(128)"`
	Description string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "menu_categories"
}

// ItemDTO represents the database structure for persisting menu items.
// Price is the current card price; order lines carry their own snapshot.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(128)"`
	Price       float64
	Description string
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID().Bytes(),
		Name:        category.Name(),
		Description: category.Description(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreCategory(id, dto.Name, dto.Description)
}

func itemFromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Price:       item.Price(),
		Description: item.Description(),
		CategoryID:  item.CategoryID().Bytes(),
	}
}

func itemToDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, dto.Name, dto.Price, dto.Description, categoryID)
}
