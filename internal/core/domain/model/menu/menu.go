package menu

import (
	"errors"
	"fmt"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category was not created
	// through NewCategory or RestoreCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Category groups menu items on the card.
type Category struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewCategory creates a category with a non-empty name.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	return RestoreCategory(id, name, description)
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id kernel.UUID, name, description string) (*Category, error) {
	category := &Category{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate ensures the Category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID { return c.id }

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Description returns the category description.
func (c *Category) Description() string { return c.description }

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

// Item is a dish on the card. Its price is the current card price; orders
// capture their own snapshot of it at the moment a line item is added, so
// changing an item's price never alters existing orders.
type Item struct {
	id          kernel.UUID
	name        string
	price       float64
	description string
	categoryID  kernel.UUID

	isConstructed bool
}

// NewItem creates a menu item with a non-empty name and a positive price.
func NewItem(id kernel.UUID, name string, price float64, description string, categoryID kernel.UUID) (*Item, error) {
	return RestoreItem(id, name, price, description, categoryID)
}

// RestoreItem reconstructs a menu item from persistence.
func RestoreItem(id kernel.UUID, name string, price float64, description string, categoryID kernel.UUID) (*Item, error) {
	item := &Item{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Price returns the current card price.
func (i *Item) Price() float64 { return i.price }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// CategoryID returns the identifier of the owning category.
func (i *Item) CategoryID() kernel.UUID { return i.categoryID }

// ChangePrice updates the card price. Existing order lines keep their
// snapshot and are unaffected.
func (i *Item) ChangePrice(price float64) error {
	return i.setPrice(price)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = strings.TrimSpace(name)
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("categoryID", err)
	}
	i.categoryID = id
	return nil
}
