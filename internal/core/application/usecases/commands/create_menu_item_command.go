package commands

import (
	"errors"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrMenuItemPriceIsInvalid = errors.New("menu item price must be greater than 0")
)

// CreateMenuItemCommand represents a request to add a dish to the card.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       float64
	description string
	categoryID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates identifiers, requires a non-empty name and a positive price.
func NewCreateMenuItemCommand(
	itemID kernel.UUID, name string, price float64, description string, categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	itemCommand := CreateMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setCategoryID(categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new menu item.
func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the card price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// Description returns the item description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// CategoryID returns the identifier of the owning category.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrMenuItemPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
