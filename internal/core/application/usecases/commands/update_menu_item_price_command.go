package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrUpdateMenuItemPriceCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrUpdateMenuItemPriceCommandIsNotConstructed = errors.New(
	"UpdateMenuItemPriceCommand must be created via NewUpdateMenuItemPriceCommand constructor",
)

// UpdateMenuItemPriceCommand represents a request to change a dish's card
// price. Lines already on orders keep their snapshot and are unaffected.
type UpdateMenuItemPriceCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	price  float64

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemPriceCommand creates a command to change a card price.
func NewUpdateMenuItemPriceCommand(itemID kernel.UUID, price float64) (UpdateMenuItemPriceCommand, error) {
	priceCommand := UpdateMenuItemPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		priceCommand.setItemID(itemID),
		priceCommand.setPrice(price),
	); err != nil {
		return UpdateMenuItemPriceCommand{}, err
	}

	return priceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemPriceCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item.
func (c UpdateMenuItemPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Price returns the new card price.
func (c UpdateMenuItemPriceCommand) Price() float64 {
	return c.price
}

func (c *UpdateMenuItemPriceCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemPriceCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrMenuItemPriceIsInvalid
	}

	c.price = price
	return nil
}
