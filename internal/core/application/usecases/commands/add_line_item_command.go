package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddLineItemCommand represents a request to add a menu item to an order.
// The current card price of the item is captured as the line's snapshot at
// handling time.
//
// Example:
//
//	cmd, err := NewAddLineItemCommand(orderID, kernel.NewUUID(), menuItemID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid line data: %w", err)
//	}
//
//	handler := NewAddLineItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add line: %w", err)
//	}
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a menu item to an order.
// Validates all identifiers and requires a positive quantity.
func NewAddLineItemCommand(orderID, lineID, menuItemID kernel.UUID, quantity int) (AddLineItemCommand, error) {
	lineCommand := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setLineID(lineID),
		lineCommand.setMenuItemID(menuItemID),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being extended.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier for the new line item.
func (c AddLineItemCommand) LineID() kernel.UUID {
	return c.lineID
}

// MenuItemID returns the identifier of the menu item being ordered.
func (c AddLineItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the number of units ordered.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddLineItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
