package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrUpdateLineItemQuantityCommandIsNotConstructed is returned when the
// command was not created via its constructor.
var ErrUpdateLineItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateLineItemQuantityCommand must be created via NewUpdateLineItemQuantityCommand constructor",
)

// UpdateLineItemQuantityCommand represents a request to change the quantity
// of a line already on an order.
type UpdateLineItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateLineItemQuantityCommand creates a command to change a line's quantity.
func NewUpdateLineItemQuantityCommand(
	orderID, lineID kernel.UUID, quantity int,
) (UpdateLineItemQuantityCommand, error) {
	lineCommand := UpdateLineItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderID(orderID),
		lineCommand.setLineID(lineID),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return UpdateLineItemQuantityCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c UpdateLineItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to change.
func (c UpdateLineItemQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity.
func (c UpdateLineItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateLineItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateLineItemQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *UpdateLineItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
