package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrStartNewOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrStartNewOrderCommandIsNotConstructed = errors.New(
	"StartNewOrderCommand must be created via NewStartNewOrderCommand constructor",
)

// StartNewOrderCommand represents a request to open a new order for a table.
// Opening an order is what moves a free table to occupied.
//
// Example:
//
//	cmd, err := NewStartNewOrderCommand(kernel.NewUUID(), tableID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewStartNewOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start order: %w", err)
//	}
type StartNewOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartNewOrderCommand creates a command to open a new order at a table.
// Validates that both identifiers are valid.
func NewStartNewOrderCommand(orderID, tableID kernel.UUID) (StartNewOrderCommand, error) {
	orderCommand := StartNewOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableID(tableID),
	); err != nil {
		return StartNewOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartNewOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c StartNewOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableID returns the identifier of the table the order is opened at.
func (c StartNewOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *StartNewOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartNewOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
