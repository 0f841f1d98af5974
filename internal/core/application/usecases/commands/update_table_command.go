package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrUpdateTableCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrUpdateTableCommandIsNotConstructed = errors.New(
	"UpdateTableCommand must be created via NewUpdateTableCommand constructor",
)

// UpdateTableCommand represents a request to change a table's number or capacity.
type UpdateTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	number   int
	capacity int

	guard guard.ConstructorGuard
}

// NewUpdateTableCommand creates a command to update an existing dining table.
func NewUpdateTableCommand(tableID kernel.UUID, number int, capacity int) (UpdateTableCommand, error) {
	tableCommand := UpdateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tableCommand.setTableID(tableID),
		tableCommand.setNumber(number),
		tableCommand.setCapacity(capacity),
	); err != nil {
		return UpdateTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTableCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableCommandIsNotConstructed)
}

// TableID returns the unique identifier of the table to update.
func (c UpdateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Number returns the new table number.
func (c UpdateTableCommand) Number() int {
	return c.number
}

// Capacity returns the new seating capacity.
func (c UpdateTableCommand) Capacity() int {
	return c.capacity
}

func (c *UpdateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *UpdateTableCommand) setNumber(number int) error {
	if number <= 0 {
		return ErrTableNumberIsInvalid
	}

	c.number = number
	return nil
}

func (c *UpdateTableCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrTableCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
