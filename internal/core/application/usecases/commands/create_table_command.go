package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrCreateTableCommandIsNotConstructed = errors.New(
		"CreateTableCommand must be created via NewCreateTableCommand constructor",
	)
	ErrTableNumberIsInvalid   = errors.New("table number must be greater than 0")
	ErrTableCapacityIsInvalid = errors.New("table capacity must be greater than 0")
)

// CreateTableCommand represents a request to register a new dining table.
//
// Example:
//
//	tableID := kernel.NewUUID()
//	cmd, err := NewCreateTableCommand(tableID, 4, 6)
//	if err != nil {
//	    return fmt.Errorf("invalid table data: %w", err)
//	}
//
//	handler := NewCreateTableCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create table: %w", err)
//	}
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	number   int
	capacity int

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a new dining table.
// Validates that table ID is valid and number and capacity are positive.
// Returns an error if any validation fails.
func NewCreateTableCommand(tableID kernel.UUID, number int, capacity int) (CreateTableCommand, error) {
	tableCommand := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tableCommand.setTableID(tableID),
		tableCommand.setNumber(number),
		tableCommand.setCapacity(capacity),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTableCommandIsNotConstructed if validation fails.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// TableID returns the unique identifier for the table.
func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Number returns the table number shown in the dining room.
func (c CreateTableCommand) Number() int {
	return c.number
}

// Capacity returns the number of seats at the table.
func (c CreateTableCommand) Capacity() int {
	return c.capacity
}

func (c *CreateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateTableCommand) setNumber(number int) error {
	if number <= 0 {
		return ErrTableNumberIsInvalid
	}

	c.number = number
	return nil
}

func (c *CreateTableCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrTableCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
