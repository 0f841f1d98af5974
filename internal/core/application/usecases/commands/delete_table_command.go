package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrDeleteTableCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrDeleteTableCommandIsNotConstructed = errors.New(
	"DeleteTableCommand must be created via NewDeleteTableCommand constructor",
)

// DeleteTableCommand represents a request to remove a table from the dining room.
type DeleteTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTableCommand creates a command to remove a dining table.
func NewDeleteTableCommand(tableID kernel.UUID) (DeleteTableCommand, error) {
	tableCommand := DeleteTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableCommand.setTableID(tableID); err != nil {
		return DeleteTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTableCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTableCommandIsNotConstructed)
}

// TableID returns the unique identifier of the table to remove.
func (c DeleteTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *DeleteTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
