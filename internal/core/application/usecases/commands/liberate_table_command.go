package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

// ErrLiberateTableCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrLiberateTableCommandIsNotConstructed = errors.New(
	"LiberateTableCommand must be created via NewLiberateTableCommand constructor",
)

// LiberateTableCommand represents a request to settle a table after payment:
// the paid order is finalized and the table becomes free again.
type LiberateTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLiberateTableCommand creates a command to liberate a table.
func NewLiberateTableCommand(tableID kernel.UUID) (LiberateTableCommand, error) {
	tableCommand := LiberateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableCommand.setTableID(tableID); err != nil {
		return LiberateTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LiberateTableCommand) Validate() error {
	return c.guard.Validate(ErrLiberateTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table to liberate.
func (c LiberateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c *LiberateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
