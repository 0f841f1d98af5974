package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLineItemCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	lineID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddLineItemCommand(orderID, lineID, menuItemID, 2)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, lineID, cmd.LineID())
	assert.Equal(t, menuItemID, cmd.MenuItemID())
	assert.Equal(t, 2, cmd.Quantity())
}

func TestNewAddLineItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewAddLineItemCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
