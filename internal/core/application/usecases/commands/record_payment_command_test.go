package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(orderID, paymentID, 42.50, "CARD")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, paymentID, cmd.PaymentID())
	assert.InDelta(t, 42.50, cmd.Amount(), 0.001)
	assert.Equal(t, "CARD", cmd.Method())
}

func TestNewRecordPaymentCommand_TrimsMethod(t *testing.T) {
	cmd, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), 10, "  CASH ")
	require.NoError(t, err)
	assert.Equal(t, "CASH", cmd.Method())
}

func TestNewRecordPaymentCommand_InvalidAmount(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "CASH")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentAmountIsInvalid)
}

func TestNewRecordPaymentCommand_EmptyMethod(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), 10, "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
}

func TestNewRecordPaymentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.UUID{}, kernel.NewUUID(), 10, "CASH")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
