package order_test

import (
	"testing"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createOrderWithLine(t *testing.T, unitPrice float64, quantity int) *order.Order {
	t.Helper()
	o := createPendingOrder(t)
	err := o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), unitPrice, quantity)
	require.NoError(t, err)
	return o
}

func createServedOrder(t *testing.T, unitPrice float64, quantity int) *order.Order {
	t.Helper()
	o := createOrderWithLine(t, unitPrice, quantity)
	require.NoError(t, o.TransitionTo(order.InPreparation))
	require.NoError(t, o.TransitionTo(order.Ready))
	require.NoError(t, o.TransitionTo(order.Served))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		tableID := kernel.NewUUID()

		o, err := order.NewOrder(id, tableID)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.TableID().IsEqual(tableID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Zero(t, o.Discount())
		assert.Empty(t, o.Lines())
		assert.Empty(t, o.Payments())
		assert.Nil(t, o.ServedAt())
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Second)
		require.NoError(t, o.Validate())
	})

	t.Run("should return error for invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for invalid table ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(kernel.NewUUID(), invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "tableID")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full aggregate state", func(t *testing.T) {
		id := kernel.NewUUID()
		tableID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)
		servedAt := createdAt.Add(30 * time.Minute)
		line, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), 12.00, 2)
		require.NoError(t, err)
		payment, err := order.RestorePayment(kernel.NewUUID(), 24.00, "CB", servedAt.Add(time.Minute))
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, tableID, order.Paid, 0, createdAt, &servedAt,
			[]*order.LineItem{line}, []*order.Payment{payment})

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.ServedAt())
		assert.Equal(t, servedAt, *o.ServedAt())
		assert.Len(t, o.Lines(), 1)
		assert.Len(t, o.Payments(), 1)
	})

	t.Run("should return error for negative discount", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pending,
			-5, time.Now(), nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown,
			0, time.Now(), nil, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_AddLineItem(t *testing.T) {
	t.Run("should snapshot unit price on the line", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), 18.50, 2)

		require.NoError(t, err)
		require.Len(t, o.Lines(), 1)
		assert.InDelta(t, 18.50, o.Lines()[0].UnitPrice(), 0.001)
		assert.Equal(t, 2, o.Lines()[0].Quantity())
		assert.InDelta(t, 37.00, o.Total(), 0.001)
	})

	t.Run("should merge duplicate menu item into existing line", func(t *testing.T) {
		o := createPendingOrder(t)
		menuItemID := kernel.NewUUID()

		require.NoError(t, o.AddLineItem(kernel.NewUUID(), menuItemID, 4.50, 1))
		require.NoError(t, o.AddLineItem(kernel.NewUUID(), menuItemID, 4.50, 2))

		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 3, o.Lines()[0].Quantity())
		assert.InDelta(t, 13.50, o.Total(), 0.001)
	})

	t.Run("should keep insertion order for distinct items", func(t *testing.T) {
		o := createPendingOrder(t)
		firstLine := kernel.NewUUID()
		secondLine := kernel.NewUUID()

		require.NoError(t, o.AddLineItem(firstLine, kernel.NewUUID(), 5.00, 1))
		require.NoError(t, o.AddLineItem(secondLine, kernel.NewUUID(), 7.00, 1))

		require.Len(t, o.Lines(), 2)
		assert.True(t, o.Lines()[0].ID().IsEqual(firstLine))
		assert.True(t, o.Lines()[1].ID().IsEqual(secondLine))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), 5.00, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject edits once order left pending", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)
		require.NoError(t, o.TransitionTo(order.InPreparation))

		err := o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), 5.00, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Len(t, o.Lines(), 1)
	})
}

func TestOrder_RemoveLineItem(t *testing.T) {
	t.Run("should remove matching line", func(t *testing.T) {
		o := createPendingOrder(t)
		lineID := kernel.NewUUID()
		require.NoError(t, o.AddLineItem(lineID, kernel.NewUUID(), 9.00, 1))

		err := o.RemoveLineItem(lineID)

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should silently ignore absent line id", func(t *testing.T) {
		o := createOrderWithLine(t, 9.00, 1)

		err := o.RemoveLineItem(kernel.NewUUID())

		require.NoError(t, err)
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("should reject removal once order left pending", func(t *testing.T) {
		o := createOrderWithLine(t, 9.00, 1)
		lineID := o.Lines()[0].ID()
		require.NoError(t, o.TransitionTo(order.InPreparation))

		err := o.RemoveLineItem(lineID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_UpdateLineItemQuantity(t *testing.T) {
	t.Run("should replace quantity", func(t *testing.T) {
		o := createOrderWithLine(t, 6.00, 1)
		lineID := o.Lines()[0].ID()

		err := o.UpdateLineItemQuantity(lineID, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, o.Lines()[0].Quantity())
		assert.InDelta(t, 24.00, o.Total(), 0.001)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := createOrderWithLine(t, 6.00, 2)

		err := o.UpdateLineItemQuantity(o.Lines()[0].ID(), -1)

		require.Error(t, err)
		assert.Equal(t, 2, o.Lines()[0].Quantity())
	})

	t.Run("should silently ignore absent line id", func(t *testing.T) {
		o := createOrderWithLine(t, 6.00, 2)

		err := o.UpdateLineItemQuantity(kernel.NewUUID(), 5)

		require.NoError(t, err)
		assert.Equal(t, 2, o.Lines()[0].Quantity())
	})
}

func TestOrder_ApplyDiscount(t *testing.T) {
	t.Run("should apply discount within the cap", func(t *testing.T) {
		o := createOrderWithLine(t, 20.00, 2) // subtotal 40.00

		err := o.ApplyDiscount(15.00)

		require.NoError(t, err)
		assert.InDelta(t, 15.00, o.Discount(), 0.001)
		assert.InDelta(t, 25.00, o.TotalDue(), 0.001)
	})

	t.Run("should accept discount exactly at half the subtotal", func(t *testing.T) {
		o := createOrderWithLine(t, 20.00, 2)

		err := o.ApplyDiscount(20.00)

		require.NoError(t, err)
		assert.InDelta(t, 20.00, o.TotalDue(), 0.001)
	})

	t.Run("should reject discount above half the subtotal", func(t *testing.T) {
		o := createOrderWithLine(t, 20.00, 2)

		err := o.ApplyDiscount(20.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Zero(t, o.Discount())
	})

	t.Run("should reject negative discount", func(t *testing.T) {
		o := createOrderWithLine(t, 20.00, 2)

		err := o.ApplyDiscount(-1.00)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow discount after pending", func(t *testing.T) {
		o := createServedOrder(t, 20.00, 2)

		err := o.ApplyDiscount(10.00)

		require.NoError(t, err)
		assert.InDelta(t, 30.00, o.TotalDue(), 0.001)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the full progression", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)

		require.NoError(t, o.TransitionTo(order.InPreparation))
		require.NoError(t, o.TransitionTo(order.Ready))
		require.NoError(t, o.TransitionTo(order.Served))
		require.NoError(t, o.TransitionTo(order.Paid))
		require.NoError(t, o.TransitionTo(order.Finalized))

		assert.Equal(t, order.Finalized, o.Status())
	})

	t.Run("should refuse to send empty order to preparation", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.TransitionTo(order.InPreparation)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should set served timestamp once on entering served", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)
		require.NoError(t, o.TransitionTo(order.InPreparation))
		require.NoError(t, o.TransitionTo(order.Ready))

		before := time.Now()
		require.NoError(t, o.TransitionTo(order.Served))

		require.NotNil(t, o.ServedAt())
		assert.WithinDuration(t, before, *o.ServedAt(), time.Second)
	})

	t.Run("should reject skipping statuses", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)

		err := o.TransitionTo(order.Served)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := createPendingOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel order in preparation", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)
		require.NoError(t, o.TransitionTo(order.InPreparation))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should refuse to cancel once ready", func(t *testing.T) {
		o := createOrderWithLine(t, 10.00, 1)
		require.NoError(t, o.TransitionTo(order.InPreparation))
		require.NoError(t, o.TransitionTo(order.Ready))

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	t.Run("should record payment and move to paid", func(t *testing.T) {
		o := createServedOrder(t, 15.00, 2) // due 30.00

		payment, err := o.RecordPayment(kernel.NewUUID(), 30.00, "ESPECES")

		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, order.Paid, o.Status())
		require.Len(t, o.Payments(), 1)
		assert.InDelta(t, 30.00, o.Payments()[0].Amount(), 0.001)
		assert.Equal(t, "ESPECES", o.Payments()[0].Method())
	})

	t.Run("should record overpayment as received", func(t *testing.T) {
		o := createServedOrder(t, 15.00, 2)

		payment, err := o.RecordPayment(kernel.NewUUID(), 50.00, "ESPECES")

		require.NoError(t, err)
		assert.InDelta(t, 50.00, payment.Amount(), 0.001)
	})

	t.Run("should reject insufficient amount and stay served", func(t *testing.T) {
		o := createServedOrder(t, 15.00, 2)

		payment, err := o.RecordPayment(kernel.NewUUID(), 29.99, "CB")

		require.Error(t, err)
		assert.Nil(t, payment)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "due 30.00, received 29.99")
		assert.Equal(t, order.Served, o.Status())
		assert.Empty(t, o.Payments())
	})

	t.Run("should honour discount when checking sufficiency", func(t *testing.T) {
		o := createServedOrder(t, 15.00, 2)
		require.NoError(t, o.ApplyDiscount(10.00))

		_, err := o.RecordPayment(kernel.NewUUID(), 20.00, "CB")

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject payment on non-served order", func(t *testing.T) {
		o := createOrderWithLine(t, 15.00, 2)

		payment, err := o.RecordPayment(kernel.NewUUID(), 30.00, "CB")

		require.Error(t, err)
		assert.Nil(t, payment)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject empty method", func(t *testing.T) {
		o := createServedOrder(t, 15.00, 2)

		_, err := o.RecordPayment(kernel.NewUUID(), 30.00, "")

		require.Error(t, err)
		assert.Equal(t, order.Served, o.Status())
	})
}

func TestOrder_Change(t *testing.T) {
	t.Run("should return change for overpayment", func(t *testing.T) {
		o := createOrderWithLine(t, 12.50, 2) // due 25.00

		change, err := o.Change(30.00)

		require.NoError(t, err)
		assert.InDelta(t, 5.00, change, 0.001)
	})

	t.Run("should return zero change for exact amount", func(t *testing.T) {
		o := createOrderWithLine(t, 12.50, 2)

		change, err := o.Change(25.00)

		require.NoError(t, err)
		assert.InDelta(t, 0.00, change, 0.001)
	})

	t.Run("should return error for insufficient amount", func(t *testing.T) {
		o := createOrderWithLine(t, 12.50, 2)

		_, err := o.Change(24.00)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Totals(t *testing.T) {
	t.Run("should sum line subtotals", func(t *testing.T) {
		o := createPendingOrder(t)
		require.NoError(t, o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), 3.50, 2))
		require.NoError(t, o.AddLineItem(kernel.NewUUID(), kernel.NewUUID(), 11.00, 1))

		assert.InDelta(t, 18.00, o.Total(), 0.001)
		assert.InDelta(t, 18.00, o.TotalDue(), 0.001)
	})

	t.Run("should floor total due at zero", func(t *testing.T) {
		// A restored order can carry a discount exceeding its remaining lines.
		line, err := order.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), 5.00, 1)
		require.NoError(t, err)
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pending,
			8.00, time.Now(), nil, []*order.LineItem{line}, nil)
		require.NoError(t, err)

		assert.InDelta(t, 0.00, o.TotalDue(), 0.001)
	})
}
