package commands

import (
	"context"
)

// RecordPaymentCommandHandler settles a served order's bill.
// Sufficiency against the discounted total, the served-status requirement
// and the move to paid all happen atomically inside the aggregate; the
// handler persists the result in one transaction so an insufficient amount
// leaves no trace.
//
// Example:
//
//	handler := NewRecordPaymentCommandHandler(uowFactory)
//	cmd, _ := NewRecordPaymentCommand(orderID, kernel.NewUUID(), 42.50, "CARD")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment operations.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
// Overpayment is accepted and recorded as received; change is a projection
// the caller computes from the order, never stored.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = theOrder.RecordPayment(cmd.PaymentID(), cmd.Amount(), cmd.Method()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
