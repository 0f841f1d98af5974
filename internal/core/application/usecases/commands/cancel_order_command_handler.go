package commands

import (
	"context"
	"fmt"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// CancelOrderCommandHandler handles abandoning an order.
// The cancelled order stays on the books with its lines intact; only its
// status changes, so reports and the table history keep seeing it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
// The waiter's cancel only acts on pending orders; a kitchen-originated
// cancel also covers orders already in preparation. Anything later in the
// lifecycle cannot be cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !cmd.FromKitchen() && theOrder.Status() != order.Pending {
		return errs.NewInvalidStateErrorWithCause(
			"only pending orders can be cancelled by the waiter",
			fmt.Errorf("status is %s", theOrder.Status()))
	}

	if err = theOrder.Cancel(); err != nil {
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
