package commands

import (
	"context"
)

// RemoveLineItemCommandHandler handles removing a line from a pending order.
// Removing a line that is not on the order is a no-op, matching the waiter's
// view where the line may already be gone.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for the remove line operation.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove line command.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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

	if err = theOrder.RemoveLineItem(cmd.LineID()); err != nil {
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
