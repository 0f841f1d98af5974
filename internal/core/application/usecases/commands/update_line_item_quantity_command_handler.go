package commands

import (
	"context"
)

// UpdateLineItemQuantityCommandHandler handles quantity changes on a pending
// order. Changing a line that is not on the order is a no-op.
type UpdateLineItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLineItemQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateLineItemQuantityCommandHandler(uowFactory OrderUoWFactory) UpdateLineItemQuantityCommandHandler {
	return UpdateLineItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
func (h *UpdateLineItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemQuantityCommand) error {
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

	if err = theOrder.UpdateLineItemQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
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
