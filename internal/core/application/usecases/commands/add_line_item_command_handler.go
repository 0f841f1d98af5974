package commands

import (
	"context"
)

// AddLineItemCommandHandler handles adding a menu item to a pending order.
// Reads the item's current card price and snapshots it into the order line,
// so later price changes never alter already placed orders. Re-adding the
// same menu item merges into the existing line instead of duplicating it.
type AddLineItemCommandHandler struct {
	uowFactory OrderMenuUoWFactory
}

// NewAddLineItemCommandHandler creates a handler for the add line operation.
// Requires an OrderMenuUoWFactory since the price snapshot reads the menu
// catalogue in the same transaction that persists the order.
func NewAddLineItemCommandHandler(uowFactory OrderMenuUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add line command.
// Fails when the order or menu item is missing, or when the order is no
// longer pending.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
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
	menuRepo := uow.MenuRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, err := menuRepo.GetItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = theOrder.AddLineItem(cmd.LineID(), item.ID(), item.Price(), cmd.Quantity()); err != nil {
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
