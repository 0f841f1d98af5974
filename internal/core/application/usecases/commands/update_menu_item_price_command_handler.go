package commands

import (
	"context"
)

// UpdateMenuItemPriceCommandHandler handles card price changes.
type UpdateMenuItemPriceCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemPriceCommandHandler creates a handler for price changes.
func NewUpdateMenuItemPriceCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemPriceCommandHandler {
	return UpdateMenuItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price change command.
func (h *UpdateMenuItemPriceCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemPriceCommand) error {
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

	menuRepo := uow.MenuRepository()

	item, err := menuRepo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = menuRepo.UpdateItem(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
