package commands

import (
	"context"

	"resto/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles adding a dish to the card.
// The owning category must already exist.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// Fails with an ObjectNotFoundError when the category does not exist.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
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

	category, err := menuRepo.GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	item, err := menu.NewItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.Description(), category.ID())
	if err != nil {
		return err
	}

	if err = menuRepo.AddItem(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
