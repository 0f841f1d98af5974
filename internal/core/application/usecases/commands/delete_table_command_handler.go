package commands

import (
	"context"

	"resto/internal/pkg/errs"
)

// DeleteTableCommandHandler handles table removal.
// A table that has ever held an order cannot be removed; its history stays
// reachable for reports.
type DeleteTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewDeleteTableCommandHandler creates a handler for table removal operations.
func NewDeleteTableCommandHandler(uowFactory TableUoWFactory) DeleteTableCommandHandler {
	return DeleteTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table removal command.
// Fails with an InvalidStateError when any order was ever placed at the table.
func (h *DeleteTableCommandHandler) Handle(ctx context.Context, cmd DeleteTableCommand) error {
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

	tableRepo := uow.TableRepository()

	table, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	if len(table.Orders()) > 0 {
		return errs.NewInvalidStateError("table with orders cannot be removed")
	}

	if err = tableRepo.Delete(ctx, table.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
