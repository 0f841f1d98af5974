package commands

import (
	"context"
	"errors"

	"resto/internal/pkg/errs"
)

// UpdateTableCommandHandler handles updates to a table's number and capacity.
// Keeps table numbers unique across the dining room.
type UpdateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewUpdateTableCommandHandler creates a handler for table update operations.
func NewUpdateTableCommandHandler(uowFactory TableUoWFactory) UpdateTableCommandHandler {
	return UpdateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table update command.
// Returns ErrTableNumberTaken when the requested number belongs to another table.
func (h *UpdateTableCommandHandler) Handle(ctx context.Context, cmd UpdateTableCommand) error {
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

	if table.Number() != cmd.Number() {
		existing, err := tableRepo.GetByNumber(ctx, cmd.Number())
		if err == nil && !existing.ID().IsEqual(table.ID()) {
			return ErrTableNumberTaken
		}
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = errors.Join(
		table.ChangeNumber(cmd.Number()),
		table.ChangeCapacity(cmd.Capacity()),
	); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, table); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
