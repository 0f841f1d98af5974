package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/pkg/errs"
)

// ErrTableNumberTaken is returned when another table already uses the requested number.
var ErrTableNumberTaken = errors.New("table number is already taken")

// CreateTableCommandHandler handles the business logic for table registration.
// Enforces uniqueness of table numbers within the dining room.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration operations.
// Requires a TableUoWFactory for transactional persistence.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table creation command.
// Rejects the request with ErrTableNumberTaken when the number is already in use.
// Uses transaction to ensure the table is properly persisted or rolled back on error.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) error {
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

	_, err := tableRepo.GetByNumber(ctx, cmd.Number())
	if err == nil {
		return ErrTableNumberTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	table, err := dinnertable.NewTable(cmd.TableID(), cmd.Number(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = tableRepo.Add(ctx, table); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
