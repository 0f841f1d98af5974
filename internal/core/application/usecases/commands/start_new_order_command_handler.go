package commands

import (
	"context"
	"fmt"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// StartNewOrderCommandHandler handles opening a new order at a table.
// Loads the table with its order statuses and rejects the request when an
// order is already in progress, so a table never carries two running tabs.
//
// Example:
//
//	handler := NewStartNewOrderCommandHandler(uowFactory)
//	cmd, _ := NewStartNewOrderCommand(kernel.NewUUID(), tableID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start order: %w", err)
//	}
type StartNewOrderCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewStartNewOrderCommandHandler creates a handler for opening orders.
// Requires an OrderTableUoWFactory since the occupancy check reads the table
// aggregate in the same transaction that persists the order.
func NewStartNewOrderCommandHandler(uowFactory OrderTableUoWFactory) StartNewOrderCommandHandler {
	return StartNewOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start order command.
// The new order is created in pending status; the table becomes occupied the
// moment the transaction commits.
func (h *StartNewOrderCommandHandler) Handle(ctx context.Context, cmd StartNewOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	table, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	if table.IsOccupied() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("table %d already has an order in progress", table.Number()))
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), table.ID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
