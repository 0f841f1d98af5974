package commands

import (
	"context"
	"fmt"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// LiberateTableCommandHandler settles a table after payment.
// The table's open order must already be paid; finalizing it is what frees
// the table, since occupancy is derived from order statuses.
type LiberateTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewLiberateTableCommandHandler creates a handler for table liberation.
func NewLiberateTableCommandHandler(uowFactory OrderTableUoWFactory) LiberateTableCommandHandler {
	return LiberateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the liberation command.
// Finds the table's open order, requires it to be paid, and finalizes it.
// The order is re-read through the order repository so the full aggregate
// (lines and payments) is what gets persisted, not the table's status view.
func (h *LiberateTableCommandHandler) Handle(ctx context.Context, cmd LiberateTableCommand) error {
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

	open := table.OpenOrder()
	if open == nil {
		return errs.NewInvalidStateError(
			fmt.Sprintf("table %d has no order to settle", table.Number()))
	}

	if open.Status() != order.Paid {
		return errs.NewInvalidStateErrorWithCause("only a paid order can be finalized",
			fmt.Errorf("status is %s", open.Status()))
	}

	fullOrder, err := orderRepo.Get(ctx, open.ID())
	if err != nil {
		return err
	}

	if err = fullOrder.TransitionTo(order.Finalized); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, fullOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
