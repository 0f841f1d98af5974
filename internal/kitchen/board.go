// Package kitchen drives the live kitchen board. A cron-scheduled poll reads
// the four working statuses from the database and replaces the board's
// snapshots atomically; status-changing convenience operations persist through
// the command handlers and refresh the board immediately so observers never
// wait for the next tick.
package kitchen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// stopTimeout bounds how long Stop waits for an in-flight poll cycle.
const stopTimeout = 5 * time.Second

// initialDelay is the wait before the first poll after Start.
const initialDelay = time.Second

// Dispatcher hands a publication callback to the presentation layer's
// execution context. The poll goroutine never touches presentation state
// directly; everything it publishes goes through here.
type Dispatcher func(func())

// Snapshot is the board state published after every poll cycle.
type Snapshot struct {
	Pending       []queries.OrderView
	InPreparation []queries.OrderView
	Ready         []queries.OrderView
	Served        []queries.OrderView
}

// Board maintains the four status snapshots and the repeating poll that
// keeps them fresh.
type Board struct {
	ordersByStatus queries.GetOrdersByStatusQueryHandler
	changeStatus   commands.ChangeOrderStatusCommandHandler
	cancelOrder    commands.CancelOrderCommandHandler
	dispatcher     Dispatcher
	logger         *slog.Logger

	mu       sync.Mutex
	cron     *cron.Cron
	snapshot Snapshot
}

// NewBoard creates a kitchen board. The dispatcher publishes snapshots on the
// presentation layer's execution context; pass a direct invoker for headless use.
func NewBoard(
	ordersByStatus queries.GetOrdersByStatusQueryHandler,
	changeStatus commands.ChangeOrderStatusCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	dispatcher Dispatcher,
	logger *slog.Logger,
) *Board {
	if dispatcher == nil {
		dispatcher = func(f func()) { f() }
	}
	return &Board{
		ordersByStatus: ordersByStatus,
		changeStatus:   changeStatus,
		cancelOrder:    cancelOrder,
		dispatcher:     dispatcher,
		logger:         logger.With("component", "kitchen_board"),
	}
}

// Start begins the repeating poll, first run after a short initial delay,
// then every ten seconds. Idempotent: calling Start while running does not
// create a second timer.
func (b *Board) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cron != nil {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 10s", func() {
		b.runCycle(context.Background())
	}); err != nil {
		return err
	}

	b.cron = c
	c.Start()

	// First snapshot shortly after start instead of waiting a full tick.
	time.AfterFunc(initialDelay, func() {
		b.mu.Lock()
		running := b.cron == c
		b.mu.Unlock()
		if running {
			b.runCycle(context.Background())
		}
	})

	b.logger.InfoContext(context.Background(), "Kitchen board started (polling every 10s)")
	return nil
}

// Stop cancels the repeating poll and waits, up to a bound, for an in-flight
// cycle to finish. Idempotent, safe to call when not running.
func (b *Board) Stop() {
	b.mu.Lock()
	c := b.cron
	b.cron = nil
	b.mu.Unlock()

	if c == nil {
		return
	}

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
		b.logger.Warn("Kitchen board stop timed out waiting for in-flight cycle")
	}
	b.logger.Info("Kitchen board stopped")
}

// RefreshNow triggers one immediate poll-and-publish cycle.
func (b *Board) RefreshNow(ctx context.Context) {
	b.runCycle(ctx)
}

// runCycle polls all four statuses and replaces the snapshot atomically.
// A failed cycle is logged and skipped; the previous snapshot stays published
// until the next tick succeeds.
func (b *Board) runCycle(ctx context.Context) {
	next, err := b.poll(ctx)
	if err != nil {
		b.logger.ErrorContext(ctx, "Kitchen board poll cycle failed", "error", err)
		return
	}

	b.mu.Lock()
	b.snapshot = next
	b.mu.Unlock()

	b.dispatcher(func() {
		b.logger.DebugContext(ctx, "Kitchen board refreshed",
			"pending", len(next.Pending),
			"in_preparation", len(next.InPreparation),
			"ready", len(next.Ready),
			"served", len(next.Served))
	})
}

func (b *Board) poll(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	for _, target := range []struct {
		status order.Status
		dest   *[]queries.OrderView
	}{
		{order.Pending, &snapshot.Pending},
		{order.InPreparation, &snapshot.InPreparation},
		{order.Ready, &snapshot.Ready},
		{order.Served, &snapshot.Served},
	} {
		query, err := queries.NewGetOrdersByStatusQuery(target.status)
		if err != nil {
			return Snapshot{}, err
		}

		views, err := b.ordersByStatus.Handle(ctx, query)
		if err != nil {
			return Snapshot{}, fmt.Errorf("poll %s: %w", target.status, err)
		}
		*target.dest = views
	}

	return snapshot, nil
}

// CurrentSnapshot returns the last published board state.
func (b *Board) CurrentSnapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot
}

// SendToPreparation moves a pending order to the kitchen and refreshes the
// board. Fails with an InvalidStateError naming the required predecessor when
// the order is not pending.
func (b *Board) SendToPreparation(ctx context.Context, orderID kernel.UUID) error {
	return b.progress(ctx, orderID, order.InPreparation, order.Pending)
}

// MarkReady marks an order in preparation as ready and refreshes the board.
func (b *Board) MarkReady(ctx context.Context, orderID kernel.UUID) error {
	return b.progress(ctx, orderID, order.Ready, order.InPreparation)
}

// MarkServed marks a ready order as served and refreshes the board.
func (b *Board) MarkServed(ctx context.Context, orderID kernel.UUID) error {
	return b.progress(ctx, orderID, order.Served, order.Ready)
}

func (b *Board) progress(ctx context.Context, orderID kernel.UUID, target, predecessor order.Status) error {
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return err
	}

	if err := b.changeStatus.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrIllegalTransition) {
			return errs.NewInvalidStateErrorWithCause(
				fmt.Sprintf("order must be %s before moving to %s", predecessor, target), err)
		}
		return err
	}

	b.RefreshNow(ctx)
	return nil
}

// Cancel abandons an order from the kitchen, allowed while the order is
// pending or in preparation, and refreshes the board.
func (b *Board) Cancel(ctx context.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(orderID, true)
	if err != nil {
		return err
	}

	if err := b.cancelOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	b.RefreshNow(ctx)
	return nil
}

// AverageWaitAge returns the mean age of pending orders in the current
// snapshot, zero when none are pending.
func (b *Board) AverageWaitAge(now time.Time) time.Duration {
	return averageAge(now, b.CurrentSnapshot().Pending)
}

// AveragePreparationAge returns the mean age of orders in preparation in the
// current snapshot, zero when none are being prepared.
func (b *Board) AveragePreparationAge(now time.Time) time.Duration {
	return averageAge(now, b.CurrentSnapshot().InPreparation)
}

func averageAge(now time.Time, views []queries.OrderView) time.Duration {
	if len(views) == 0 {
		return 0
	}

	var total time.Duration
	for _, view := range views {
		total += now.Sub(view.CreatedAt)
	}
	return total / time.Duration(len(views))
}
