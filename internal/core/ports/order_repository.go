package ports

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always retrieved with their line items and payments eagerly
// resolved, so projections (totals, due) are usable without further reads.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// line item and payment additions and removals.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, with line items
	// and payments resolved.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus retrieves all orders in the given status, oldest first,
	// with line items and payments resolved. Used by the kitchen board.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByTable retrieves all orders ever placed at a table.
	GetAllByTable(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error)
}
