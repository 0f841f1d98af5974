package ports

import (
	"context"

	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/core/domain/model/kernel"
)

// TableRepository defines the persistence contract for table aggregates.
//
// Every Get is a fresh query: occupancy is derived from the statuses of the
// returned orders and must never come from a cached aggregate reference.
type TableRepository interface {
	// Add persists a new table.
	Add(ctx context.Context, aggregate *dinnertable.Table) error

	// Update persists changes to a table's own fields (number, capacity).
	// Orders are owned by the OrderRepository and are not written here.
	Update(ctx context.Context, aggregate *dinnertable.Table) error

	// Delete removes a table. Callers must ensure the table has no orders.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a table with a status view of all its orders.
	Get(ctx context.Context, id kernel.UUID) (*dinnertable.Table, error)

	// GetByNumber retrieves a table by its unique table number.
	GetByNumber(ctx context.Context, number int) (*dinnertable.Table, error)

	// GetAll retrieves all tables with status views of their orders,
	// ordered by table number.
	GetAll(ctx context.Context) ([]*dinnertable.Table, error)
}
