// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database; they never modify state.
package queries

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders currently in a given status,
// oldest first. The kitchen board uses it with InPreparation and Ready;
// the dining room view uses it with Pending and Served.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.InPreparation)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load board: %w", err)
//	}
//	fmt.Printf("%d orders in preparation\n", len(views))
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status being queried.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// OrderLineView is one line of an order as shown on a board or a ticket.
type OrderLineView struct {
	ID        kernel.UUID
	ItemName  string
	Quantity  int
	UnitPrice float64
}

// OrderView is the board representation of an order: enough to print a
// kitchen ticket or a bill without touching the aggregate.
type OrderView struct {
	ID          kernel.UUID
	TableNumber int
	Status      string
	Discount    float64
	Total       float64
	CreatedAt   time.Time
	ServedAt    *time.Time
	Lines       []OrderLineView
}
