package dinnertable

import (
	"errors"
	"fmt"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table represents a physical table in the dining room. It owns the orders
// ever placed at it, but never stores an occupancy flag: occupancy is always
// derived from the statuses of the associated orders.
type Table struct {
	id       kernel.UUID
	number   int
	capacity int
	orders   []*order.Order

	isConstructed bool
}

// NewTable creates a table with a unique positive number and a positive
// seating capacity.
func NewTable(id kernel.UUID, number, capacity int) (*Table, error) {
	return RestoreTable(id, number, capacity, nil)
}

// RestoreTable reconstructs a table from persistence. The orders slice may be
// a status-only view (orders without lines loaded); occupancy derivation only
// reads statuses.
func RestoreTable(id kernel.UUID, number, capacity int, orders []*order.Order) (*Table, error) {
	table := &Table{
		orders:        orders,
		isConstructed: true,
	}

	if err := errors.Join(
		table.setID(id),
		table.setNumber(number),
		table.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return table, nil
}

// Validate ensures the Table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Number returns the table number.
func (t *Table) Number() int {
	return t.number
}

// Capacity returns the seating capacity.
func (t *Table) Capacity() int {
	return t.capacity
}

// Orders returns the orders associated with the table.
func (t *Table) Orders() []*order.Order {
	orders := make([]*order.Order, len(t.orders))
	copy(orders, t.orders)
	return orders
}

// AddOrder associates an order with the table. The order must belong to this
// table; both sides of the relationship stay in sync.
func (t *Table) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.TableID().IsEqual(t.id) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("order belongs to table %s, not %s", o.TableID(), t.id))
	}
	t.orders = append(t.orders, o)
	return nil
}

// IsOccupied reports whether any associated order is still in progress,
// i.e. neither finalized, cancelled nor paid.
func (t *Table) IsOccupied() bool {
	for _, o := range t.orders {
		if o.Status().IsInProgress() {
			return true
		}
	}
	return false
}

// ActiveOrder returns the first order in progress, or nil when the table
// is free.
func (t *Table) ActiveOrder() *order.Order {
	for _, o := range t.orders {
		if o.Status().IsInProgress() {
			return o
		}
	}
	return nil
}

// OpenOrder returns the first order that has not reached a terminal status
// (finalized or cancelled), or nil. Unlike ActiveOrder this includes paid
// orders, which is what table liberation operates on.
func (t *Table) OpenOrder() *order.Order {
	for _, o := range t.orders {
		if !o.Status().IsTerminal() {
			return o
		}
	}
	return nil
}

// ChangeNumber updates the table number.
func (t *Table) ChangeNumber(number int) error {
	return t.setNumber(number)
}

// ChangeCapacity updates the seating capacity.
func (t *Table) ChangeCapacity(capacity int) error {
	return t.setCapacity(capacity)
}

// HasServedOrder reports whether any in-progress order is currently served,
// i.e. the table is awaiting payment.
func (t *Table) HasServedOrder() bool {
	for _, o := range t.orders {
		if o.Status() == order.Served {
			return true
		}
	}
	return false
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}
