package services

import (
	"resto/internal/core/domain/model/dinnertable"
)

// DisplayStatus is the presentation status of a table, derived purely from
// the statuses of its orders.
type DisplayStatus string

const (
	// Libre: no associated order is in progress.
	Libre DisplayStatus = "LIBRE"

	// Occupee: at least one order is in progress.
	Occupee DisplayStatus = "OCCUPEE"

	// AttentePaiement: an in-progress order has been served and the table
	// is awaiting payment. Takes precedence over Occupee.
	AttentePaiement DisplayStatus = "ATTENTE_PAIEMENT"
)

// TableStatusResolver derives a table's display status from its orders.
// It is a stateless domain service: nothing is cached, every resolution
// reads the aggregate it is given.
//
// A table with multiple in-progress orders is not expected in normal
// operation; the resolver tolerates it by checking the served case first
// and reporting Occupee otherwise.
type TableStatusResolver struct{}

// NewTableStatusResolver creates a new TableStatusResolver instance.
func NewTableStatusResolver() TableStatusResolver {
	return TableStatusResolver{}
}

// Resolve returns the display status for a table.
func (r TableStatusResolver) Resolve(table *dinnertable.Table) (DisplayStatus, error) {
	if err := table.Validate(); err != nil {
		return "", err
	}

	if !table.IsOccupied() {
		return Libre, nil
	}
	if table.HasServedOrder() {
		return AttentePaiement, nil
	}
	return Occupee, nil
}

// CountOccupied returns how many of the given tables hold an in-progress
// order. The count is a full scan over the aggregates, never a cached value.
func (r TableStatusResolver) CountOccupied(tables []*dinnertable.Table) (int, error) {
	occupied := 0
	for _, table := range tables {
		if err := table.Validate(); err != nil {
			return 0, err
		}
		if table.IsOccupied() {
			occupied++
		}
	}
	return occupied, nil
}

// CountFree returns how many of the given tables are free.
func (r TableStatusResolver) CountFree(tables []*dinnertable.Table) (int, error) {
	occupied, err := r.CountOccupied(tables)
	if err != nil {
		return 0, err
	}
	return len(tables) - occupied, nil
}
