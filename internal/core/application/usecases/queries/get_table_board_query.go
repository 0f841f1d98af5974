package queries

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrGetTableBoardQueryIsNotConstructed = errors.New(
	"GetTableBoardQuery must be created via NewGetTableBoardQuery constructor",
)

// GetTableBoardQuery retrieves the dining room board: every table with its
// derived display status (LIBRE, OCCUPEE or ATTENTE_PAIEMENT).
//
// Example:
//
//	query := NewGetTableBoardQuery()
//	handler := NewGetTableBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load board: %w", err)
//	}
//	for _, t := range board {
//	    fmt.Printf("table %d: %s\n", t.Number, t.DisplayStatus)
//	}
type GetTableBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTableBoardQuery creates a parameterless board query.
func NewGetTableBoardQuery() GetTableBoardQuery {
	return GetTableBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTableBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTableBoardQueryIsNotConstructed)
}

// TableBoardView is one table on the dining room board. ActiveOrderID is set
// when an order is bound to the table, i.e. the status is not LIBRE.
type TableBoardView struct {
	ID            kernel.UUID
	Number        int
	Capacity      int
	DisplayStatus string
	ActiveOrderID *kernel.UUID
}
