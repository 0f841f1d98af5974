package queries

import (
	"context"
	"database/sql"
	"time"

	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTableBoardQueryHandler reads the dining room board from the database.
// Tables come back with status views of their orders; the domain's
// TableStatusResolver derives the display status, so the query can never
// disagree with the occupancy rules the commands enforce.
type GetTableBoardQueryHandler struct {
	db       *gorm.DB
	resolver services.TableStatusResolver
}

// NewGetTableBoardQueryHandler creates a handler for board queries.
func NewGetTableBoardQueryHandler(db *gorm.DB) GetTableBoardQueryHandler {
	return GetTableBoardQueryHandler{
		db:       db,
		resolver: services.NewTableStatusResolver(),
	}
}

// Handle executes the board query. Tables are ordered by number.
func (h GetTableBoardQueryHandler) Handle(
	ctx context.Context,
	query GetTableBoardQuery,
) ([]TableBoardView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			t.capacity,
			o.id,
			o.status,
			o.created_at
		FROM dinner_tables t
		LEFT JOIN orders o ON o.table_id = t.id
			AND o.status NOT IN (?, ?)
		ORDER BY t.number, o.created_at
	`, order.Finalized.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type tableRow struct {
		id       kernel.UUID
		number   int
		capacity int
		orders   []*order.Order
	}

	tableRows := make([]*tableRow, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			tableID   uuid.UUID
			number    int
			capacity  int
			orderID   uuid.NullUUID
			status    sql.NullString
			createdAt sql.NullTime
		)

		err = rows.Scan(&tableID, &number, &capacity, &orderID, &status, &createdAt)
		if err != nil {
			return nil, err
		}

		pos, seen := index[tableID]
		if !seen {
			id, idErr := kernel.UUIDFromBytes(tableID[:])
			if idErr != nil {
				return nil, idErr
			}

			tableRows = append(tableRows, &tableRow{id: id, number: number, capacity: capacity})
			pos = len(tableRows) - 1
			index[tableID] = pos
		}

		if orderID.Valid {
			id, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			orderStatus, stErr := order.StatusFromString(status.String)
			if stErr != nil {
				return nil, stErr
			}

			var created time.Time
			if createdAt.Valid {
				created = createdAt.Time
			}

			view, restErr := order.RestoreOrder(
				id, tableRows[pos].id, orderStatus, 0, created, nil, nil, nil)
			if restErr != nil {
				return nil, restErr
			}
			tableRows[pos].orders = append(tableRows[pos].orders, view)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	board := make([]TableBoardView, 0, len(tableRows))
	for _, row := range tableRows {
		table, restErr := dinnertable.RestoreTable(row.id, row.number, row.capacity, row.orders)
		if restErr != nil {
			return nil, restErr
		}

		display, resErr := h.resolver.Resolve(table)
		if resErr != nil {
			return nil, resErr
		}

		view := TableBoardView{
			ID:            row.id,
			Number:        row.number,
			Capacity:      row.capacity,
			DisplayStatus: string(display),
		}
		if active := table.ActiveOrder(); active != nil {
			activeID := active.ID()
			view.ActiveOrderID = &activeID
		}

		board = append(board, view)
	}

	return board, nil
}
