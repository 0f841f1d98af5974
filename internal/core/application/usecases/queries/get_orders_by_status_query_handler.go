package queries

import (
	"context"
	"database/sql"

	"resto/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads order views for one status from the
// database. A single joined query resolves the table number, the lines and
// the dish names; rows are grouped back into one view per order.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first; lines keep their
// insertion order. The Total field is the discounted total due.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			t.number,
			o.status,
			o.discount,
			o.created_at,
			o.served_at,
			l.id,
			mi.name,
			l.quantity,
			l.unit_price
		FROM orders o
		JOIN dinner_tables t ON t.id = o.table_id
		LEFT JOIN order_lines l ON l.order_id = o.id
		LEFT JOIN menu_items mi ON mi.id = l.menu_item_id
		WHERE o.status = ?
		ORDER BY o.created_at, o.id, l.position
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			orderID   uuid.UUID
			number    int
			status    string
			discount  float64
			createdAt sql.NullTime
			servedAt  sql.NullTime
			lineID    uuid.NullUUID
			itemName  sql.NullString
			quantity  sql.NullInt64
			unitPrice sql.NullFloat64
		)

		err = rows.Scan(
			&orderID,
			&number,
			&status,
			&discount,
			&createdAt,
			&servedAt,
			&lineID,
			&itemName,
			&quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, err
		}

		pos, seen := index[orderID]
		if !seen {
			id, idErr := kernel.UUIDFromBytes(orderID[:])
			if idErr != nil {
				return nil, idErr
			}

			view := OrderView{
				ID:          id,
				TableNumber: number,
				Status:      status,
				Discount:    discount,
				CreatedAt:   createdAt.Time,
				Lines:       make([]OrderLineView, 0),
			}
			if servedAt.Valid {
				t := servedAt.Time
				view.ServedAt = &t
			}

			views = append(views, view)
			pos = len(views) - 1
			index[orderID] = pos
		}

		if lineID.Valid {
			id, idErr := kernel.UUIDFromBytes(lineID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}

			views[pos].Lines = append(views[pos].Lines, OrderLineView{
				ID:        id,
				ItemName:  itemName.String,
				Quantity:  int(quantity.Int64),
				UnitPrice: unitPrice.Float64,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		var total float64
		for _, line := range views[i].Lines {
			total += line.UnitPrice * float64(line.Quantity)
		}
		total -= views[i].Discount
		if total < 0 {
			total = 0
		}
		views[i].Total = total
	}

	return views, nil
}
