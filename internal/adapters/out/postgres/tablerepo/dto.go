// Package tablerepo provides data transfer objects and mapping functions for
// table persistence. Tables persist only their own fields; occupancy is never
// stored, it is derived from the statuses of the table's orders at read time.
package tablerepo

import (
	"time"

	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting tables.
type TableDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   int       `gorm:"uniqueIndex"`
	Capacity int
}

// TableName specifies the database table name for dining tables.
func (TableDTO) TableName() string {
	return "dinner_tables"
}

// orderViewDTO is a status-only read model of an order row, just enough for
// occupancy derivation. Lines and payments are never loaded here.
type orderViewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID   uuid.UUID `gorm:"type:uuid"`
	Status    string
	CreatedAt time.Time
}

// TableName maps the view onto the orders table.
func (orderViewDTO) TableName() string {
	return "orders"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(aggregate *dinnertable.Table) TableDTO {
	return TableDTO{
		ID:       aggregate.ID().Bytes(),
		Number:   aggregate.Number(),
		Capacity: aggregate.Capacity(),
	}
}

// toDomain converts a table DTO plus its order views to a domain aggregate.
func toDomain(dto TableDTO, views []orderViewDTO) (*dinnertable.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(views))
	for _, view := range views {
		orderID, viewErr := kernel.UUIDFromBytes(view.ID[:])
		if viewErr != nil {
			return nil, viewErr
		}
		status, viewErr := order.StatusFromString(view.Status)
		if viewErr != nil {
			return nil, viewErr
		}

		o, viewErr := order.RestoreOrder(orderID, id, status, 0, view.CreatedAt, nil, nil, nil)
		if viewErr != nil {
			return nil, viewErr
		}
		orders = append(orders, o)
	}

	return dinnertable.RestoreTable(id, dto.Number, dto.Capacity, orders)
}
