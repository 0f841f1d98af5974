// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string token so rows stay readable and reporting
// queries can filter without knowing the Go enum values.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"type:varchar(32);index"`
	Discount  float64
	CreatedAt time.Time
	ServedAt  *time.Time

	Lines    []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments []PaymentDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line. Position preserves the insertion
// order of lines within their order across the delete-and-recreate update.
type LineItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	UnitPrice  float64
	Position   int
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_lines"
}

// PaymentDTO represents one settlement record against an order.
type PaymentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Amount  float64
	Method  string `gorm:"type:varchar(32)"`
	PaidAt  time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an order domain aggregate to its database representation,
// including all line and payment rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        aggregate.ID().Bytes(),
		TableID:   aggregate.TableID().Bytes(),
		Status:    aggregate.Status().String(),
		Discount:  aggregate.Discount(),
		CreatedAt: aggregate.CreatedAt(),
		ServedAt:  aggregate.ServedAt(),
	}

	for i, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, LineItemDTO{
			ID:         line.ID().Bytes(),
			OrderID:    dto.ID,
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			Position:   i,
		})
	}

	for _, payment := range aggregate.Payments() {
		dto.Payments = append(dto.Payments, PaymentDTO{
			ID:      payment.ID().Bytes(),
			OrderID: dto.ID,
			Amount:  payment.Amount(),
			Method:  payment.Method(),
			PaidAt:  payment.PaidAt(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and payments using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLineItem(lineID, menuItemID, lineDTO.UnitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	payments := make([]*order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		paymentID, payErr := kernel.UUIDFromBytes(paymentDTO.ID[:])
		if payErr != nil {
			return nil, payErr
		}

		payment, payErr := order.RestorePayment(
			paymentID, paymentDTO.Amount, paymentDTO.Method, paymentDTO.PaidAt)
		if payErr != nil {
			return nil, payErr
		}
		payments = append(payments, payment)
	}

	return order.RestoreOrder(
		id, tableID, status, dto.Discount, dto.CreatedAt, dto.ServedAt, lines, payments)
}
