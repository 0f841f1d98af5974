package order

import (
	"errors"
	"fmt"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one menu item within an order. The unit price is a snapshot
// captured when the line was added; later menu price changes never touch it.
//
// An order holds at most one line item per distinct menu item: re-adding the
// same item increments the quantity of the existing line.
type LineItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  float64

	isConstructed bool
}

// NewLineItem creates a line item with a freshly captured price snapshot.
// Quantity must be positive and the unit price must not be negative.
func NewLineItem(id, menuItemID kernel.UUID, unitPrice float64, quantity int) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(id, menuItemID kernel.UUID, unitPrice float64, quantity int) (*LineItem, error) {
	return NewLineItem(id, menuItemID, unitPrice, quantity)
}

// Validate ensures the LineItem was created through a constructor.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the identifier of the referenced menu item.
func (l *LineItem) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the ordered quantity.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot captured when the line was added.
func (l *LineItem) UnitPrice() float64 {
	return l.unitPrice
}

// Subtotal returns unit price times quantity.
func (l *LineItem) Subtotal() float64 {
	return l.unitPrice * float64(l.quantity)
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
	}
	l.menuItemID = id
	return nil
}

func (l *LineItem) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%.2f is negative", price))
	}
	l.unitPrice = price
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
