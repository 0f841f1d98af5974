package order

import (
	"errors"
	"fmt"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// maxDiscountRatio caps the discount at half the order subtotal.
const maxDiscountRatio = 0.5

// Order represents one dining party's running tab. It is the aggregate root
// owning the order's line items and payments, and the only place where the
// status machine and the discount rules are enforced.
//
// Order maintains these invariants:
//   - line items are editable only while the status is Pending
//   - at most one line item per distinct menu item (re-adds merge quantities)
//   - discount never exceeds half the subtotal, and is never negative
//   - status moves strictly forward along the progression, or to Cancelled
//     from Pending/InPreparation
//   - the served timestamp is set once, on the transition into Served
//   - no mutation is permitted after Finalized or Cancelled
type Order struct {
	id       kernel.UUID
	tableID  kernel.UUID
	status   Status
	discount float64

	createdAt time.Time
	servedAt  *time.Time

	lines    []*LineItem
	payments []*Payment

	isConstructed bool
}

// NewOrder creates an empty pending order for a table.
// Called when a table transitions from free to occupied.
func NewOrder(id, tableID kernel.UUID) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// Lines and payments may be nil for status-only views (e.g. occupancy checks).
func RestoreOrder(
	id, tableID kernel.UUID,
	status Status,
	discount float64,
	createdAt time.Time,
	servedAt *time.Time,
	lines []*LineItem,
	payments []*Payment,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		servedAt:      servedAt,
		lines:         lines,
		payments:      payments,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
		order.setStatus(status),
		order.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the identifier of the owning table.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Discount returns the currently applied discount amount.
func (o *Order) Discount() float64 {
	return o.discount
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ServedAt returns the timestamp of the transition into Served,
// or nil if the order has not been served.
func (o *Order) ServedAt() *time.Time {
	return o.servedAt
}

// Lines returns the order's line items in insertion order.
func (o *Order) Lines() []*LineItem {
	lines := make([]*LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Payments returns the payments recorded against the order.
func (o *Order) Payments() []*Payment {
	payments := make([]*Payment, len(o.payments))
	copy(payments, o.payments)
	return payments
}

// Total returns the sum of line subtotals, before discount.
// Pure projection, callable outside any transaction.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// TotalDue returns the subtotal minus the applied discount, floored at zero.
// Pure projection, callable outside any transaction.
func (o *Order) TotalDue() float64 {
	due := o.Total() - o.discount
	if due < 0 {
		return 0
	}
	return due
}

// AddLineItem adds a menu item to a pending order, capturing unitPrice as the
// line's price snapshot. If a line for the same menu item already exists its
// quantity is incremented instead of inserting a duplicate row.
func (o *Order) AddLineItem(lineID, menuItemID kernel.UUID, unitPrice float64, quantity int) error {
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateErrorWithCause("line items can only be added to a pending order",
			fmt.Errorf("status is %s", o.status))
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for _, line := range o.lines {
		if line.MenuItemID().IsEqual(menuItemID) {
			line.quantity += quantity
			return nil
		}
	}

	line, err := NewLineItem(lineID, menuItemID, unitPrice, quantity)
	if err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// RemoveLineItem removes the matching line item from a pending order.
// A non-existent line item id is a silent no-op.
func (o *Order) RemoveLineItem(lineID kernel.UUID) error {
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateErrorWithCause("line items can only be removed from a pending order",
			fmt.Errorf("status is %s", o.status))
	}

	for i, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

// UpdateLineItemQuantity replaces the quantity of the matching line item.
// A non-existent line item id is a silent no-op.
func (o *Order) UpdateLineItemQuantity(lineID kernel.UUID, quantity int) error {
	if !o.status.IsModifiable() {
		return errs.NewInvalidStateErrorWithCause("line items can only be changed on a pending order",
			fmt.Errorf("status is %s", o.status))
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			line.quantity = quantity
			return nil
		}
	}
	return nil
}

// ApplyDiscount applies a discount amount, capped at half the subtotal.
// The cap is reported in the error when exceeded. Unlike line item edits,
// a discount may be applied at any order status.
func (o *Order) ApplyDiscount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%.2f is negative", amount))
	}

	maxDiscount := o.Total() * maxDiscountRatio
	if amount > maxDiscount {
		return errs.NewValueIsOutOfRangeError("discount", amount, 0.0, maxDiscount)
	}

	o.discount = amount
	return nil
}

// TransitionTo moves the order to target. Only the single next status in the
// progression (or Cancelled from Pending/InPreparation) is accepted; any
// other target fails with an IllegalTransitionError reporting both statuses.
//
// Additional guards: entering InPreparation requires at least one line item,
// entering Paid requires a positive total due. The served timestamp is set
// once, on the transition into Served.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == InPreparation && len(o.lines) == 0 {
		return errs.NewInvalidStateError("empty order cannot be sent to preparation")
	}
	if newStatus == Paid && o.TotalDue() <= 0 {
		return errs.NewInvalidStateError("total due must be greater than 0")
	}

	o.status = newStatus
	if newStatus == Served && o.servedAt == nil {
		now := time.Now()
		o.servedAt = &now
	}
	return nil
}

// Cancel moves the order to Cancelled, allowed from Pending or InPreparation.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// RecordPayment validates sufficiency, records a payment and transitions the
// order to Paid. The order must be Served and the amount must cover the total
// due; overpayment is allowed and recorded as received.
func (o *Order) RecordPayment(paymentID kernel.UUID, amount float64, method string) (*Payment, error) {
	if o.status != Served {
		return nil, errs.NewInvalidStateErrorWithCause("payment requires a served order",
			fmt.Errorf("status is %s", o.status))
	}

	payment, err := NewPayment(paymentID, amount, method)
	if err != nil {
		return nil, err
	}

	due := o.TotalDue()
	if amount < due {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("insufficient amount: due %.2f, received %.2f", due, amount))
	}

	if err := o.TransitionTo(Paid); err != nil {
		return nil, err
	}

	o.payments = append(o.payments, payment)
	return payment, nil
}

// Change returns the change owed for a given received amount.
// Pure projection; fails when the amount does not cover the total due.
func (o *Order) Change(amountPaid float64) (float64, error) {
	due := o.TotalDue()
	if amountPaid < due {
		return 0, errs.NewValueIsInvalidErrorWithCause("amountPaid",
			fmt.Errorf("insufficient amount: due %.2f, received %.2f", due, amountPaid))
	}
	return amountPaid - due, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tableID", err)
	}
	o.tableID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDiscount(discount float64) error {
	if discount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%.2f is negative", discount))
	}
	o.discount = discount
	return nil
}
