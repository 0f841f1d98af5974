package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a single settlement record against an order. One payment covers
// the whole total due (overpayment is allowed, the difference is change);
// partial payments do not exist in this model. Payments are immutable once
// recorded.
type Payment struct {
	id     kernel.UUID
	amount float64
	method string
	paidAt time.Time

	isConstructed bool
}

// NewPayment creates a payment record timestamped now.
// Amount must be positive and method must be a non-empty token
// (e.g. "CARTE", "ESPECES", "TICKET_RESTO").
func NewPayment(id kernel.UUID, amount float64, method string) (*Payment, error) {
	return RestorePayment(id, amount, method, time.Now())
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(id kernel.UUID, amount float64, method string, paidAt time.Time) (*Payment, error) {
	payment := &Payment{
		paidAt:        paidAt,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setAmount(amount),
		payment.setMethod(method),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Amount returns the amount received.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment method token.
func (p *Payment) Method() string {
	return p.method
}

// PaidAt returns the timestamp of the settlement.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%.2f is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	p.method = method
	return nil
}
