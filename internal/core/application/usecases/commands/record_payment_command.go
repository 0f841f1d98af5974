package commands

import (
	"errors"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid  = errors.New("payment amount must be greater than 0")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// RecordPaymentCommand represents a request to settle a served order's bill.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(orderID, kernel.NewUUID(), 42.50, "CARD")
//	if err != nil {
//	    return fmt.Errorf("invalid payment data: %w", err)
//	}
//
//	handler := NewRecordPaymentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID kernel.UUID
	amount    float64
	method    string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
// Validates identifiers, requires a positive amount and a non-empty method.
func NewRecordPaymentCommand(
	orderID, paymentID kernel.UUID, amount float64, method string,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setAmount(amount),
		paymentCommand.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the identifier for the new payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the amount received.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// Method returns the payment method ("CASH", "CARD", ...).
func (c RecordPaymentCommand) Method() string {
	return c.method
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return ErrPaymentAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return ErrPaymentMethodIsRequired
	}

	c.method = strings.TrimSpace(method)
	return nil
}
