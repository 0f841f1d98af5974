package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var (
	ErrApplyDiscountCommandIsNotConstructed = errors.New(
		"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
	)
	ErrDiscountIsNegative = errors.New("discount must not be negative")
)

// ApplyDiscountCommand represents a request to apply an absolute discount
// amount to an order. The cap against the order's subtotal is enforced by
// the aggregate at handling time.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  float64

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a command to apply a discount.
// Rejects negative amounts; the subtotal cap is checked by the aggregate.
func NewApplyDiscountCommand(orderID kernel.UUID, amount float64) (ApplyDiscountCommand, error) {
	discountCommand := ApplyDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		discountCommand.setOrderID(orderID),
		discountCommand.setAmount(amount),
	); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return discountCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c ApplyDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the discount amount.
func (c ApplyDiscountCommand) Amount() float64 {
	return c.amount
}

func (c *ApplyDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyDiscountCommand) setAmount(amount float64) error {
	if amount < 0 {
		return ErrDiscountIsNegative
	}

	c.amount = amount
	return nil
}
