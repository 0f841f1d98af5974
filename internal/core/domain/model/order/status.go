package order

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a strict forward progression:
//
//	Pending ──> InPreparation ──> Ready ──> Served ──> Paid ──> Finalized
//	   │              │
//	   └──────────────┴──> Cancelled
//
// Only the single next status in the progression is ever accepted, plus
// Cancelled from Pending or InPreparation. Finalized and Cancelled are
// absorbing: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is open and its line items
	// may still be edited.
	Pending

	// InPreparation indicates the kitchen has taken the order.
	InPreparation

	// Ready indicates the kitchen has finished preparing the order.
	Ready

	// Served indicates the order has been brought to the table and is
	// awaiting payment.
	Served

	// Paid indicates a payment covering the total due has been recorded.
	Paid

	// Finalized indicates the table has been liberated. Final state.
	Finalized

	// Cancelled indicates the order was abandoned before preparation
	// completed. Final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Served:        "SERVED",
		Paid:          "PAID",
		Finalized:     "FINALIZED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Served:        "SERVED",
		Paid:          "PAID",
		Finalized:     "FINALIZED",
		Cancelled:     "CANCELLED",
	}
}

// StatusFromString parses the persisted string token back into a Status.
// Returns an error for unrecognized tokens.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted token of the status ("PENDING", "SERVED", ...).
// Implements fmt.Stringer; safe on any value, invalid ones yield "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// next returns the single legal successor in the forward progression,
// or Unknown when the status is terminal or invalid.
func (s Status) next() Status {
	switch s {
	case Pending:
		return InPreparation
	case InPreparation:
		return Ready
	case Ready:
		return Served
	case Served:
		return Paid
	case Paid:
		return Finalized
	default:
		return Unknown
	}
}

// CanTransitionTo reports whether moving to target is allowed by the
// adjacency rules, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Cancelled {
		return s == Pending || s == InPreparation
	}
	next := s.next()
	return next != Unknown && next == target
}

// TransitionTo validates and performs a status transition.
//
// Returns (target, nil) on a legal move, or (Unknown, IllegalTransitionError)
// carrying both the current and the requested status otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsModifiable reports whether line items may still be edited.
// Only pending orders are modifiable.
func (s Status) IsModifiable() bool {
	return s == Pending
}

// IsInProgress reports whether the order still binds its table.
// Every status except Finalized, Cancelled and Paid counts as in progress.
func (s Status) IsInProgress() bool {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return false
	}
	return s != Finalized && s != Cancelled && s != Paid
}

// IsTerminal reports whether no further mutation of the order is permitted.
func (s Status) IsTerminal() bool {
	return s == Finalized || s == Cancelled
}
