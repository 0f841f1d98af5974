// Package order provides domain entities and business logic for order management
// in the restaurant system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items and payments
//   - LineItem: One menu item with quantity and a price snapshot
//   - Payment: An immutable settlement record
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and owning table
//   - Order status follows a strict workflow:
//     Pending -> InPreparation -> Ready -> Served -> Paid -> Finalized,
//     with Cancelled reachable from Pending or InPreparation only
//   - Line items are editable only while the order is Pending
//   - The discount never exceeds half the subtotal
//   - A payment must cover the whole total due; there are no partial payments
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
