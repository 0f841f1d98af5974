// Package services provides domain services that operate across aggregates
// in the restaurant system.
//
// The package includes:
//   - TableStatusResolver: derives a table's display status
//     (LIBRE / OCCUPEE / ATTENTE_PAIEMENT) from the statuses of its orders
//
// Domain services are stateless; they implement business logic that does not
// naturally belong to a single aggregate root.
package services
