// Package dinnertable provides the Table aggregate for the restaurant system.
// The package is named dinnertable to keep call sites unambiguous where
// database tables are also in play.
//
// A Table owns the orders ever placed at it. Occupancy is never stored:
// it is derived on every read from the statuses of the associated orders
// (a table is occupied while any order is neither finalized, cancelled nor
// paid). This avoids the stale-flag divergence a stored occupancy bit
// inevitably develops.
package dinnertable
