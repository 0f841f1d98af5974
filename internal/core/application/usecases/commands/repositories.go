// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"resto/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// MenuRepoFactory provides access to menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TableUoW manages transactions for table-only operations.
	// Used when commands only modify table aggregates.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// MenuUoW manages transactions for menu catalogue operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderTableUoW manages transactions across order and table aggregates.
	// Used for commands that coordinate order lifecycle with table occupancy.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   tableRepo := uow.TableRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderTableUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// OrderTableUoWFactory creates new unit of work instances for order and table operations.
	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}

	// OrderMenuUoW manages transactions across order and menu aggregates.
	// Used for commands that snapshot catalogue prices into orders.
	OrderMenuUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// OrderMenuUoWFactory creates new unit of work instances for order and menu operations.
	OrderMenuUoWFactory interface {
		Create() OrderMenuUoW
	}
)
