// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agrikart/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProduceRepoFactory provides access to the stock ledger within a transaction.
	ProduceRepoFactory interface {
		ProduceRepository() ports.ProduceRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// PartyRepoFactory provides access to buyer and farmer reference data
	// within a transaction.
	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
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

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CartUoW manages transactions for cart operations. Cart additions read
	// the stock ledger to verify the listing exists before writing the line.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProduceRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// AssignmentUoW manages transactions for the assignment sweep, which reads
	// orders and couriers and writes assignment records.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CheckoutUoW manages the order-creation transaction, which touches every
	// aggregate: cart lines in, stock decrements, the order row, the courier
	// assignment, and party reference data.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ProduceRepoFactory
		CourierRepoFactory
		CartRepoFactory
		PartyRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
