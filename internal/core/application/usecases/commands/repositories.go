// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, access policy check,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest UoW shape it needs; the concrete
// GormUnitOfWork satisfies all of them.
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

	// ConsignmentRepoFactory provides access to the consignment repository within a transaction.
	ConsignmentRepoFactory interface {
		ConsignmentRepository() ports.ConsignmentRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// SequenceFactory provides access to the number sequence within a transaction.
	SequenceFactory interface {
		NumberSequence() ports.NumberSequence
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// AddCartItemUoW spans the cart and the inventory ledger: adding a line
	// checks availability without reserving anything.
	AddCartItemUoW interface {
		TxManager
		CartRepoFactory
		InventoryRepoFactory
	}

	// AddCartItemUoWFactory creates new add-to-cart unit of work instances.
	AddCartItemUoWFactory interface {
		Create() AddCartItemUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// CreateOrderUoW manages the order creation transaction: it spans the
	// cart (consumed), the inventory ledger (reserved), the number sequence
	// and the order itself.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		InventoryRepoFactory
		SequenceFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderStatusUoW manages order status transitions together with their
	// inventory side effects.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// OrderStatusUoWFactory creates new order status unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ConsignmentUoW manages consignment operations that may also touch the
	// parent order (creation preconditions, order auto-completion).
	ConsignmentUoW interface {
		TxManager
		ConsignmentRepoFactory
		OrderRepoFactory
		SequenceFactory
	}

	// ConsignmentUoWFactory creates new consignment unit of work instances.
	ConsignmentUoWFactory interface {
		Create() ConsignmentUoW
	}

	// DriverLocationUoW manages a single consignment event append during
	// location fan-out. Each append runs in its own transaction so one
	// failure cannot take down the others.
	DriverLocationUoW interface {
		TxManager
		ConsignmentRepoFactory
	}

	// DriverLocationUoWFactory creates new location fan-out unit of work instances.
	DriverLocationUoWFactory interface {
		Create() DriverLocationUoW
	}
)
