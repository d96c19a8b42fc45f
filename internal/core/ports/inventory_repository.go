package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory records.
//
// Reserve, Release and Commit must be implemented as single conditional
// updates so that concurrent mutations of the same (warehouse, product)
// record cannot oversell: the availability check and the write happen in
// one statement, not read-modify-write.
type InventoryRepository interface {
	// Get retrieves the record for a (warehouse, product) pair.
	Get(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Record, error)

	// GetByWarehouse retrieves all records for a warehouse.
	GetByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*inventory.Record, error)

	// Upsert creates the record or replaces its on-hand quantity.
	// Reserved quantity is preserved on update.
	Upsert(ctx context.Context, record *inventory.Record) error

	// Reserve atomically moves quantity from available to reserved.
	// Returns errs.InsufficientInventoryError when available stock
	// (quantity - reserved) is less than the requested amount.
	Reserve(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error

	// Release atomically returns reserved quantity to available.
	// Returns errs.ErrValueIsInvalid when the release would exceed
	// the currently reserved amount.
	Release(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error

	// Commit atomically consumes reserved quantity, decrementing both
	// quantity and reserved. Returns errs.ErrValueIsInvalid when the
	// commit would exceed the currently reserved amount.
	Commit(ctx context.Context, warehouseID, productID kernel.UUID, quantity int) error

	// AdjustStock atomically adds delta to on-hand quantity. Used for
	// restocking after post-confirmation cancellations and for manual
	// adjustments. Negative deltas may not take quantity below reserved.
	AdjustStock(ctx context.Context, warehouseID, productID kernel.UUID, delta int) error
}
