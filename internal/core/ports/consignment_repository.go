package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// ConsignmentRepository defines the persistence contract for consignment
// aggregates. Events are persisted append-only alongside the aggregate:
// Update writes only events not yet stored.
type ConsignmentRepository interface {
	// Add persists a new consignment aggregate including its initial event.
	Add(ctx context.Context, aggregate *consignment.Consignment) error

	// Update persists changes to an existing consignment aggregate and
	// appends any new events. Previously stored events are never modified.
	Update(ctx context.Context, aggregate *consignment.Consignment) error

	// Get retrieves a consignment aggregate by its unique identifier,
	// with its full event trail ordered oldest first.
	Get(ctx context.Context, id kernel.UUID) (*consignment.Consignment, error)

	// GetByOrder retrieves all consignments belonging to an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*consignment.Consignment, error)

	// GetActiveByDriver retrieves consignments assigned to a driver that are
	// not in a terminal status. Used for location fan-out.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*consignment.Consignment, error)

	// ExistsForOrderAndWarehouse reports whether a non-cancelled consignment
	// already covers the (order, warehouse) pair.
	ExistsForOrderAndWarehouse(ctx context.Context, orderID, warehouseID kernel.UUID) (bool, error)
}
