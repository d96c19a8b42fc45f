package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart line items.
// A buyer's cart is the set of their items; there is no separate cart
// aggregate row.
type CartRepository interface {
	// Add persists a new cart item.
	Add(ctx context.Context, item *cart.Item) error

	// Update persists changes to an existing cart item.
	Update(ctx context.Context, item *cart.Item) error

	// Get retrieves a cart item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Item, error)

	// GetByBuyer retrieves all items in a buyer's cart, oldest first.
	GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.Item, error)

	// FindLine retrieves the buyer's item for a (product, warehouse) pair.
	// Returns errs.ObjectNotFoundError when no such line exists.
	FindLine(ctx context.Context, buyerID, productID, warehouseID kernel.UUID) (*cart.Item, error)

	// Delete removes a cart item.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByBuyer removes every item in a buyer's cart.
	DeleteByBuyer(ctx context.Context, buyerID kernel.UUID) error

	// DeleteOlderThan removes cart items added before the cutoff.
	// Returns the number of removed items.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
