package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Product is the catalog snapshot used when pricing cart lines and
// order items. UnitPrice is captured at add-to-cart time and never
// re-read afterwards.
type Product struct {
	ID          kernel.UUID
	Name        string
	UnitPrice   float64
	MinOrderQty int
	IsActive    bool
}

// Catalog provides read access to the product catalog.
type Catalog interface {
	// GetProduct retrieves a product by its identifier.
	// Returns errs.ObjectNotFoundError when the product does not exist.
	GetProduct(ctx context.Context, productID kernel.UUID) (*Product, error)
}
