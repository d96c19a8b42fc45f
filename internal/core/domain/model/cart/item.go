// Package cart contains the buyer's staging area: candidate line items that
// become an order on checkout. Cart items carry a unit price snapshot taken
// when the item was added; they have no status and no lifecycle beyond
// creation, quantity updates, and removal.
package cart

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem.
var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem constructor")

// Item is one candidate line in a buyer's cart: a product from a specific
// warehouse with a quantity and the unit price seen when it was added.
type Item struct {
	id          kernel.UUID
	buyerID     kernel.UUID
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int
	unitPrice   float64
	addedAt     time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a cart line for a buyer. Quantity must be positive and the
// unit price non-negative.
func NewItem(
	id kernel.UUID,
	buyerID kernel.UUID,
	productID kernel.UUID,
	warehouseID kernel.UUID,
	quantity int,
	unitPrice float64,
	addedAt time.Time,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		productID.Validate(),
		warehouseID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return &Item{
		id:          id,
		buyerID:     buyerID,
		productID:   productID,
		warehouseID: warehouseID,
		quantity:    quantity,
		unitPrice:   unitPrice,
		addedAt:     addedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the cart line's identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// BuyerID returns the owning buyer's identifier.
func (i *Item) BuyerID() kernel.UUID {
	return i.buyerID
}

// ProductID returns the staged product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// WarehouseID returns the warehouse the line would be fulfilled from.
func (i *Item) WarehouseID() kernel.UUID {
	return i.warehouseID
}

// Quantity returns the staged quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshotted when the item was added.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// AddedAt returns when the line was first staged.
func (i *Item) AddedAt() time.Time {
	return i.addedAt
}

// SetQuantity replaces the staged quantity. Zero and negative are rejected;
// removal is a separate operation.
func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// Merge folds another add of the same (product, warehouse) pair into this
// line by summing quantities. The original price snapshot is kept.
func (i *Item) Merge(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity += quantity
	return nil
}

// MatchesLine reports whether this item stages the same (product, warehouse)
// pair, i.e. whether an add should merge instead of creating a new line.
func (i *Item) MatchesLine(productID, warehouseID kernel.UUID) bool {
	return i.productID.IsEqual(productID) && i.warehouseID.IsEqual(warehouseID)
}
