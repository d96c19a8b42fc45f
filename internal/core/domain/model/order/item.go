package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line: a product fulfilled from one warehouse at a unit
// price snapshotted at order time. Later catalog price changes never affect
// an existing order.
type Item struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int
	unitPrice   float64
	lineTax     float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line with the given snapshot values.
// Quantity must be positive; unit price and line tax must not be negative.
func NewItem(productID, warehouseID kernel.UUID, quantity int, unitPrice, lineTax float64) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setWarehouseID(warehouseID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setLineTax(lineTax),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the ordered product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// WarehouseID returns the warehouse this line is fulfilled from.
func (i Item) WarehouseID() kernel.UUID {
	return i.warehouseID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// LineTax returns the tax amount for this line.
func (i Item) LineTax() float64 {
	return i.lineTax
}

// LineSubtotal returns quantity times unit price, before tax.
func (i Item) LineSubtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	i.warehouseID = warehouseID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setLineTax(lineTax float64) error {
	if lineTax < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineTax",
			fmt.Errorf("%f is negative", lineTax))
	}
	i.lineTax = lineTax
	return nil
}
