// Package inventory contains the stock ledger's domain type. A Record tracks,
// per (warehouse, product) pair, the total quantity on hand and how much of
// it is reserved by unconfirmed orders.
//
// The ledger invariant is 0 <= reservedQuantity <= quantity. The persistence
// adapter enforces it with single-statement conditional updates; this type
// expresses the same protocol for domain logic and tests.
package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Record is the stock ledger entry for one (warehouse, product) pair.
type Record struct {
	warehouseID      kernel.UUID
	productID        kernel.UUID
	quantity         int
	reservedQuantity int

	guard guard.ConstructorGuard
}

// NewRecord creates a ledger entry with the given on-hand quantity and no
// reservations.
func NewRecord(warehouseID, productID kernel.UUID, quantity int) (*Record, error) {
	return RestoreRecord(warehouseID, productID, quantity, 0)
}

// RestoreRecord reconstructs a ledger entry from persistence, checking the
// ledger invariant on the stored counters.
func RestoreRecord(warehouseID, productID kernel.UUID, quantity, reservedQuantity int) (*Record, error) {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	if reservedQuantity < 0 || reservedQuantity > quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("reservedQuantity",
			fmt.Errorf("%d is not between 0 and %d", reservedQuantity, quantity))
	}

	return &Record{
		warehouseID:      warehouseID,
		productID:        productID,
		quantity:         quantity,
		reservedQuantity: reservedQuantity,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// WarehouseID returns the warehouse half of the ledger key.
func (r *Record) WarehouseID() kernel.UUID {
	return r.warehouseID
}

// ProductID returns the product half of the ledger key.
func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// Quantity returns the total quantity on hand, reserved or not.
func (r *Record) Quantity() int {
	return r.quantity
}

// ReservedQuantity returns the quantity committed to unconfirmed orders.
func (r *Record) ReservedQuantity() int {
	return r.reservedQuantity
}

// Available returns the quantity that can still be reserved.
func (r *Record) Available() int {
	return r.quantity - r.reservedQuantity
}

// CanReserve reports whether a reservation of qty would keep the invariant.
func (r *Record) CanReserve(qty int) bool {
	return qty > 0 && r.Available() >= qty
}

// Reserve places a soft hold on qty units. Fails with
// InsufficientInventoryError when fewer than qty units are available.
func (r *Record) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if !r.CanReserve(qty) {
		return errs.NewInsufficientInventoryError(r.warehouseID.String(), r.productID.String(), qty)
	}
	r.reservedQuantity += qty
	return nil
}

// Release drops a soft hold of qty units. Guarded: releasing more than is
// currently reserved is rejected rather than letting the counter go negative,
// so a duplicated cancellation cannot corrupt the ledger.
func (r *Record) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if r.reservedQuantity < qty {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("release of %d exceeds reserved %d", qty, r.reservedQuantity))
	}
	r.reservedQuantity -= qty
	return nil
}

// Commit converts a reservation into a permanent deduction: both counters
// drop by qty. Requires an outstanding reservation of at least qty.
func (r *Record) Commit(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if r.reservedQuantity < qty {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("commit of %d exceeds reserved %d", qty, r.reservedQuantity))
	}
	r.quantity -= qty
	r.reservedQuantity -= qty
	return nil
}

// AddStock increases the on-hand quantity, e.g. on a warehouse intake.
func (r *Record) AddStock(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	r.quantity += qty
	return nil
}
