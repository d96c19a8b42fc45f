package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery lists the inventory ledger of one warehouse.
type GetInventoryQuery struct { //nolint:recvcheck //using for validation
	actor       accesspolicy.Actor
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates an inventory listing query.
func NewGetInventoryQuery(actor accesspolicy.Actor, warehouseID kernel.UUID) (GetInventoryQuery, error) {
	q := GetInventoryQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setWarehouseID(warehouseID),
	); err != nil {
		return GetInventoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// Actor returns the caller performing the operation.
func (q GetInventoryQuery) Actor() accesspolicy.Actor {
	return q.actor
}

// WarehouseID returns the warehouse whose ledger is requested.
func (q GetInventoryQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

func (q *GetInventoryQuery) setActor(actor accesspolicy.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetInventoryQuery) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	q.warehouseID = warehouseID
	return nil
}

// InventoryRecordResponse is one ledger line in the read model.
// Available is derived: quantity minus the outstanding reservations.
type InventoryRecordResponse struct {
	ProductID        kernel.UUID
	WarehouseID      kernel.UUID
	Quantity         int
	ReservedQuantity int
	Available        int
}
