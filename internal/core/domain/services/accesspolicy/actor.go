package accesspolicy

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the acting user as the policy sees them: an identity, a role, and
// (for Ops) the warehouse assignment set. Actors are resolved by the auth
// collaborator at the edge and passed unchanged through every entry point so
// that policy decisions are identical for API routes, jobs, and sockets.
type Actor struct {
	id           kernel.UUID
	role         Role
	warehouseIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewActor creates an actor. warehouseIDs is only meaningful for RoleOps and
// may be nil for every other role.
func NewActor(id kernel.UUID, role Role, warehouseIDs []kernel.UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	for _, warehouseID := range warehouseIDs {
		if err := warehouseID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:           id,
		role:         role,
		warehouseIDs: warehouseIDs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's capability class.
func (a Actor) Role() Role {
	return a.role
}

// WarehouseIDs returns the Ops warehouse assignment set.
func (a Actor) WarehouseIDs() []kernel.UUID {
	return a.warehouseIDs
}

// HasWarehouse reports whether the warehouse is in the assignment set.
func (a Actor) HasWarehouse(warehouseID kernel.UUID) bool {
	for _, id := range a.warehouseIDs {
		if id.IsEqual(warehouseID) {
			return true
		}
	}
	return false
}

// HasAnyWarehouse reports whether any of the given warehouses is in the
// assignment set.
func (a Actor) HasAnyWarehouse(warehouseIDs []kernel.UUID) bool {
	for _, id := range warehouseIDs {
		if a.HasWarehouse(id) {
			return true
		}
	}
	return false
}
