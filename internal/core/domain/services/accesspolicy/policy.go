// Package accesspolicy is the single place where role-based visibility and
// mutation rules are decided. Every predicate is a pure function of
// (actor, resource) returning nil or a ForbiddenError with a caller-safe
// reason; command and query handlers evaluate exactly one predicate per
// operation instead of branching on roles inline.
package accesspolicy

import (
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ConsignmentChanges declares which consignment fields an update intends to
// touch. The driver role is only allowed the delivery-progress subset.
type ConsignmentChanges struct {
	Status            bool
	DeliveredAt       bool
	Notes             bool
	Driver            bool
	EstimatedDelivery bool
}

// driverWritable reports whether the change set stays within the fields a
// driver may touch: status, actual delivery date, and notes.
func (c ConsignmentChanges) driverWritable() bool {
	return !c.Driver && !c.EstimatedDelivery
}

// CanViewOrder decides read access to one order. Takes the owning buyer
// and the warehouses the order draws from so both the write side (with the
// aggregate) and the read side (with a read model) can evaluate it.
func CanViewOrder(actor Actor, buyerID kernel.UUID, warehouseIDs []kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleBuyer:
		if buyerID.IsEqual(actor.ID()) {
			return nil
		}
		return errs.NewForbiddenError("buyers may only view their own orders")
	case RoleOps:
		if actor.HasAnyWarehouse(warehouseIDs) {
			return nil
		}
		return errs.NewForbiddenError("order does not touch an assigned warehouse")
	default:
		return errs.NewForbiddenError("role may not view orders")
	}
}

// CanCreateOrder decides who may place an order from a cart. Orders are
// placed by buyers for themselves.
func CanCreateOrder(actor Actor, buyerID kernel.UUID) error {
	if actor.Role() == RoleBuyer && actor.ID().IsEqual(buyerID) {
		return nil
	}
	return errs.NewForbiddenError("only the buyer may place an order from their cart")
}

// CanUpdateOrderStatus decides who may drive the order state machine.
// Restricted to back-office roles; Ops additionally needs warehouse overlap.
func CanUpdateOrderStatus(actor Actor, o *order.Order) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleOps:
		if actor.HasAnyWarehouse(o.WarehouseIDs()) {
			return nil
		}
		return errs.NewForbiddenError("order does not touch an assigned warehouse")
	default:
		return errs.NewForbiddenError("role may not update order status")
	}
}

// CanUpdatePaymentStatus decides who may record payment outcomes.
// Same back-office restriction as order status.
func CanUpdatePaymentStatus(actor Actor, o *order.Order) error {
	return CanUpdateOrderStatus(actor, o)
}

// CanCancelOrder decides who may cancel. Back-office roles always may (per
// warehouse scope); a buyer may cancel their own order.
func CanCancelOrder(actor Actor, o *order.Order) error {
	if actor.Role() == RoleBuyer {
		if o.BuyerID().IsEqual(actor.ID()) {
			return nil
		}
		return errs.NewForbiddenError("buyers may only cancel their own orders")
	}
	return CanUpdateOrderStatus(actor, o)
}

// CanViewConsignment decides read access to one consignment. orderBuyerID is
// the parent order's buyer, resolved by the caller; driverID is nil while
// the consignment is unassigned.
func CanViewConsignment(actor Actor, orderBuyerID, warehouseID kernel.UUID, driverID *kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleOps:
		if actor.HasWarehouse(warehouseID) {
			return nil
		}
		return errs.NewForbiddenError("consignment warehouse is not in the assignment set")
	case RoleDriver:
		if driverID != nil && driverID.IsEqual(actor.ID()) {
			return nil
		}
		return errs.NewForbiddenError("drivers may only view consignments assigned to them")
	case RoleBuyer:
		if orderBuyerID.IsEqual(actor.ID()) {
			return nil
		}
		return errs.NewForbiddenError("buyers may only view consignments of their own orders")
	default:
		return errs.NewForbiddenError("role may not view consignments")
	}
}

// CanCreateConsignment decides who may create a consignment for a warehouse.
func CanCreateConsignment(actor Actor, warehouseID kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleOps:
		if actor.HasWarehouse(warehouseID) {
			return nil
		}
		return errs.NewForbiddenError("warehouse is not in the assignment set")
	default:
		return errs.NewForbiddenError("role may not create consignments")
	}
}

// CanUpdateConsignment decides write access for a declared change set.
//
// A driver must be the currently assigned driver and may only touch status,
// actual delivery date, and notes; in particular a driver can never reassign
// the consignment, not even to themselves.
func CanUpdateConsignment(actor Actor, c *consignment.Consignment, changes ConsignmentChanges) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleOps:
		if actor.HasWarehouse(c.WarehouseID()) {
			return nil
		}
		return errs.NewForbiddenError("consignment warehouse is not in the assignment set")
	case RoleDriver:
		if c.DriverID() == nil || !c.DriverID().IsEqual(actor.ID()) {
			return errs.NewForbiddenError("drivers may only update consignments assigned to them")
		}
		if !changes.driverWritable() {
			return errs.NewForbiddenError("drivers may only update status, delivery date, and notes")
		}
		return nil
	default:
		return errs.NewForbiddenError("role may not update consignments")
	}
}

// CanAssignDriver decides who may assign or reassign a consignment's driver.
func CanAssignDriver(actor Actor, c *consignment.Consignment) error {
	return CanUpdateConsignment(actor, c, ConsignmentChanges{Driver: true})
}

// CanRecordDriverLocation decides who may push a location update for a
// driver. Drivers ping for themselves; admin may replay on their behalf.
func CanRecordDriverLocation(actor Actor, driverID kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleDriver:
		if actor.ID().IsEqual(driverID) {
			return nil
		}
		return errs.NewForbiddenError("drivers may only report their own location")
	default:
		return errs.NewForbiddenError("role may not report driver locations")
	}
}

// CanViewInventory decides read access to a warehouse's ledger records.
func CanViewInventory(actor Actor, warehouseID kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleOps:
		if actor.HasWarehouse(warehouseID) {
			return nil
		}
		return errs.NewForbiddenError("warehouse is not in the assignment set")
	default:
		return errs.NewForbiddenError("role may not view inventory")
	}
}

// CanAdjustInventory decides who may change on-hand stock levels.
func CanAdjustInventory(actor Actor, warehouseID kernel.UUID) error {
	return CanViewInventory(actor, warehouseID)
}

// CanAccessCart decides access to a buyer's cart. Carts are private to their
// buyer; admin may inspect for support.
func CanAccessCart(actor Actor, buyerID kernel.UUID) error {
	switch actor.Role() {
	case RoleAdmin:
		return nil
	case RoleBuyer:
		if actor.ID().IsEqual(buyerID) {
			return nil
		}
		return errs.NewForbiddenError("buyers may only access their own cart")
	default:
		return errs.NewForbiddenError("role may not access carts")
	}
}
