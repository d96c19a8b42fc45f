package accesspolicy_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role accesspolicy.Role, warehouseIDs ...kernel.UUID) accesspolicy.Actor {
	t.Helper()
	actor, err := accesspolicy.NewActor(kernel.NewUUID(), role, warehouseIDs)
	require.NoError(t, err)
	return actor
}

func orderForBuyer(t *testing.T, buyerID, warehouseID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), warehouseID, 1, 100, 18)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD2509010001", buyerID,
		kernel.NewUUID(), []order.Item{item}, time.Now())
	require.NoError(t, err)
	return o
}

func consignmentForWarehouse(t *testing.T, warehouseID kernel.UUID) *consignment.Consignment {
	t.Helper()
	c, err := consignment.NewConsignment(kernel.NewUUID(), "CON2509010001",
		kernel.NewUUID(), warehouseID, kernel.NewUUID(), kernel.NewUUID(),
		nil, time.Now())
	require.NoError(t, err)
	return c
}

func TestRoleFromString(t *testing.T) {
	for _, role := range []accesspolicy.Role{
		accesspolicy.RoleAdmin,
		accesspolicy.RoleOps,
		accesspolicy.RoleBuyer,
		accesspolicy.RoleDriver,
	} {
		parsed, err := accesspolicy.RoleFromString(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := accesspolicy.RoleFromString("Superuser")
	require.Error(t, err)
}

func TestCanViewOrder(t *testing.T) {
	buyerID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	o := orderForBuyer(t, buyerID, warehouseID)

	t.Run("admin sees all", func(t *testing.T) {
		require.NoError(t, accesspolicy.CanViewOrder(
			mustActor(t, accesspolicy.RoleAdmin), o.BuyerID(), o.WarehouseIDs()))
	})

	t.Run("buyer sees own order only", func(t *testing.T) {
		owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
		require.NoError(t, err)
		require.NoError(t, accesspolicy.CanViewOrder(owner, o.BuyerID(), o.WarehouseIDs()))

		err = accesspolicy.CanViewOrder(
			mustActor(t, accesspolicy.RoleBuyer), o.BuyerID(), o.WarehouseIDs())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("ops scoped by warehouse", func(t *testing.T) {
		require.NoError(t, accesspolicy.CanViewOrder(
			mustActor(t, accesspolicy.RoleOps, warehouseID), o.BuyerID(), o.WarehouseIDs()))

		err := accesspolicy.CanViewOrder(
			mustActor(t, accesspolicy.RoleOps, kernel.NewUUID()), o.BuyerID(), o.WarehouseIDs())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("driver denied", func(t *testing.T) {
		err := accesspolicy.CanViewOrder(
			mustActor(t, accesspolicy.RoleDriver), o.BuyerID(), o.WarehouseIDs())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestCanCreateOrder(t *testing.T) {
	buyerID := kernel.NewUUID()
	owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
	require.NoError(t, err)

	require.NoError(t, accesspolicy.CanCreateOrder(owner, buyerID))
	assert.ErrorIs(t, accesspolicy.CanCreateOrder(owner, kernel.NewUUID()), errs.ErrForbidden)
	assert.ErrorIs(t, accesspolicy.CanCreateOrder(mustActor(t, accesspolicy.RoleAdmin), buyerID), errs.ErrForbidden)
}

func TestCanUpdateOrderStatus(t *testing.T) {
	warehouseID := kernel.NewUUID()
	o := orderForBuyer(t, kernel.NewUUID(), warehouseID)

	require.NoError(t, accesspolicy.CanUpdateOrderStatus(mustActor(t, accesspolicy.RoleAdmin), o))
	require.NoError(t, accesspolicy.CanUpdateOrderStatus(mustActor(t, accesspolicy.RoleOps, warehouseID), o))
	assert.ErrorIs(t, accesspolicy.CanUpdateOrderStatus(mustActor(t, accesspolicy.RoleOps, kernel.NewUUID()), o), errs.ErrForbidden)
	assert.ErrorIs(t, accesspolicy.CanUpdateOrderStatus(mustActor(t, accesspolicy.RoleBuyer), o), errs.ErrForbidden)
	assert.ErrorIs(t, accesspolicy.CanUpdateOrderStatus(mustActor(t, accesspolicy.RoleDriver), o), errs.ErrForbidden)
}

func TestCanCancelOrder(t *testing.T) {
	buyerID := kernel.NewUUID()
	o := orderForBuyer(t, buyerID, kernel.NewUUID())

	owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
	require.NoError(t, err)
	require.NoError(t, accesspolicy.CanCancelOrder(owner, o))
	assert.ErrorIs(t, accesspolicy.CanCancelOrder(mustActor(t, accesspolicy.RoleBuyer), o), errs.ErrForbidden)
}

func TestCanViewConsignment(t *testing.T) {
	warehouseID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	c := consignmentForWarehouse(t, warehouseID)

	require.NoError(t, accesspolicy.CanViewConsignment(
		mustActor(t, accesspolicy.RoleAdmin), buyerID, c.WarehouseID(), c.DriverID()))
	require.NoError(t, accesspolicy.CanViewConsignment(
		mustActor(t, accesspolicy.RoleOps, warehouseID), buyerID, c.WarehouseID(), c.DriverID()))

	t.Run("unassigned driver denied", func(t *testing.T) {
		err := accesspolicy.CanViewConsignment(
			mustActor(t, accesspolicy.RoleDriver), buyerID, c.WarehouseID(), nil)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("assigned driver may view", func(t *testing.T) {
		driver := mustActor(t, accesspolicy.RoleDriver)
		require.NoError(t, c.AssignDriver(driver.ID(), time.Now()))
		require.NoError(t, accesspolicy.CanViewConsignment(
			driver, buyerID, c.WarehouseID(), c.DriverID()))

		stranger := mustActor(t, accesspolicy.RoleDriver)
		assert.ErrorIs(t, accesspolicy.CanViewConsignment(
			stranger, buyerID, c.WarehouseID(), c.DriverID()), errs.ErrForbidden)
	})

	t.Run("buyer scoped by parent order", func(t *testing.T) {
		owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
		require.NoError(t, err)
		require.NoError(t, accesspolicy.CanViewConsignment(
			owner, buyerID, c.WarehouseID(), c.DriverID()))
		assert.ErrorIs(t, accesspolicy.CanViewConsignment(
			mustActor(t, accesspolicy.RoleBuyer), buyerID, c.WarehouseID(), c.DriverID()), errs.ErrForbidden)
	})
}

func TestCanUpdateConsignment_DriverFieldRestriction(t *testing.T) {
	warehouseID := kernel.NewUUID()
	c := consignmentForWarehouse(t, warehouseID)
	driver := mustActor(t, accesspolicy.RoleDriver)
	require.NoError(t, c.AssignDriver(driver.ID(), time.Now()))

	t.Run("assigned driver may progress delivery", func(t *testing.T) {
		changes := accesspolicy.ConsignmentChanges{Status: true, DeliveredAt: true, Notes: true}
		require.NoError(t, accesspolicy.CanUpdateConsignment(driver, c, changes))
	})

	t.Run("assigned driver may not reassign, even to themselves", func(t *testing.T) {
		err := accesspolicy.CanUpdateConsignment(driver, c, accesspolicy.ConsignmentChanges{Driver: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		assert.ErrorIs(t, accesspolicy.CanAssignDriver(driver, c), errs.ErrForbidden)
	})

	t.Run("unassigned driver denied entirely", func(t *testing.T) {
		stranger := mustActor(t, accesspolicy.RoleDriver)
		err := accesspolicy.CanUpdateConsignment(stranger, c, accesspolicy.ConsignmentChanges{Status: true})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("ops scoped by warehouse", func(t *testing.T) {
		require.NoError(t, accesspolicy.CanUpdateConsignment(
			mustActor(t, accesspolicy.RoleOps, warehouseID), c,
			accesspolicy.ConsignmentChanges{Driver: true}))
		assert.ErrorIs(t, accesspolicy.CanUpdateConsignment(
			mustActor(t, accesspolicy.RoleOps, kernel.NewUUID()), c,
			accesspolicy.ConsignmentChanges{Status: true}), errs.ErrForbidden)
	})
}

func TestCanRecordDriverLocation(t *testing.T) {
	driver := mustActor(t, accesspolicy.RoleDriver)

	require.NoError(t, accesspolicy.CanRecordDriverLocation(driver, driver.ID()))
	assert.ErrorIs(t, accesspolicy.CanRecordDriverLocation(driver, kernel.NewUUID()), errs.ErrForbidden)
	require.NoError(t, accesspolicy.CanRecordDriverLocation(mustActor(t, accesspolicy.RoleAdmin), kernel.NewUUID()))
	assert.ErrorIs(t, accesspolicy.CanRecordDriverLocation(mustActor(t, accesspolicy.RoleOps), kernel.NewUUID()), errs.ErrForbidden)
}

func TestCanViewInventory(t *testing.T) {
	warehouseID := kernel.NewUUID()

	require.NoError(t, accesspolicy.CanViewInventory(mustActor(t, accesspolicy.RoleAdmin), warehouseID))
	require.NoError(t, accesspolicy.CanViewInventory(mustActor(t, accesspolicy.RoleOps, warehouseID), warehouseID))
	assert.ErrorIs(t, accesspolicy.CanViewInventory(mustActor(t, accesspolicy.RoleOps, kernel.NewUUID()), warehouseID), errs.ErrForbidden)
	assert.ErrorIs(t, accesspolicy.CanViewInventory(mustActor(t, accesspolicy.RoleBuyer), warehouseID), errs.ErrForbidden)
}

func TestCanAccessCart(t *testing.T) {
	buyerID := kernel.NewUUID()
	owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
	require.NoError(t, err)

	require.NoError(t, accesspolicy.CanAccessCart(owner, buyerID))
	require.NoError(t, accesspolicy.CanAccessCart(mustActor(t, accesspolicy.RoleAdmin), buyerID))
	assert.ErrorIs(t, accesspolicy.CanAccessCart(mustActor(t, accesspolicy.RoleBuyer), buyerID), errs.ErrForbidden)
	assert.ErrorIs(t, accesspolicy.CanAccessCart(mustActor(t, accesspolicy.RoleDriver), buyerID), errs.ErrForbidden)
}

func TestActor_HasWarehouse(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	actor := mustActor(t, accesspolicy.RoleOps, a)

	assert.True(t, actor.HasWarehouse(a))
	assert.False(t, actor.HasWarehouse(b))
	assert.True(t, actor.HasAnyWarehouse([]kernel.UUID{b, a}))
	assert.False(t, actor.HasAnyWarehouse([]kernel.UUID{b}))
}

func TestActor_Validate(t *testing.T) {
	var actor accesspolicy.Actor
	assert.Equal(t, accesspolicy.ErrActorIsNotConstructed, actor.Validate())

	_, err := accesspolicy.NewActor(kernel.UUID{}, accesspolicy.RoleAdmin, nil)
	require.Error(t, err)

	_, err = accesspolicy.NewActor(kernel.NewUUID(), accesspolicy.RoleUnknown, nil)
	require.Error(t, err)
}
