package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"

	"github.com/stretchr/testify/require"
)

func actorWithRole(t *testing.T, role accesspolicy.Role, warehouseIDs ...kernel.UUID) accesspolicy.Actor {
	t.Helper()
	actor, err := accesspolicy.NewActor(kernel.NewUUID(), role, warehouseIDs)
	require.NoError(t, err)
	return actor
}

func buyerActor(t *testing.T, buyerID kernel.UUID) accesspolicy.Actor {
	t.Helper()
	actor, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
	require.NoError(t, err)
	return actor
}

func cartLine(t *testing.T, buyerID, productID, warehouseID kernel.UUID, qty int, price float64) *cart.Item {
	t.Helper()
	item, err := cart.NewItem(kernel.NewUUID(), buyerID, productID, warehouseID, qty, price, time.Now().UTC())
	require.NoError(t, err)
	return item
}

func orderWithStatus(t *testing.T, buyerID, warehouseID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), warehouseID, 3, 100, 54)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD2509010001", buyerID, kernel.NewUUID(),
		[]order.Item{item}, status, order.PaymentStatusPending,
		300, 54, 354, nil, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func consignmentWithStatus(t *testing.T, orderID, warehouseID kernel.UUID, driverID *kernel.UUID, status consignment.Status) *consignment.Consignment {
	t.Helper()
	c, err := consignment.RestoreConsignment(
		kernel.NewUUID(), "CON2509010001", orderID, warehouseID, driverID,
		status, kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil,
		time.Now().UTC())
	require.NoError(t, err)
	return c
}
