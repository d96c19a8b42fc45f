package queries

import (
	"context"
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

func queryActor(t *testing.T, role accesspolicy.Role, warehouseIDs ...kernel.UUID) accesspolicy.Actor {
	t.Helper()

	actor, err := accesspolicy.NewActor(kernel.NewUUID(), role, warehouseIDs)
	require.NoError(t, err)

	return actor
}

func TestGetCartQuery_Validation(t *testing.T) {
	buyerID := kernel.NewUUID()

	t.Run("constructed query validates", func(t *testing.T) {
		q, err := NewGetCartQuery(queryActor(t, accesspolicy.RoleBuyer), buyerID)
		require.NoError(t, err)
		assert.NoError(t, q.Validate())
		assert.True(t, q.BuyerID().IsEqual(buyerID))
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var q GetCartQuery
		assert.ErrorIs(t, q.Validate(), ErrGetCartQueryIsNotConstructed)
	})

	t.Run("zero buyer id is rejected", func(t *testing.T) {
		_, err := NewGetCartQuery(queryActor(t, accesspolicy.RoleBuyer), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestGetOrdersQuery_Paging(t *testing.T) {
	actor := queryActor(t, accesspolicy.RoleAdmin)

	t.Run("zero paging falls back to defaults", func(t *testing.T) {
		q, err := NewGetOrdersQuery(actor, order.StatusUnknown, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page())
		assert.Equal(t, defaultPerPage, q.PerPage())
	})

	t.Run("explicit paging is kept", func(t *testing.T) {
		q, err := NewGetOrdersQuery(actor, order.StatusPending, 3, 50)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Page())
		assert.Equal(t, 50, q.PerPage())
		assert.Equal(t, order.StatusPending, q.Status())
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		_, err := NewGetOrdersQuery(actor, order.StatusUnknown, -1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("oversized page size is rejected", func(t *testing.T) {
		_, err := NewGetOrdersQuery(actor, order.StatusUnknown, 1, maxPerPage+1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetConsignmentsQuery_Filters(t *testing.T) {
	actor := queryActor(t, accesspolicy.RoleAdmin)

	t.Run("nil filters mean unfiltered", func(t *testing.T) {
		q, err := NewGetConsignmentsQuery(actor, nil, nil, nil, consignment.StatusUnknown, 0, 0)
		require.NoError(t, err)
		assert.Nil(t, q.OrderID())
		assert.Nil(t, q.WarehouseID())
		assert.Nil(t, q.DriverID())
		assert.Equal(t, consignment.StatusUnknown, q.Status())
	})

	t.Run("filters are kept", func(t *testing.T) {
		orderID := kernel.NewUUID()
		warehouseID := kernel.NewUUID()

		q, err := NewGetConsignmentsQuery(actor, &orderID, &warehouseID, nil,
			consignment.StatusInTransit, 2, 25)
		require.NoError(t, err)
		assert.True(t, q.OrderID().IsEqual(orderID))
		assert.True(t, q.WarehouseID().IsEqual(warehouseID))
		assert.Equal(t, consignment.StatusInTransit, q.Status())
	})

	t.Run("zero filter id is rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := NewGetConsignmentsQuery(actor, &zero, nil, nil, consignment.StatusUnknown, 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestConsignmentScope(t *testing.T) {
	t.Run("admin is unscoped", func(t *testing.T) {
		where, args, err := consignmentScope(queryActor(t, accesspolicy.RoleAdmin))
		require.NoError(t, err)
		assert.Equal(t, "1=1", where)
		assert.Empty(t, args)
		assert.NotNil(t, args)
	})

	t.Run("ops is scoped to assigned warehouses", func(t *testing.T) {
		where, args, err := consignmentScope(queryActor(t, accesspolicy.RoleOps, kernel.NewUUID()))
		require.NoError(t, err)
		assert.Contains(t, where, "warehouse_id IN ?")
		assert.Len(t, args, 1)
	})

	t.Run("ops without warehouses matches nothing", func(t *testing.T) {
		_, args, err := consignmentScope(queryActor(t, accesspolicy.RoleOps))
		require.NoError(t, err)
		assert.Nil(t, args)
	})

	t.Run("driver sees own consignments only", func(t *testing.T) {
		actor := queryActor(t, accesspolicy.RoleDriver)
		where, args, err := consignmentScope(actor)
		require.NoError(t, err)
		assert.Contains(t, where, "driver_id = ?")
		assert.Equal(t, []any{actor.ID().Bytes()}, args)
	})

	t.Run("buyer is scoped through the parent order", func(t *testing.T) {
		where, _, err := consignmentScope(queryActor(t, accesspolicy.RoleBuyer))
		require.NoError(t, err)
		assert.Contains(t, where, "o.buyer_id = ?")
	})
}

func TestGetInventoryQuery_Validation(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		warehouseID := kernel.NewUUID()
		q, err := NewGetInventoryQuery(queryActor(t, accesspolicy.RoleOps, warehouseID), warehouseID)
		require.NoError(t, err)
		assert.NoError(t, q.Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var q GetInventoryQuery
		assert.ErrorIs(t, q.Validate(), ErrGetInventoryQueryIsNotConstructed)
	})
}

func TestGetOrderByNumberQuery_Validation(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		q, err := NewGetOrderByNumberQuery(queryActor(t, accesspolicy.RoleBuyer), "ORD2509010001")
		require.NoError(t, err)
		assert.NoError(t, q.Validate())
		assert.Equal(t, "ORD2509010001", q.OrderNumber())
	})

	t.Run("empty number is rejected", func(t *testing.T) {
		_, err := NewGetOrderByNumberQuery(queryActor(t, accesspolicy.RoleBuyer), "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var q GetOrderByNumberQuery
		assert.ErrorIs(t, q.Validate(), ErrGetOrderByNumberQueryIsNotConstructed)
	})
}

type stubOrderByNumberRepository struct {
	aggregate *order.Order
}

func (r stubOrderByNumberRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (r stubOrderByNumberRepository) Update(_ context.Context, _ *order.Order) error { return nil }

func (r stubOrderByNumberRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("orderID", id)
}

func (r stubOrderByNumberRepository) GetByNumber(_ context.Context, orderNumber string) (*order.Order, error) {
	if r.aggregate != nil && r.aggregate.OrderNumber() == orderNumber {
		return r.aggregate, nil
	}
	return nil, errs.NewObjectNotFoundError("orderNumber", orderNumber)
}

func TestGetOrderByNumberQueryHandler(t *testing.T) {
	buyerID := kernel.NewUUID()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 25.0, order.TaxFor(50.0))
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), "ORD2509010001", buyerID,
		kernel.NewUUID(), []order.Item{item}, time.Now().UTC())
	require.NoError(t, err)

	handler := NewGetOrderByNumberQueryHandler(stubOrderByNumberRepository{aggregate: aggregate})

	t.Run("owner resolves own number", func(t *testing.T) {
		owner, err := accesspolicy.NewActor(buyerID, accesspolicy.RoleBuyer, nil)
		require.NoError(t, err)

		q, err := NewGetOrderByNumberQuery(owner, "ORD2509010001")
		require.NoError(t, err)

		response, err := handler.Handle(context.Background(), q)
		require.NoError(t, err)
		assert.True(t, response.ID.IsEqual(aggregate.ID()))
		assert.Equal(t, "ORD2509010001", response.OrderNumber)
		assert.Len(t, response.Items, 1)
	})

	t.Run("foreign buyer is forbidden", func(t *testing.T) {
		q, err := NewGetOrderByNumberQuery(queryActor(t, accesspolicy.RoleBuyer), "ORD2509010001")
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), q)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown number is not found", func(t *testing.T) {
		q, err := NewGetOrderByNumberQuery(queryActor(t, accesspolicy.RoleAdmin), "ORD2509019999")
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), q)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetOrderQuery_RejectsZeroInputs(t *testing.T) {
	var zeroActor accesspolicy.Actor

	_, err := NewGetOrderQuery(zeroActor, kernel.NewUUID())
	require.Error(t, err)

	_, err = NewGetOrderQuery(queryActor(t, accesspolicy.RoleAdmin), kernel.UUID{})
	require.Error(t, err)
}
