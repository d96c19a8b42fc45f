package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateConsignmentCommandHandler_Handle_DriverProgressesDelivery(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, accesspolicy.RoleDriver)
	driverID := driver.ID()
	aggregate := consignmentWithStatus(t, kernel.NewUUID(), kernel.NewUUID(), &driverID, consignment.StatusPickedUp)

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConsignmentRepository").Return(consignmentRepo)
	consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	consignmentRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateConsignmentCommand(
		driver, aggregate.ID(), consignment.StatusInTransit, "left the depot", nil, nil, nil)
	require.NoError(t, err)

	h := commands.NewUpdateConsignmentCommandHandler(factory, stubAudit{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, consignment.StatusInTransit, aggregate.Status())
	events := aggregate.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, consignment.StatusInTransit, events[len(events)-1].Status())
	consignmentRepo.AssertExpectations(t)
}

func TestUpdateConsignmentCommandHandler_Handle_LastDeliveryCompletesOrder(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, accesspolicy.RoleAdmin)
	warehouseID := kernel.NewUUID()
	parent := orderWithStatus(t, kernel.NewUUID(), warehouseID, order.StatusShipped)
	driverID := kernel.NewUUID()

	aggregate := consignmentWithStatus(t, parent.ID(), warehouseID, &driverID, consignment.StatusInTransit)
	sibling := consignmentWithStatus(t, parent.ID(), kernel.NewUUID(), &driverID, consignment.StatusDelivered)

	consignmentRepo := new(MockConsignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConsignmentRepository").Return(consignmentRepo)
	consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	consignmentRepo.On("Update", ctx, aggregate).Return(nil).Once()
	consignmentRepo.On("GetByOrder", ctx, parent.ID()).
		Return([]*consignment.Consignment{sibling, aggregate}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, parent.ID()).Return(parent, nil).Once()
	orderRepo.On("Update", ctx, parent).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateConsignmentCommand(
		admin, aggregate.ID(), consignment.StatusDelivered, "", nil, nil, nil)
	require.NoError(t, err)

	h := commands.NewUpdateConsignmentCommandHandler(factory, stubAudit{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, consignment.StatusDelivered, aggregate.Status())
	assert.NotNil(t, aggregate.DeliveredAt())
	assert.Equal(t, order.StatusDelivered, parent.Status())
	consignmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestUpdateConsignmentCommandHandler_Handle_PartialDeliveryKeepsOrderOpen(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, accesspolicy.RoleAdmin)
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	aggregate := consignmentWithStatus(t, orderID, kernel.NewUUID(), &driverID, consignment.StatusInTransit)
	sibling := consignmentWithStatus(t, orderID, kernel.NewUUID(), &driverID, consignment.StatusPickedUp)

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConsignmentRepository").Return(consignmentRepo)
	consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	consignmentRepo.On("Update", ctx, aggregate).Return(nil).Once()
	consignmentRepo.On("GetByOrder", ctx, orderID).
		Return([]*consignment.Consignment{sibling, aggregate}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateConsignmentCommand(
		admin, aggregate.ID(), consignment.StatusDelivered, "", nil, nil, nil)
	require.NoError(t, err)

	h := commands.NewUpdateConsignmentCommandHandler(factory, stubAudit{})
	require.NoError(t, h.Handle(ctx, cmd))

	// One consignment still moving: the order repository is never touched.
	uow.AssertNotCalled(t, "OrderRepository")
	consignmentRepo.AssertExpectations(t)
}

func TestUpdateConsignmentCommandHandler_Handle_UnassignedDriverForbidden(t *testing.T) {
	ctx := t.Context()
	stranger := actorWithRole(t, accesspolicy.RoleDriver)
	assignedID := kernel.NewUUID()
	aggregate := consignmentWithStatus(t, kernel.NewUUID(), kernel.NewUUID(), &assignedID, consignment.StatusInTransit)

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateConsignmentCommand(
		stranger, aggregate.ID(), consignment.StatusDelivered, "", nil, nil, nil)
	require.NoError(t, err)

	h := commands.NewUpdateConsignmentCommandHandler(factory, stubAudit{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, consignment.StatusInTransit, aggregate.Status())
}

func TestAssignDriverCommandHandler_Handle_DriverForbidden(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, accesspolicy.RoleDriver)
	driverID := driver.ID()
	// Even the currently assigned driver may not reassign the driver field.
	aggregate := consignmentWithStatus(t, kernel.NewUUID(), kernel.NewUUID(), &driverID, consignment.StatusAssigned)

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsignmentRepository").Return(consignmentRepo).Once(),
		consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAssignDriverCommand(driver, aggregate.ID(), driverID)
	require.NoError(t, err)

	h := commands.NewAssignDriverCommandHandler(factory, stubAudit{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, accesspolicy.RoleAdmin)
	aggregate := consignmentWithStatus(t, kernel.NewUUID(), kernel.NewUUID(), nil, consignment.StatusPending)
	driverID := kernel.NewUUID()

	consignmentRepo := new(MockConsignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ConsignmentRepository").Return(consignmentRepo)
	consignmentRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	consignmentRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockConsignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAssignDriverCommand(admin, aggregate.ID(), driverID)
	require.NoError(t, err)

	h := commands.NewAssignDriverCommandHandler(factory, stubAudit{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, consignment.StatusAssigned, aggregate.Status())
	require.NotNil(t, aggregate.DriverID())
	assert.True(t, aggregate.DriverID().IsEqual(driverID))
}
