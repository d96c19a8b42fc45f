package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	buyerID := kernel.NewUUID()
	actor := buyerActor(t, buyerID)

	_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), buyerID, kernel.NewUUID())
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(accesspolicy.Actor{}, kernel.NewUUID(), buyerID, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(actor, kernel.UUID{}, buyerID, kernel.NewUUID())
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	actor := buyerActor(t, buyerID)

	lineA := cartLine(t, buyerID, kernel.NewUUID(), warehouseID, 3, 100)
	lineB := cartLine(t, buyerID, kernel.NewUUID(), warehouseID, 2, 50)

	cartRepo := new(MockCartRepository)
	inventoryRepo := new(MockInventoryRepository)
	orderRepo := new(MockOrderRepository)
	seq := new(MockNumberSequence)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("NumberSequence").Return(seq).Once()

	cartRepo.On("GetByBuyer", ctx, buyerID).Return([]*cart.Item{lineA, lineB}, nil).Once()
	inventoryRepo.On("Reserve", ctx, warehouseID, lineA.ProductID(), 3).Return(nil).Once()
	inventoryRepo.On("Reserve", ctx, warehouseID, lineB.ProductID(), 2).Return(nil).Once()
	seq.On("Next", ctx, ports.SequenceOrder, mock.AnythingOfType("time.Time")).
		Return("ORD2509010007", nil).Once()

	var created *order.Order
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*order.Order)
		}).Return(nil).Once()
	cartRepo.On("DeleteByBuyer", ctx, buyerID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), buyerID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory, stubAudit{})
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	assert.Equal(t, "ORD2509010007", created.OrderNumber())
	assert.Equal(t, order.StatusPending, created.Status())
	// 3*100 + 2*50 = 400; 18% tax = 72.
	assert.InDelta(t, 400.0, created.Subtotal(), 0.001)
	assert.InDelta(t, 72.0, created.TaxAmount(), 0.001)
	assert.InDelta(t, 472.0, created.Total(), 0.001)

	cartRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	seq.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ReservationFailureAbortsAll(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	actor := buyerActor(t, buyerID)

	lineA := cartLine(t, buyerID, kernel.NewUUID(), warehouseID, 5, 100)
	lineB := cartLine(t, buyerID, kernel.NewUUID(), warehouseID, 99, 50)

	cartRepo := new(MockCartRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	shortage := errs.NewInsufficientInventoryError(warehouseID.String(), lineB.ProductID().String(), 99)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByBuyer", ctx, buyerID).Return([]*cart.Item{lineA, lineB}, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Reserve", ctx, warehouseID, lineA.ProductID(), 5).Return(nil).Once(),
		inventoryRepo.On("Reserve", ctx, warehouseID, lineB.ProductID(), 99).Return(shortage).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), buyerID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory, stubAudit{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientInventory)

	// No commit, no order persisted: the rollback discards A's reservation.
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	actor := buyerActor(t, buyerID)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByBuyer", ctx, buyerID).Return([]*cart.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), buyerID, kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory, stubAudit{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_ForbiddenForOtherBuyer(t *testing.T) {
	ctx := t.Context()
	actor := buyerActor(t, kernel.NewUUID())

	factory := new(MockCreateOrderUoWFactory)

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory, stubAudit{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockCreateOrderUoWFactory), stubAudit{})
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
