package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions and
// their inventory side effects.
//
// Entering CONFIRMED commits the reservation for every item: stock is
// consumed at this moment, not at creation. Entering CANCELLED releases
// outstanding reservations when the order is still PENDING; cancelling
// after confirmation restocks the already-committed quantities instead,
// since the reservation no longer exists.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
	audit      ports.Audit
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderStatusUoWFactory,
	audit ports.Audit,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the status transition. The transition check and its
// side effects share one transaction so a crash cannot leave inventory
// and status inconsistent.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Target() == order.StatusCancelled {
		err = accesspolicy.CanCancelOrder(cmd.Actor(), aggregate)
	} else {
		err = accesspolicy.CanUpdateOrderStatus(cmd.Actor(), aggregate)
	}
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if cmd.Note() != "" {
		if err = aggregate.AppendNote(cmd.Note()); err != nil {
			return err
		}
	}

	if err = h.applyInventoryEffects(ctx, uow.InventoryRepository(), aggregate, previous); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "order.update_status",
		Entity:   "order",
		EntityID: aggregate.ID(),
		Detail:   fmt.Sprintf("%s -> %s", previous, cmd.Target()),
	})

	return nil
}

func (h UpdateOrderStatusCommandHandler) applyInventoryEffects(
	ctx context.Context,
	inventoryRepo ports.InventoryRepository,
	aggregate *order.Order,
	previous order.Status,
) error {
	switch aggregate.Status() {
	case order.StatusConfirmed:
		for _, item := range aggregate.Items() {
			if err := inventoryRepo.Commit(ctx, item.WarehouseID(), item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}
	case order.StatusCancelled:
		for _, item := range aggregate.Items() {
			var err error
			if previous == order.StatusPending {
				// Reservation is still outstanding until confirmation.
				err = inventoryRepo.Release(ctx, item.WarehouseID(), item.ProductID(), item.Quantity())
			} else {
				// Stock was already committed; put it back on hand.
				err = inventoryRepo.AdjustStock(ctx, item.WarehouseID(), item.ProductID(), item.Quantity())
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}
