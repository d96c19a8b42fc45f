package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// UpdateConsignmentCommandHandler handles consignment progression.
// Every status change appends an event to the consignment's tracking
// trail. Reaching DELIVERED stamps the delivery date and, when every
// sibling consignment of the parent order is also DELIVERED, completes
// the order within the same transaction.
type UpdateConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
	audit      ports.Audit
}

// NewUpdateConsignmentCommandHandler creates a handler for consignment updates.
func NewUpdateConsignmentCommandHandler(
	uowFactory ConsignmentUoWFactory,
	audit ports.Audit,
) UpdateConsignmentCommandHandler {
	return UpdateConsignmentCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the consignment update command.
func (h UpdateConsignmentCommandHandler) Handle(ctx context.Context, cmd UpdateConsignmentCommand) error {
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

	consignmentRepo := uow.ConsignmentRepository()

	aggregate, err := consignmentRepo.Get(ctx, cmd.ConsignmentID())
	if err != nil {
		return err
	}

	if err = accesspolicy.CanUpdateConsignment(cmd.Actor(), aggregate, cmd.Changes()); err != nil {
		return err
	}

	now := time.Now().UTC()
	previous := aggregate.Status()

	if cmd.Target() != consignment.StatusUnknown {
		if err = aggregate.TransitionTo(cmd.Target(), cmd.Note(), cmd.Point(), now); err != nil {
			return err
		}
	} else if cmd.Note() != "" {
		if err = aggregate.AppendNote(cmd.Note()); err != nil {
			return err
		}
	}

	if cmd.EstimatedDeliveryAt() != nil {
		aggregate.SetEstimatedDelivery(*cmd.EstimatedDeliveryAt())
	}

	if cmd.DeliveredAt() != nil {
		if err = aggregate.SetDeliveredAt(*cmd.DeliveredAt()); err != nil {
			return err
		}
	}

	if err = consignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == consignment.StatusDelivered {
		if err = h.completeOrderIfDone(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "consignment.update",
		Entity:   "consignment",
		EntityID: aggregate.ID(),
		Detail:   fmt.Sprintf("%s -> %s", previous, aggregate.Status()),
	})

	return nil
}

// completeOrderIfDone transitions the parent order to DELIVERED when every
// non-cancelled sibling consignment has been delivered. This is the only
// path by which multi-warehouse orders complete.
func (h UpdateConsignmentCommandHandler) completeOrderIfDone(
	ctx context.Context,
	uow ConsignmentUoW,
	delivered *consignment.Consignment,
) error {
	siblings, err := uow.ConsignmentRepository().GetByOrder(ctx, delivered.OrderID())
	if err != nil {
		return err
	}

	for _, sibling := range siblings {
		if sibling.Status() == consignment.StatusCancelled {
			continue
		}
		if sibling.Status() != consignment.StatusDelivered {
			return nil
		}
	}

	orderRepo := uow.OrderRepository()
	parent, err := orderRepo.Get(ctx, delivered.OrderID())
	if err != nil {
		return err
	}
	if parent.Status() == order.StatusDelivered {
		return nil
	}

	// Walk the order forward through the shipping chain to DELIVERED.
	// An order outside the chain (cancelled, returned) is left alone.
	for _, step := range []order.Status{order.StatusProcessing, order.StatusShipped, order.StatusDelivered} {
		if parent.Status() == order.StatusDelivered {
			break
		}
		if !parent.Status().CanTransitionTo(step) {
			continue
		}
		if err = parent.TransitionTo(step); err != nil {
			return err
		}
	}

	if parent.Status() != order.StatusDelivered {
		return nil
	}

	return orderRepo.Update(ctx, parent)
}
