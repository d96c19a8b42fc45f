package commands

import (
	"context"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// UpdatePaymentStatusCommandHandler records payment state changes.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.Audit
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status updates.
func NewUpdatePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.Audit,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the payment status update.
func (h UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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

	if err = accesspolicy.CanUpdatePaymentStatus(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = aggregate.SetPaymentStatus(cmd.Target()); err != nil {
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
		Action:   "order.update_payment_status",
		Entity:   "order",
		EntityID: aggregate.ID(),
		Detail:   cmd.Target().String(),
	})

	return nil
}
