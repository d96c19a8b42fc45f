package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// AssignDriverCommandHandler handles driver assignment and reassignment.
type AssignDriverCommandHandler struct {
	uowFactory ConsignmentUoWFactory
	audit      ports.Audit
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory ConsignmentUoWFactory,
	audit ports.Audit,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the driver assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = accesspolicy.CanAssignDriver(cmd.Actor(), aggregate); err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = consignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "consignment.assign_driver",
		Entity:   "consignment",
		EntityID: aggregate.ID(),
		Detail:   cmd.DriverID().String(),
	})

	return nil
}
