package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// UpdateDriverLocationCommandHandler fans a driver position out to the
// tracking trails of that driver's actively moving consignments.
//
// Each append runs in its own transaction and is best-effort: a failing
// consignment is logged and skipped so one bad row cannot fail the
// driver's ping.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverLocationUoWFactory
	logger     *slog.Logger
	audit      ports.Audit
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver location pings.
func NewUpdateDriverLocationCommandHandler(
	uowFactory DriverLocationUoWFactory,
	logger *slog.Logger,
	audit ports.Audit,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		audit:      audit,
	}
}

// Handle processes the location ping.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanRecordDriverLocation(cmd.Actor(), cmd.DriverID()); err != nil {
		return err
	}

	// Read outside any transaction: the fan-out below is independent appends.
	listUoW := h.uowFactory.Create()
	if err := listUoW.Begin(ctx); err != nil {
		return err
	}
	active, err := listUoW.ConsignmentRepository().GetActiveByDriver(ctx, cmd.DriverID())
	_ = listUoW.Rollback(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range active {
		if !aggregate.Status().IsActivelyMoving() {
			continue
		}
		if appendErr := h.appendLocation(ctx, aggregate, cmd, now); appendErr != nil {
			h.logger.Warn("driver location append failed",
				"driver_id", cmd.DriverID().String(),
				"consignment_id", aggregate.ID().String(),
				"error", appendErr)
		}
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "driver.update_location",
		Entity:   "driver",
		EntityID: cmd.DriverID(),
		Detail:   cmd.Point().String(),
	})

	return nil
}

func (h UpdateDriverLocationCommandHandler) appendLocation(
	ctx context.Context,
	aggregate *consignment.Consignment,
	cmd UpdateDriverLocationCommand,
	at time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.RecordLocation(cmd.Point(), at); err != nil {
		return err
	}

	if err := uow.ConsignmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
