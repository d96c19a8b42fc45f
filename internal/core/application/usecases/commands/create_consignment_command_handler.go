package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/consignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateConsignmentCommandHandler handles opening delivery consignments.
// A consignment requires its parent order to be CONFIRMED or PROCESSING,
// at least one order item for the target warehouse, and no existing
// consignment for the same (order, warehouse) pair.
type CreateConsignmentCommandHandler struct {
	uowFactory ConsignmentUoWFactory
	audit      ports.Audit
}

// NewCreateConsignmentCommandHandler creates a handler for consignment creation.
func NewCreateConsignmentCommandHandler(
	uowFactory ConsignmentUoWFactory,
	audit ports.Audit,
) CreateConsignmentCommandHandler {
	return CreateConsignmentCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the consignment creation command.
func (h CreateConsignmentCommandHandler) Handle(ctx context.Context, cmd CreateConsignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanCreateConsignment(cmd.Actor(), cmd.WarehouseID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parent, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if parent.Status() != order.StatusConfirmed && parent.Status() != order.StatusProcessing {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("order %s is %s, consignments require CONFIRMED or PROCESSING",
				parent.OrderNumber(), parent.Status()))
	}

	if len(parent.ItemsForWarehouse(cmd.WarehouseID())) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("warehouseID",
			fmt.Errorf("order %s has no items for warehouse %s", parent.OrderNumber(), cmd.WarehouseID()))
	}

	consignmentRepo := uow.ConsignmentRepository()

	exists, err := consignmentRepo.ExistsForOrderAndWarehouse(ctx, cmd.OrderID(), cmd.WarehouseID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("consignment",
			fmt.Sprintf("%s/%s", cmd.OrderID(), cmd.WarehouseID()))
	}

	now := time.Now().UTC()
	number, err := uow.NumberSequence().Next(ctx, ports.SequenceConsignment, now)
	if err != nil {
		return err
	}

	aggregate, err := consignment.NewConsignment(
		cmd.ConsignmentID(),
		number,
		cmd.OrderID(),
		cmd.WarehouseID(),
		cmd.PickupAddressID(),
		parent.DeliveryAddressID(),
		cmd.EstimatedDeliveryAt(),
		now,
	)
	if err != nil {
		return err
	}

	if cmd.DriverID() != nil {
		if err = aggregate.AssignDriver(*cmd.DriverID(), now); err != nil {
			return err
		}
	}

	if err = consignmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "consignment.create",
		Entity:   "consignment",
		EntityID: aggregate.ID(),
		Detail:   aggregate.ConsignmentNumber(),
	})

	return nil
}
