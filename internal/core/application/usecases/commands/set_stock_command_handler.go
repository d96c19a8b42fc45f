package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// SetStockCommandHandler handles manual stock level maintenance.
type SetStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	audit      ports.Audit
}

// NewSetStockCommandHandler creates a handler for stock maintenance.
func NewSetStockCommandHandler(uowFactory InventoryUoWFactory, audit ports.Audit) SetStockCommandHandler {
	return SetStockCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the stock update.
func (h SetStockCommandHandler) Handle(ctx context.Context, cmd SetStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanAdjustInventory(cmd.Actor(), cmd.WarehouseID()); err != nil {
		return err
	}

	record, err := inventory.NewRecord(cmd.WarehouseID(), cmd.ProductID(), cmd.Quantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Upsert(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "inventory.set_stock",
		Entity:   "inventory_record",
		EntityID: cmd.ProductID(),
		Detail:   fmt.Sprintf("warehouse %s quantity %d", cmd.WarehouseID(), cmd.Quantity()),
	})

	return nil
}
