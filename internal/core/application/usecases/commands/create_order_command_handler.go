package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement.
// Consumes the buyer's cart inside a single transaction: reserves inventory
// for every line, snapshots prices, computes totals, assigns the daily order
// number, persists the order and clears the cart. Any reservation failure
// rolls back the whole transaction so no partial reservation survives.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	audit      ports.Audit
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, audit ports.Audit) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanCreateOrder(cmd.Actor(), cmd.BuyerID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := uow.CartRepository().GetByBuyer(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}

	inventoryRepo := uow.InventoryRepository()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		if err = inventoryRepo.Reserve(ctx, line.WarehouseID(), line.ProductID(), line.Quantity()); err != nil {
			return err
		}

		lineSubtotal := float64(line.Quantity()) * line.UnitPrice()
		item, itemErr := order.NewItem(
			line.ProductID(),
			line.WarehouseID(),
			line.Quantity(),
			line.UnitPrice(),
			order.TaxFor(lineSubtotal),
		)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	number, err := uow.NumberSequence().Next(ctx, ports.SequenceOrder, now)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.BuyerID(),
		cmd.DeliveryAddressID(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.CartRepository().DeleteByBuyer(ctx, cmd.BuyerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "order.create",
		Entity:   "order",
		EntityID: aggregate.ID(),
		Detail:   aggregate.OrderNumber(),
	})

	return nil
}
