package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding product lines to a buyer's cart.
// Validates the product against the catalog (active, minimum order quantity)
// and checks availability against the inventory ledger without reserving
// anything. Unit price is snapshotted at add time.
type AddCartItemCommandHandler struct {
	uowFactory AddCartItemUoWFactory
	catalog    ports.Catalog
	audit      ports.Audit
}

// NewAddCartItemCommandHandler creates a handler for add-to-cart operations.
func NewAddCartItemCommandHandler(
	uowFactory AddCartItemUoWFactory,
	catalog ports.Catalog,
	audit ports.Audit,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		audit:      audit,
	}
}

// Handle processes the add-to-cart command.
// An existing line for the same (product, warehouse) pair is merged; the
// merged quantity must still fit the available stock.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanAccessCart(cmd.Actor(), cmd.BuyerID()); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !product.IsActive {
		return errs.NewValueIsInvalidErrorWithCause("productID",
			fmt.Errorf("product %s is not active", product.ID))
	}
	if cmd.Quantity() < product.MinOrderQty {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("minimum order quantity is %d", product.MinOrderQty))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	line, err := cartRepo.FindLine(ctx, cmd.BuyerID(), cmd.ProductID(), cmd.WarehouseID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		line = nil
	}

	requested := cmd.Quantity()
	if line != nil {
		requested += line.Quantity()
	}

	record, err := uow.InventoryRepository().Get(ctx, cmd.WarehouseID(), cmd.ProductID())
	if err != nil {
		return err
	}
	if record.Available() < requested {
		return errs.NewInsufficientInventoryError(
			cmd.WarehouseID().String(), cmd.ProductID().String(), requested)
	}

	var itemID kernel.UUID
	if line != nil {
		if err = line.Merge(cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, line); err != nil {
			return err
		}
		itemID = line.ID()
	} else {
		item, itemErr := cart.NewItem(
			kernel.NewUUID(),
			cmd.BuyerID(),
			cmd.ProductID(),
			cmd.WarehouseID(),
			cmd.Quantity(),
			product.UnitPrice,
			time.Now().UTC(),
		)
		if itemErr != nil {
			return itemErr
		}
		if err = cartRepo.Add(ctx, item); err != nil {
			return err
		}
		itemID = item.ID()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "cart.add_item",
		Entity:   "cart_item",
		EntityID: itemID,
		Detail:   fmt.Sprintf("product %s x%d", cmd.ProductID(), cmd.Quantity()),
	})

	return nil
}
