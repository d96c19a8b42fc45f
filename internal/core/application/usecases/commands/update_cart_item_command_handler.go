package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// UpdateCartItemCommandHandler handles quantity changes on cart lines.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	audit      ports.Audit
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory, audit ports.Audit) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the cart line update. The line owner is resolved from
// storage before the policy check so a buyer cannot touch another buyer's
// line by guessing its id.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	item, err := cartRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = accesspolicy.CanAccessCart(cmd.Actor(), item.BuyerID()); err != nil {
		return err
	}

	if err = item.SetQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "cart.update_item",
		Entity:   "cart_item",
		EntityID: item.ID(),
		Detail:   fmt.Sprintf("quantity %d", cmd.Quantity()),
	})

	return nil
}
