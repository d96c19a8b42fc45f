package commands

import (
	"context"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// RemoveCartItemCommandHandler handles removal of a single cart line.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	audit      ports.Audit
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory, audit ports.Audit) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the cart line removal.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err = cartRepo.Delete(ctx, item.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "cart.remove_item",
		Entity:   "cart_item",
		EntityID: item.ID(),
	})

	return nil
}
