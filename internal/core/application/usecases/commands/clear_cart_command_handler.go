package commands

import (
	"context"

	"fulfillment/internal/core/domain/services/accesspolicy"
	"fulfillment/internal/core/ports"
)

// ClearCartCommandHandler handles clearing a buyer's cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	audit      ports.Audit
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory, audit ports.Audit) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the clear-cart command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := accesspolicy.CanAccessCart(cmd.Actor(), cmd.BuyerID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().DeleteByBuyer(ctx, cmd.BuyerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, ports.AuditRecord{
		ActorID:  cmd.Actor().ID(),
		Action:   "cart.clear",
		Entity:   "cart",
		EntityID: cmd.BuyerID(),
	})

	return nil
}
