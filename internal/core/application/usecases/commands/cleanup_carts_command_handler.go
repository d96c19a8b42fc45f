package commands

import (
	"context"
	"log/slog"
	"time"
)

// CleanupCartsCommandHandler drops abandoned cart lines. Runs from the
// scheduled cleanup job.
type CleanupCartsCommandHandler struct {
	uowFactory CartUoWFactory
	logger     *slog.Logger
}

// NewCleanupCartsCommandHandler creates a handler for cart cleanup commands.
func NewCleanupCartsCommandHandler(uowFactory CartUoWFactory, logger *slog.Logger) CleanupCartsCommandHandler {
	return CleanupCartsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle removes every cart line older than the command's retention period.
func (h CleanupCartsCommandHandler) Handle(ctx context.Context, cmd CleanupCartsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if removed > 0 {
		h.logger.InfoContext(ctx, "removed abandoned cart lines",
			"count", removed, "cutoff", cutoff)
	}

	return nil
}
