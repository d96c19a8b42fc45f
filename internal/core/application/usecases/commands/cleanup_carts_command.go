package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCleanupCartsCommandIsNotConstructed = errors.New(
	"CleanupCartsCommand must be created via NewCleanupCartsCommand constructor",
)

// CleanupCartsCommand removes cart lines older than the retention period.
// Issued by the scheduled cleanup job, not by user requests, so it carries
// no actor.
type CleanupCartsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupCartsCommand creates a command to drop cart lines older than
// the given retention period.
func NewCleanupCartsCommand(retention time.Duration) (CleanupCartsCommand, error) {
	cmd := CleanupCartsCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setRetention(retention); err != nil {
		return CleanupCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupCartsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupCartsCommandIsNotConstructed)
}

// Retention returns how long cart lines are kept.
func (c CleanupCartsCommand) Retention() time.Duration {
	return c.retention
}

func (c *CleanupCartsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidError("retention")
	}

	c.retention = retention
	return nil
}
