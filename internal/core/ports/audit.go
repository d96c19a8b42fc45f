package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditRecord captures a state-changing action for the audit trail.
type AuditRecord struct {
	ActorID  kernel.UUID
	Action   string
	Entity   string
	EntityID kernel.UUID
	Detail   string
}

// Audit records state-changing actions. Recording is best-effort:
// implementations log failures and never block the business operation.
type Audit interface {
	Record(ctx context.Context, record AuditRecord)
}
