// Package auditlog implements the Audit port on top of structured logging.
// Every state-changing command emits one record; the log stream is the
// audit trail.
package auditlog

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// SlogAudit writes audit records as structured log entries. Recording is
// best-effort and never returns an error to the caller.
type SlogAudit struct {
	logger *slog.Logger
}

// NewSlogAudit creates an audit sink writing to the given logger.
func NewSlogAudit(logger *slog.Logger) *SlogAudit {
	return &SlogAudit{logger: logger}
}

// Record emits one audit entry.
func (a *SlogAudit) Record(ctx context.Context, record ports.AuditRecord) {
	a.logger.InfoContext(ctx, "audit",
		slog.String("actor_id", record.ActorID.String()),
		slog.String("action", record.Action),
		slog.String("entity", record.Entity),
		slog.String("entity_id", record.EntityID.String()),
		slog.String("detail", record.Detail),
	)
}
