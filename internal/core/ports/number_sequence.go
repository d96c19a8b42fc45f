package ports

import (
	"context"
	"time"
)

// Sequence namespaces for human-readable document numbers.
const (
	SequenceOrder       = "ORD"
	SequenceConsignment = "CON"
)

// NumberSequence issues gapless, per-day document numbers of the form
// <prefix><YYMMDD><NNNN>, e.g. ORD2509010001. The counter resets each
// calendar day and each namespace counts independently.
type NumberSequence interface {
	// Next returns the next number for the namespace on the given day.
	// Safe for concurrent callers: two calls never return the same number.
	Next(ctx context.Context, prefix string, day time.Time) (string, error)
}
