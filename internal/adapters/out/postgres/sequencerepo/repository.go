// Package sequencerepo issues human-readable document numbers from a
// per-prefix, per-day counter table. The counter advance is a single
// upsert with RETURNING, so two concurrent callers always get distinct
// numbers and the counter resets implicitly with the day key.
package sequencerepo

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

const dayLayout = "060102"

// NumberSequenceDTO represents one (prefix, day) counter row.
type NumberSequenceDTO struct {
	Prefix  string `gorm:"primaryKey"`
	Day     string `gorm:"primaryKey"`
	Counter int
}

// TableName specifies the database table name for sequence counters.
func (NumberSequenceDTO) TableName() string {
	return "number_sequences"
}

// GormNumberSequence implements NumberSequence using GORM.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a new GORM-backed number sequence.
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next returns the next number for the prefix on the given day, formatted
// as prefix + YYMMDD + zero-padded counter, e.g. "ORD2509010001".
func (s *GormNumberSequence) Next(ctx context.Context, prefix string, day time.Time) (string, error) {
	if prefix == "" {
		return "", errs.NewValueIsRequiredError("prefix")
	}

	dayKey := day.UTC().Format(dayLayout)

	var counter int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO number_sequences (prefix, day, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, day)
		DO UPDATE SET counter = number_sequences.counter + 1
		RETURNING counter
	`, prefix, dayKey).Scan(&counter).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s%04d", prefix, dayKey, counter), nil
}
