// Package audit records TOC merges that warrant moderator review.
//
// Records are append-only: the synchronization path writes them and never
// reads them back; moderation and debugging tools consume the table
// directly.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"novel-hub/feature/novel/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record is one flagged merge: the TOC before and after, and the reason a
// human should look at it.
type Record struct {
	ID       uint   `gorm:"primaryKey"`
	Provider string `gorm:"column:provider;size:32;index:idx_audit_work"`
	WorkID   string `gorm:"column:work_id;size:64;index:idx_audit_work"`

	Before datatypes.JSON `gorm:"column:before_toc"`
	After  datatypes.JSON `gorm:"column:after_toc"`
	Reason string         `gorm:"column:reason;size:128"`

	CreatedAt time.Time
}

// TableName overrides the gorm table name.
func (Record) TableName() string {
	return "toc_merge_audits"
}

// Recorder persists flagged merges.
type Recorder interface {
	Record(ctx context.Context, key models.WorkKey, before, after []models.TocItem, reason string) error
}

// GormRecorder is the Recorder implementation on the document store.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder creates a recorder on an existing connection.
func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(ctx context.Context, key models.WorkKey, before, after []models.TocItem, reason string) error {
	beforeRaw, err := json.Marshal(before)
	if err != nil {
		return fmt.Errorf("failed to encode pre-merge toc: %w", err)
	}
	afterRaw, err := json.Marshal(after)
	if err != nil {
		return fmt.Errorf("failed to encode post-merge toc: %w", err)
	}

	rec := &Record{
		Provider: key.Provider,
		WorkID:   key.WorkID,
		Before:   beforeRaw,
		After:    afterRaw,
		Reason:   reason,
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record merge audit for %s/%s: %w", key.Provider, key.WorkID, err)
	}
	return nil
}
