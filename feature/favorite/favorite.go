// Package favorite owns user favorite-relationships and the update cascade.
//
// Each relationship carries its own "last update seen" reference. When a
// synchronization cycle judges a remote change user-visible, the cascade
// stamps that timestamp onto every relationship for the work so downstream
// "has new update" views stay correct.
package favorite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Record links a user to a work.
type Record struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   string `gorm:"column:user_id;size:64;uniqueIndex:idx_user_work" json:"user_id"`
	Provider string `gorm:"column:provider;size:32;uniqueIndex:idx_user_work;index:idx_fav_work" json:"provider"`
	WorkID   string `gorm:"column:work_id;size:64;uniqueIndex:idx_user_work;index:idx_fav_work" json:"work_id"`

	// UpdatedRef is the last-visible-update timestamp of the work the user
	// has been shown.
	UpdatedRef time.Time `gorm:"column:updated_ref" json:"updated_ref"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the gorm table name.
func (Record) TableName() string {
	return "favorites"
}

// Store is the favorites contract consumed by the cascade and handlers.
type Store interface {
	// Add creates a relationship; adding an existing one is an error.
	Add(ctx context.Context, userID, provider, workID string) error
	// ListByUser returns a user's relationships, most recently stamped
	// first.
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	// Stamp bulk-updates every relationship for the work with the new
	// last-visible-update timestamp and returns the affected count.
	// Reapplying the same timestamp is a no-op in effect.
	Stamp(ctx context.Context, provider, workID string, ts time.Time) (int64, error)
}

// GormStore is the Store implementation on the document store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on an existing connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Add(ctx context.Context, userID, provider, workID string) error {
	rec := &Record{UserID: userID, Provider: provider, WorkID: workID}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *GormStore) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	var recs []Record
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_ref DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for %s: %w", userID, err)
	}
	return recs, nil
}

func (s *GormStore) Stamp(ctx context.Context, provider, workID string, ts time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&Record{}).
		Where("provider = ? AND work_id = ?", provider, workID).
		UpdateColumn("updated_ref", ts)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to stamp favorites for %s/%s: %w", provider, workID, res.Error)
	}
	return res.RowsAffected, nil
}
