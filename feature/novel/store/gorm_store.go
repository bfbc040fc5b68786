package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"novel-hub/feature/novel/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// jsonFields are the patch fields persisted as JSON columns.
var jsonFields = map[string]bool{
	FieldAuthors:           true,
	FieldTags:              true,
	FieldKeywords:          true,
	FieldGlossary:          true,
	FieldToc:               true,
	FieldTranslateProgress: true,
}

// GormStore is the WorkStore implementation backed by the relational
// document store (MySQL in production, sqlite in tests).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on an existing connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindOne(ctx context.Context, key models.WorkKey) (*models.WorkMetadata, error) {
	var rec models.WorkRecord
	err := s.db.WithContext(ctx).
		Where("provider = ? AND work_id = ?", key.Provider, key.WorkID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find work %s/%s: %w", key.Provider, key.WorkID, err)
	}
	return rec.ToDomain()
}

func (s *GormStore) InsertOne(ctx context.Context, w *models.WorkMetadata) error {
	rec, err := models.FromDomain(w)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to insert work %s/%s: %w", w.Provider, w.WorkID, err)
	}
	return nil
}

func (s *GormStore) FindOneAndUpdate(ctx context.Context, key models.WorkKey, patch Patch) (*models.WorkMetadata, error) {
	cols, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}

	var rec models.WorkRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WorkRecord{}).
			Where("provider = ? AND work_id = ?", key.Provider, key.WorkID).
			Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("provider = ? AND work_id = ?", key.Provider, key.WorkID).
			First(&rec).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update work %s/%s: %w", key.Provider, key.WorkID, err)
	}
	return rec.ToDomain()
}

func (s *GormStore) IncrementVisit(ctx context.Context, key models.WorkKey) error {
	err := s.db.WithContext(ctx).Model(&models.WorkRecord{}).
		Where("provider = ? AND work_id = ?", key.Provider, key.WorkID).
		UpdateColumn("visited", gorm.Expr("visited + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment visits for %s/%s: %w", key.Provider, key.WorkID, err)
	}
	return nil
}

func (s *GormStore) CountByProvider(ctx context.Context, provider string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&models.WorkRecord{})
	if provider != "" {
		q = q.Where("provider = ?", provider)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count works: %w", err)
	}
	return count, nil
}

func (s *GormStore) List(ctx context.Context, offset, limit int) ([]*models.WorkMetadata, error) {
	var recs []models.WorkRecord
	err := s.db.WithContext(ctx).
		Order("id").Offset(offset).Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}

	works := make([]*models.WorkMetadata, 0, len(recs))
	for i := range recs {
		w, err := recs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, nil
}

// patchColumns translates a domain patch into column updates. JSON-shaped
// values are marshaled; everything else passes through.
func patchColumns(patch Patch) (map[string]any, error) {
	cols := make(map[string]any, len(patch))
	for _, f := range patch {
		if !jsonFields[f.Name] {
			if f.Name == FieldClassification {
				if c, ok := f.Value.(models.Classification); ok {
					cols[f.Name] = int(c)
					continue
				}
			}
			cols[f.Name] = f.Value
			continue
		}
		raw, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode patch field %s: %w", f.Name, err)
		}
		cols[f.Name] = datatypes.JSON(raw)
	}
	return cols, nil
}
