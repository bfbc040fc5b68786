package search

import (
	"context"

	"novel-hub/core/index"
	"novel-hub/feature/novel/models"

	"go.uber.org/zap"
)

// Service compiles faceted queries and keeps the index in step with the
// document store.
type Service struct {
	idx    index.Index
	logger *zap.Logger
}

// NewService creates the search service on an index.
func NewService(idx index.Index, logger *zap.Logger) *Service {
	return &Service{idx: idx, logger: logger}
}

// SyncWork projects the record into the index. The synchronization service
// calls this after every store write.
func (s *Service) SyncWork(ctx context.Context, w *models.WorkMetadata) error {
	id, doc := Project(w)
	return s.idx.Upsert(ctx, id, doc)
}

// Search compiles and evaluates a faceted query.
func (s *Service) Search(ctx context.Context, raw string, filters Filters, page, pageSize int) (*index.Result, error) {
	req := Compile(raw, filters, page, pageSize)
	return s.idx.Search(ctx, req)
}
