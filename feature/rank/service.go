package rank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"
	"novel-hub/feature/novel/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Service serves provider rank listings enriched with cached store data. Live
// listings are expensive on the provider side, so they are held in Redis for
// a TTL; the store join runs per request so the cached/chapter-count columns
// stay current.
type Service struct {
	providers *provider.Registry
	works     store.WorkStore
	redis     *redis.Client
	logger    *zap.Logger
	ttl       time.Duration
}

// NewService wires the rank service. redis may be nil to disable listing
// caching.
func NewService(providers *provider.Registry, works store.WorkStore, rdb *redis.Client, logger *zap.Logger, ttl time.Duration) *Service {
	return &Service{
		providers: providers,
		works:     works,
		redis:     rdb,
		logger:    logger,
		ttl:       ttl,
	}
}

// List returns one provider rank listing as outlines: live rank entries
// joined against the document store.
func (s *Service) List(ctx context.Context, providerName string, opts provider.RankOptions) ([]models.WorkOutline, error) {
	items, err := s.listItems(ctx, providerName, opts)
	if err != nil {
		return nil, err
	}

	outlines := make([]models.WorkOutline, 0, len(items))
	for _, item := range items {
		outline := models.WorkOutline{
			Provider: providerName,
			WorkID:   item.WorkID,
			Title:    item.Title,
			Tags:     item.Tags,
			Keywords: item.Keywords,
			Extra:    item.Extra,
		}

		cached, err := s.works.FindOne(ctx, models.WorkKey{Provider: providerName, WorkID: item.WorkID})
		if err != nil {
			return nil, err
		}
		if cached != nil {
			outline.Cached = true
			outline.TitleZh = cached.TitleZh
			outline.ChapterCount = len(cached.Toc)
			updateAt := cached.UpdateAt
			outline.UpdateAt = &updateAt
		}
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

func (s *Service) listItems(ctx context.Context, providerName string, opts provider.RankOptions) ([]models.RankItem, error) {
	key := fmt.Sprintf("rank:%s:%s", providerName, opts.Key())

	if items, ok := s.fromCache(ctx, key); ok {
		return items, nil
	}

	p, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}
	items, err := p.FetchRank(ctx, opts)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, items)
	return items, nil
}

func (s *Service) fromCache(ctx context.Context, key string) ([]models.RankItem, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("rank cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var items []models.RankItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("rank cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

func (s *Service) toCache(ctx context.Context, key string, items []models.RankItem) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("rank cache write failed", zap.String("key", key), zap.Error(err))
	}
}
