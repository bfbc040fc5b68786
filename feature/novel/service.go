package novel

import (
	"context"
	"time"

	"novel-hub/feature/favorite"
	"novel-hub/feature/novel/audit"
	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"
	"novel-hub/feature/novel/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Indexer receives the post-update record after every write so the search
// index converges on store state.
type Indexer interface {
	SyncWork(ctx context.Context, w *models.WorkMetadata) error
}

// Service implements the metadata synchronization policy: read-through
// fetching with a freshness window, TOC merging, and the downstream cascade
// into the search index and favorite relationships.
type Service struct {
	works     store.WorkStore
	providers *provider.Registry
	indexer   Indexer
	favorites favorite.Store
	audits    audit.Recorder
	covers    *CoverMirror
	logger    *zap.Logger

	freshness time.Duration
	now       func() time.Time
}

// NewService wires the synchronization service. covers may be nil to disable
// cover mirroring.
func NewService(
	works store.WorkStore,
	providers *provider.Registry,
	indexer Indexer,
	favorites favorite.Store,
	audits audit.Recorder,
	covers *CoverMirror,
	logger *zap.Logger,
	freshness time.Duration,
) *Service {
	return &Service{
		works:     works,
		providers: providers,
		indexer:   indexer,
		favorites: favorites,
		audits:    audits,
		covers:    covers,
		logger:    logger,
		freshness: freshness,
		now:       time.Now,
	}
}

// GetAndSync returns the work's metadata, refreshing it from the provider
// first when the record is absent or older than the freshness window.
// freshness <= 0 selects the configured default. A failed refresh of an
// existing record is served stale rather than erroring.
func (s *Service) GetAndSync(ctx context.Context, key models.WorkKey, freshness time.Duration) (*models.WorkMetadata, error) {
	if freshness <= 0 {
		freshness = s.freshness
	}

	rec, err := s.works.FindOne(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return s.createFromRemote(ctx, key)
	}
	if rec.PauseUpdate {
		return rec, nil
	}
	if s.now().Sub(rec.SyncAt) < freshness {
		return rec, nil
	}
	return s.refresh(ctx, key, rec)
}

func (s *Service) createFromRemote(ctx context.Context, key models.WorkKey) (*models.WorkMetadata, error) {
	p, err := s.providers.Get(key.Provider)
	if err != nil {
		return nil, err
	}
	remote, err := p.FetchMetadata(ctx, key.WorkID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	w := &models.WorkMetadata{
		Provider:          key.Provider,
		WorkID:            key.WorkID,
		Title:             remote.Title,
		Authors:           remote.Authors,
		Classification:    remote.Classification,
		Tags:              remote.Tags,
		Keywords:          remote.Keywords,
		Synopsis:          remote.Synopsis,
		CoverURL:          remote.CoverURL,
		Glossary:          map[string]string{},
		GlossaryRevision:  uuid.NewString(),
		Toc:               remote.Toc,
		TranslateProgress: map[string]int{},
		SyncAt:            now,
		ChangeAt:          now,
		UpdateAt:          now,
	}
	if err := s.works.InsertOne(ctx, w); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, w)
	s.mirrorCover(ctx, key, remote.CoverURL)
	return w, nil
}

func (s *Service) refresh(ctx context.Context, key models.WorkKey, rec *models.WorkMetadata) (*models.WorkMetadata, error) {
	p, err := s.providers.Get(key.Provider)
	if err != nil {
		s.logger.Warn("no provider for stale work, serving cached metadata",
			zap.String("provider", key.Provider), zap.String("work_id", key.WorkID), zap.Error(err))
		return rec, nil
	}

	remote, err := p.FetchMetadata(ctx, key.WorkID)
	if err != nil {
		s.logger.Warn("remote fetch failed, serving cached metadata",
			zap.String("provider", key.Provider), zap.String("work_id", key.WorkID),
			zap.Stringer("kind", provider.KindOf(err)), zap.Error(err))
		return rec, nil
	}

	res := merge.Merge(remote.Toc, rec.Toc, p.Stability())
	if res.AuditReason != "" {
		if err := s.audits.Record(ctx, key, rec.Toc, res.Toc, res.AuditReason); err != nil {
			s.logger.Error("failed to record merge audit",
				zap.String("provider", key.Provider), zap.String("work_id", key.WorkID), zap.Error(err))
		}
	}

	now := s.now()
	patch := store.Patch{}.
		Set(store.FieldTitle, remote.Title).
		Set(store.FieldAuthors, remote.Authors).
		Set(store.FieldClassification, remote.Classification).
		Set(store.FieldTags, remote.Tags).
		Set(store.FieldKeywords, remote.Keywords).
		Set(store.FieldSynopsis, remote.Synopsis).
		Set(store.FieldCoverURL, remote.CoverURL).
		Set(store.FieldToc, res.Toc).
		Set(store.FieldSyncAt, now)
	if res.Changed {
		patch = patch.
			Set(store.FieldChangeAt, now).
			Set(store.FieldUpdateAt, now)
	}

	updated, err := s.works.FindOneAndUpdate(ctx, key, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Deleted under us between the read and the update.
		return rec, nil
	}

	s.syncIndex(ctx, updated)
	if remote.CoverURL != "" && remote.CoverURL != rec.CoverURL {
		s.mirrorCover(ctx, key, remote.CoverURL)
	}

	if res.Changed {
		n, err := s.favorites.Stamp(ctx, key.Provider, key.WorkID, updated.UpdateAt)
		if err != nil {
			s.logger.Error("failed to cascade update to favorites",
				zap.String("provider", key.Provider), zap.String("work_id", key.WorkID), zap.Error(err))
		} else if n > 0 {
			s.logger.Info("cascaded update to favorites",
				zap.String("provider", key.Provider), zap.String("work_id", key.WorkID), zap.Int64("relationships", n))
		}
	}
	return updated, nil
}

// IncrementVisitCount bumps the work's visit counter.
func (s *Service) IncrementVisitCount(ctx context.Context, key models.WorkKey) error {
	return s.works.IncrementVisit(ctx, key)
}

// UpdateHumanTranslation applies human-edited translations. Nil pointers
// leave the respective field untouched; tocZh maps source-language chapter
// titles to their translations. Human edits advance change-at but never
// update-at.
func (s *Service) UpdateHumanTranslation(ctx context.Context, key models.WorkKey, titleZh, synopsisZh *string, tocZh map[string]string) (*models.WorkMetadata, error) {
	patch := store.Patch{}
	if titleZh != nil {
		patch = patch.Set(store.FieldTitleZh, *titleZh)
	}
	if synopsisZh != nil {
		patch = patch.Set(store.FieldSynopsisZh, *synopsisZh)
	}
	if len(tocZh) > 0 {
		rec, err := s.works.FindOne(ctx, key)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, nil
		}
		toc := make([]models.TocItem, len(rec.Toc))
		copy(toc, rec.Toc)
		for i := range toc {
			if zh, ok := tocZh[toc[i].Title]; ok && zh != "" {
				toc[i].TitleZh = zh
			}
		}
		patch = patch.Set(store.FieldToc, toc)
	}
	if len(patch) == 0 {
		return s.works.FindOne(ctx, key)
	}
	patch = patch.Set(store.FieldChangeAt, s.now())

	updated, err := s.works.FindOneAndUpdate(ctx, key, patch)
	if err != nil || updated == nil {
		return updated, err
	}
	s.syncIndex(ctx, updated)
	return updated, nil
}

// UpdateGlossary replaces the glossary and reissues its revision so cached
// machine translations built on the old glossary invalidate.
func (s *Service) UpdateGlossary(ctx context.Context, key models.WorkKey, glossary map[string]string) (*models.WorkMetadata, error) {
	patch := store.Patch{}.
		Set(store.FieldGlossary, glossary).
		Set(store.FieldGlossaryRevision, uuid.NewString()).
		Set(store.FieldChangeAt, s.now())
	return s.works.FindOneAndUpdate(ctx, key, patch)
}

// SetTranslationProgress records how many chapters the given engine has
// translated, counting non-empty entries of translated (chapter ID to
// translated title).
func (s *Service) SetTranslationProgress(ctx context.Context, key models.WorkKey, engine string, translated map[string]string) (*models.WorkMetadata, error) {
	rec, err := s.works.FindOne(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	n := 0
	for _, title := range translated {
		if title != "" {
			n++
		}
	}
	progress := make(map[string]int, len(rec.TranslateProgress)+1)
	for k, v := range rec.TranslateProgress {
		progress[k] = v
	}
	progress[engine] = n

	updated, err := s.works.FindOneAndUpdate(ctx, key,
		store.Patch{}.Set(store.FieldTranslateProgress, progress))
	if err != nil || updated == nil {
		return updated, err
	}
	s.syncIndex(ctx, updated)
	return updated, nil
}

// SetExternalLibraryLink records the work's location in an external archive.
func (s *Service) SetExternalLibraryLink(ctx context.Context, key models.WorkKey, link string) (*models.WorkMetadata, error) {
	return s.works.FindOneAndUpdate(ctx, key,
		store.Patch{}.Set(store.FieldExternalLibraryLink, link))
}

// SetPauseUpdate toggles the per-work refetch pause.
func (s *Service) SetPauseUpdate(ctx context.Context, key models.WorkKey, paused bool) (*models.WorkMetadata, error) {
	return s.works.FindOneAndUpdate(ctx, key,
		store.Patch{}.Set(store.FieldPauseUpdate, paused))
}

// Get returns the stored record without triggering a refresh.
func (s *Service) Get(ctx context.Context, key models.WorkKey) (*models.WorkMetadata, error) {
	return s.works.FindOne(ctx, key)
}

// syncIndex pushes the record to the search index. A failure leaves the index
// behind the store until the next write, which is tolerated; it is logged
// loudly so drift does not go unnoticed.
func (s *Service) syncIndex(ctx context.Context, w *models.WorkMetadata) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.SyncWork(ctx, w); err != nil {
		s.logger.Error("search index out of sync with store",
			zap.String("provider", w.Provider), zap.String("work_id", w.WorkID), zap.Error(err))
	}
}

func (s *Service) mirrorCover(ctx context.Context, key models.WorkKey, coverURL string) {
	if s.covers == nil || coverURL == "" {
		return
	}
	if err := s.covers.Mirror(ctx, key, coverURL); err != nil {
		s.logger.Warn("failed to mirror cover image",
			zap.String("provider", key.Provider), zap.String("work_id", key.WorkID), zap.Error(err))
	}
}

// WithClock overrides the service clock. Test use only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
