package novel_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"novel-hub/core/database"
	"novel-hub/feature/favorite"
	"novel-hub/feature/novel"
	"novel-hub/feature/novel/audit"
	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"
	"novel-hub/feature/novel/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, prov *stubProvider) (*fiber.App, *novel.Service) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WorkRecord{}, &favorite.Record{}, &audit.Record{}))

	svc := novel.NewService(
		store.NewGormStore(db),
		provider.NewRegistry(prov),
		&capturingIndexer{},
		favorite.NewGormStore(db),
		audit.NewGormRecorder(db),
		nil,
		zap.NewNop(),
		20*time.Hour,
	)

	app := fiber.New()
	require.NoError(t, novel.NewFeature(svc).Load(app))
	return app, svc
}

func TestHandleGetWork(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable,
		remote: remoteSnapshot(models.TocItem{Title: "第一話", ChapterID: "1"})}
	app, _ := newTestApp(t, prov)

	req := httptest.NewRequest("GET", "/novels/syosetu/n1234", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.WorkMetadata
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ある小説", body.Title)
	require.Len(t, body.Toc, 1)
}

func TestHandleGetWork_NotFound(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable,
		err: provider.NewError(provider.KindNotFound, assert.AnError)}
	app, _ := newTestApp(t, prov)

	req := httptest.NewRequest("GET", "/novels/syosetu/gone", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleUpdateTranslation(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable,
		remote: remoteSnapshot(models.TocItem{Title: "第一話", ChapterID: "1"})}
	app, svc := newTestApp(t, prov)

	_, err := svc.GetAndSync(context.Background(), models.WorkKey{Provider: "syosetu", WorkID: "n1234"}, 0)
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]any{
		"title_zh": "某小说",
		"toc_zh":   map[string]string{"第一話": "第一章"},
	})
	req := httptest.NewRequest("PUT", "/novels/syosetu/n1234/translation", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.WorkMetadata
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "某小说", body.TitleZh)
	require.Len(t, body.Toc, 1)
	assert.Equal(t, "第一章", body.Toc[0].TitleZh)
}

func TestHandleUpdateTranslation_MissingWork(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable, remote: remoteSnapshot()}
	app, _ := newTestApp(t, prov)

	payload, _ := json.Marshal(map[string]any{"title_zh": "x"})
	req := httptest.NewRequest("PUT", "/novels/syosetu/nope/translation", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleVisit(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable, remote: remoteSnapshot()}
	app, svc := newTestApp(t, prov)
	key := models.WorkKey{Provider: "syosetu", WorkID: "n1234"}

	_, err := svc.GetAndSync(context.Background(), key, 0)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/novels/syosetu/n1234/visit", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	got, err := svc.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Visited)
}

func TestHandleSetPause(t *testing.T) {
	prov := &stubProvider{name: "syosetu", stability: merge.Stable, remote: remoteSnapshot()}
	app, svc := newTestApp(t, prov)
	key := models.WorkKey{Provider: "syosetu", WorkID: "n1234"}

	_, err := svc.GetAndSync(context.Background(), key, 0)
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]any{"paused": true})
	req := httptest.NewRequest("PUT", "/novels/syosetu/n1234/pause", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	got, err := svc.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, got.PauseUpdate)
}
