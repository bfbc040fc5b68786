package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_FetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/works/n1234":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"title": "転生したら",
				"authors": [{"name": "author-a", "link": "https://example.com/a"}],
				"type": "ongoing",
				"tags": ["r18"],
				"keywords": ["isekai"],
				"synopsis": "...",
				"cover": "https://example.com/cover.jpg",
				"toc": [
					{"title": "第一話", "chapter_id": "1", "created_at": "2024-01-01T00:00:00Z"},
					{"title": "第二話", "chapter_id": "2", "created_at": "2024-01-02T00:00:00Z"}
				]
			}`))
		case "/works/gone":
			w.WriteHeader(http.StatusNotFound)
		case "/works/broken":
			w.WriteHeader(http.StatusInternalServerError)
		case "/works/banned":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	p := provider.NewHTTP("syosetu", srv.URL, merge.Stable, 5*time.Second)

	t.Run("success", func(t *testing.T) {
		work, err := p.FetchMetadata(context.Background(), "n1234")
		require.NoError(t, err)
		assert.Equal(t, "転生したら", work.Title)
		assert.Len(t, work.Toc, 2)
		assert.Equal(t, "1", work.Toc[0].ChapterID)
		assert.Equal(t, "https://example.com/cover.jpg", work.CoverURL)
	})

	t.Run("404 is not found", func(t *testing.T) {
		_, err := p.FetchMetadata(context.Background(), "gone")
		require.Error(t, err)
		assert.True(t, provider.IsNotFound(err))
	})

	t.Run("500 is transient", func(t *testing.T) {
		_, err := p.FetchMetadata(context.Background(), "broken")
		require.Error(t, err)
		assert.Equal(t, provider.KindTransient, provider.KindOf(err))
	})

	t.Run("other 4xx is permanent", func(t *testing.T) {
		_, err := p.FetchMetadata(context.Background(), "banned")
		require.Error(t, err)
		assert.Equal(t, provider.KindPermanent, provider.KindOf(err))
	})
}

func TestHTTPProvider_FetchRank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rank", r.URL.Path)
		assert.Equal(t, "weekly", r.URL.Query().Get("period"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"work_id": "n1", "title": "first", "tags": ["r18"]},
			{"work_id": "n2", "title": "second"}
		]`))
	}))
	defer srv.Close()

	p := provider.NewHTTP("syosetu", srv.URL, merge.Stable, 5*time.Second)

	items, err := p.FetchRank(context.Background(), provider.RankOptions{"period": "weekly"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "n1", items[0].WorkID)
}

func TestRegistry(t *testing.T) {
	reg := provider.NewRegistry(provider.Builtins("http://localhost:9100", time.Second)...)

	p, err := reg.Get(provider.Alphapolis)
	require.NoError(t, err)
	assert.Equal(t, merge.Unstable, p.Stability())

	_, err = reg.Get("nosuchsite")
	assert.Error(t, err)
}
