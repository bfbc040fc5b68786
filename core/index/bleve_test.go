package index_test

import (
	"context"
	"path/filepath"
	"testing"

	"novel-hub/core/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBleve(t *testing.T) *index.Bleve {
	t.Helper()
	idx, err := index.NewBleve(index.Config{Path: filepath.Join(t.TempDir(), "works.bleve")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestBleve_TermsRangesAndText(t *testing.T) {
	idx := newBleve(t)
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, "syosetu/n1", index.Document{
		index.FieldProvider:     "syosetu",
		index.FieldTitle:        "dragon knight",
		index.FieldTags:         []string{"r18"},
		index.FieldKeywords:     []string{"isekai"},
		index.FieldHasMT:        true,
		index.FieldChapterCount: 30,
		index.FieldUpdateAt:     int64(300),
	}))
	require.NoError(t, idx.Upsert(ctx, "syosetu/n2", index.Document{
		index.FieldProvider:     "syosetu",
		index.FieldTitle:        "dragon garden",
		index.FieldTags:         []string{},
		index.FieldKeywords:     []string{},
		index.FieldHasMT:        false,
		index.FieldChapterCount: 5,
		index.FieldUpdateAt:     int64(200),
	}))

	// Exact tag term through the keyword analyzer.
	res, err := idx.Search(ctx, index.Request{
		Must:     []index.Term{{Field: index.FieldTags, Value: "r18"}},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "syosetu/n1", res.Hits[0].ID)

	// Strict chapter-count bound: 5 is excluded by >5.
	gt := 5
	res, err = idx.Search(ctx, index.Request{
		Ranges:   []index.Range{{Field: index.FieldChapterCount, GT: &gt}},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "syosetu/n1", res.Hits[0].ID)

	// Every text token must match some field.
	res, err = idx.Search(ctx, index.Request{
		Text: &index.Text{
			Fields: []string{index.FieldTitle, index.FieldKeywords},
			Query:  "dragon isekai",
		},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "syosetu/n1", res.Hits[0].ID)

	// Boolean field term.
	res, err = idx.Search(ctx, index.Request{
		MustNot:  []index.Term{{Field: index.FieldHasMT, Value: true}},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "syosetu/n2", res.Hits[0].ID)
}

func TestBleve_RecencySortAndReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "works.bleve")
	ctx := context.Background()

	idx, err := index.NewBleve(index.Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, idx.Upsert(ctx, "a", index.Document{index.FieldTitle: "older", index.FieldUpdateAt: int64(100)}))
	require.NoError(t, idx.Upsert(ctx, "b", index.Document{index.FieldTitle: "newer", index.FieldUpdateAt: int64(200)}))
	require.NoError(t, idx.Close())

	// Reopening hits the existing index instead of recreating it.
	idx, err = index.NewBleve(index.Config{Path: dir})
	require.NoError(t, err)
	defer idx.Close()

	res, err := idx.Search(ctx, index.Request{SortByRecency: true, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Hits, 2)
	assert.Equal(t, "b", res.Hits[0].ID)
	assert.Equal(t, "a", res.Hits[1].ID)
	assert.Equal(t, int64(2), res.Total)
}
