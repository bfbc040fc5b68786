package index_test

import (
	"context"
	"testing"

	"novel-hub/core/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, idx index.Index) {
	t.Helper()
	ctx := context.Background()
	docs := map[string]index.Document{
		"syosetu/n1": {
			index.FieldProvider:     "syosetu",
			index.FieldTitle:        "竜の騎士",
			index.FieldTags:         []string{"r18", "fantasy"},
			index.FieldKeywords:     []string{"isekai"},
			index.FieldHasMT:        true,
			index.FieldChapterCount: 30,
			index.FieldUpdateAt:     int64(300),
		},
		"syosetu/n2": {
			index.FieldProvider:     "syosetu",
			index.FieldTitle:        "竜の庭",
			index.FieldTags:         []string{"fantasy"},
			index.FieldKeywords:     []string{"slice-of-life"},
			index.FieldHasMT:        false,
			index.FieldChapterCount: 5,
			index.FieldUpdateAt:     int64(200),
		},
		"kakuyomu/k1": {
			index.FieldProvider:     "kakuyomu",
			index.FieldTitle:        "海の街",
			index.FieldTags:         []string{},
			index.FieldKeywords:     []string{"isekai"},
			index.FieldHasMT:        false,
			index.FieldChapterCount: 50,
			index.FieldUpdateAt:     int64(100),
		},
	}
	for id, doc := range docs {
		require.NoError(t, idx.Upsert(ctx, id, doc))
	}
}

func ids(res *index.Result) []string {
	out := make([]string, 0, len(res.Hits))
	for _, h := range res.Hits {
		out = append(out, h.ID)
	}
	return out
}

func TestMemory_TermMatching(t *testing.T) {
	idx := index.NewMemory()
	seed(t, idx)
	ctx := context.Background()

	res, err := idx.Search(ctx, index.Request{
		Must:     []index.Term{{Field: index.FieldProvider, Value: "syosetu"}},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"syosetu/n1", "syosetu/n2"}, ids(res))

	// Slice fields match on containment.
	res, err = idx.Search(ctx, index.Request{
		Must:     []index.Term{{Field: index.FieldTags, Value: "r18"}},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"syosetu/n1"}, ids(res))

	res, err = idx.Search(ctx, index.Request{
		Must:     []index.Term{{Field: index.FieldHasMT, Value: true}},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"syosetu/n1"}, ids(res))
}

func TestMemory_MustNotAndAny(t *testing.T) {
	idx := index.NewMemory()
	seed(t, idx)
	ctx := context.Background()

	res, err := idx.Search(ctx, index.Request{
		MustNot:  []index.Term{{Field: index.FieldTags, Value: "r18"}},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"syosetu/n2", "kakuyomu/k1"}, ids(res))

	res, err = idx.Search(ctx, index.Request{
		Any: []index.Term{
			{Field: index.FieldTags, Value: "r18"},
			{Field: index.FieldKeywords, Value: "slice-of-life"},
		},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"syosetu/n1", "syosetu/n2"}, ids(res))
}

func TestMemory_RangesAreStrict(t *testing.T) {
	idx := index.NewMemory()
	seed(t, idx)
	ctx := context.Background()

	gt := 5
	res, err := idx.Search(ctx, index.Request{
		Ranges:   []index.Range{{Field: index.FieldChapterCount, GT: &gt}},
		PageSize: 10,
	})
	require.NoError(t, err)
	// chapter_count == 5 is excluded.
	assert.ElementsMatch(t, []string{"syosetu/n1", "kakuyomu/k1"}, ids(res))

	lt := 50
	res, err = idx.Search(ctx, index.Request{
		Ranges:   []index.Range{{Field: index.FieldChapterCount, GT: &gt, LT: &lt}},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"syosetu/n1"}, ids(res))
}

func TestMemory_TextRequiresEveryToken(t *testing.T) {
	idx := index.NewMemory()
	seed(t, idx)
	ctx := context.Background()

	res, err := idx.Search(ctx, index.Request{
		Text: &index.Text{
			Fields: []string{index.FieldTitle, index.FieldKeywords},
			Query:  "竜 isekai",
		},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"syosetu/n1"}, ids(res))
}

func TestMemory_RecencySortAndPagination(t *testing.T) {
	idx := index.NewMemory()
	seed(t, idx)
	ctx := context.Background()

	res, err := idx.Search(ctx, index.Request{SortByRecency: true, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"syosetu/n1", "syosetu/n2"}, ids(res))
	assert.Equal(t, int64(3), res.Total)

	res, err = idx.Search(ctx, index.Request{SortByRecency: true, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"kakuyomu/k1"}, ids(res))
	assert.Equal(t, int64(3), res.Total)
}

func TestMemory_UpsertReplaces(t *testing.T) {
	idx := index.NewMemory()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, "a", index.Document{index.FieldTitle: "one"}))
	require.NoError(t, idx.Upsert(ctx, "a", index.Document{index.FieldTitle: "two"}))

	res, err := idx.Search(ctx, index.Request{
		Text:     &index.Text{Fields: []string{index.FieldTitle}, Query: "one"},
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Hits)

	res, err = idx.Search(ctx, index.Request{PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
}
