package search_test

import (
	"testing"

	"novel-hub/core/index"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_RangeTokensConsumed(t *testing.T) {
	req := search.Compile(">10 dragon <100", search.Filters{}, 0, 20)

	require.Len(t, req.Ranges, 2)
	require.NotNil(t, req.Ranges[0].GT)
	assert.Equal(t, 10, *req.Ranges[0].GT)
	assert.Nil(t, req.Ranges[0].LT)
	require.NotNil(t, req.Ranges[1].LT)
	assert.Equal(t, 100, *req.Ranges[1].LT)

	// Range tokens never leak into free text.
	require.NotNil(t, req.Text)
	assert.Equal(t, "dragon", req.Text.Query)
	assert.False(t, req.SortByRecency)
}

func TestCompile_AdvisoryTagTargetsTagField(t *testing.T) {
	req := search.Compile("r18$", search.Filters{}, 0, 20)

	require.Len(t, req.Must, 1)
	assert.Equal(t, index.FieldTags, req.Must[0].Field)
	assert.Equal(t, "r18", req.Must[0].Value)
}

func TestCompile_UnknownLiteralTargetsKeywordField(t *testing.T) {
	req := search.Compile("isekai$ -harem$", search.Filters{}, 0, 20)

	require.Len(t, req.Must, 1)
	assert.Equal(t, index.FieldKeywords, req.Must[0].Field)
	assert.Equal(t, "isekai", req.Must[0].Value)

	require.Len(t, req.MustNot, 1)
	assert.Equal(t, index.FieldKeywords, req.MustNot[0].Field)
	assert.Equal(t, "harem", req.MustNot[0].Value)
}

func TestCompile_FilterOnlyQuerySortsByRecency(t *testing.T) {
	cls := models.ClassificationCompleted
	req := search.Compile("", search.Filters{
		Provider:       "syosetu",
		Classification: &cls,
		HasMT:          true,
	}, 1, 50)

	assert.Nil(t, req.Text)
	assert.True(t, req.SortByRecency)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 50, req.PageSize)

	require.Len(t, req.Must, 3)
	assert.Equal(t, index.Term{Field: index.FieldProvider, Value: "syosetu"}, req.Must[0])
	assert.Equal(t, index.Term{Field: index.FieldClassification, Value: 2}, req.Must[1])
	assert.Equal(t, index.Term{Field: index.FieldHasMT, Value: true}, req.Must[2])
}

func TestCompile_GeneralLevelExcludesAdultTags(t *testing.T) {
	req := search.Compile("dragon", search.Filters{Level: search.LevelGeneral}, 0, 20)

	require.Len(t, req.MustNot, 2)
	for _, term := range req.MustNot {
		assert.Equal(t, index.FieldTags, term.Field)
	}
	assert.Empty(t, req.Any)
}

func TestCompile_AdultLevelRequiresAdultTag(t *testing.T) {
	req := search.Compile("", search.Filters{Level: search.LevelAdult}, 0, 20)

	require.Len(t, req.Any, 2)
	for _, term := range req.Any {
		assert.Equal(t, index.FieldTags, term.Field)
	}
	assert.Empty(t, req.MustNot)
}

func TestCompile_FreeTextJoinsWithSpaces(t *testing.T) {
	req := search.Compile("dragon   knight", search.Filters{}, 0, 20)

	require.NotNil(t, req.Text)
	assert.Equal(t, "dragon knight", req.Text.Query)
	assert.Equal(t, []string{
		index.FieldTitleZh,
		index.FieldTitle,
		index.FieldAuthors,
		index.FieldTags,
		index.FieldKeywords,
	}, req.Text.Fields)
}

func TestCompile_MalformedTokensFallToFreeText(t *testing.T) {
	// ">x" has no number, "$" has no literal.
	req := search.Compile(">x $", search.Filters{}, 0, 20)

	assert.Empty(t, req.Ranges)
	assert.Empty(t, req.Must)
	require.NotNil(t, req.Text)
	assert.Equal(t, ">x $", req.Text.Query)
}
