package merge_test

import (
	"testing"

	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/models"

	"github.com/stretchr/testify/assert"
)

func toc(items ...models.TocItem) []models.TocItem {
	return items
}

func item(title, titleZh, chapterID string) models.TocItem {
	return models.TocItem{Title: title, TitleZh: titleZh, ChapterID: chapterID}
}

func TestMerge_PreservesTranslatedTitlesByTitleJoin(t *testing.T) {
	local := toc(
		item("第一話", "第一章", "1"),
		item("第二話", "第二章", "2"),
	)
	// Identifier churn: remote reassigned ids, but titles are unchanged.
	remote := toc(
		item("第一話", "", "10"),
		item("第二話", "", "20"),
		item("第三話", "", "30"),
	)

	res := merge.Merge(remote, local, merge.Stable)

	assert.Equal(t, "第一章", res.Toc[0].TitleZh)
	assert.Equal(t, "第二章", res.Toc[1].TitleZh)
	assert.Empty(t, res.Toc[2].TitleZh, "no local match by title")
}

func TestMerge_TitleJoinDropsTranslationWhenSourceTitleChanged(t *testing.T) {
	local := toc(item("old title", "旧标题", "1"))
	remote := toc(item("new title", "", "1"))

	res := merge.Merge(remote, local, merge.Stable)

	assert.Empty(t, res.Toc[0].TitleZh)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	local := toc(item("a", "甲", "1"))
	remote := toc(item("a", "", "1"))

	merge.Merge(remote, local, merge.Stable)

	assert.Empty(t, remote[0].TitleZh)
}

func TestMergeStable_Verdict(t *testing.T) {
	tests := []struct {
		name        string
		remote      []models.TocItem
		local       []models.TocItem
		wantChanged bool
		wantReason  string
	}{
		{
			name:        "identical id sets",
			remote:      toc(item("a", "", "1"), item("b", "", "2")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: false,
		},
		{
			name:        "title change without id change",
			remote:      toc(item("a", "", "1"), item("new", "", "2"), item("c", "", "3")),
			local:       toc(item("a", "", "1"), item("old", "", "2"), item("c", "", "3")),
			wantChanged: false,
			wantReason:  "",
		},
		{
			name:        "pure addition is changed but not audited",
			remote:      toc(item("a", "", "1"), item("b", "", "2")),
			local:       toc(item("a", "", "1")),
			wantChanged: true,
			wantReason:  "",
		},
		{
			name:        "removal is changed and audited",
			remote:      toc(item("a", "", "1")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: true,
			wantReason:  merge.ReasonChaptersRemoved,
		},
		{
			name:        "swap is changed and audited",
			remote:      toc(item("a", "", "1"), item("c", "", "3")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: true,
			wantReason:  merge.ReasonChaptersRemoved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := merge.Merge(tt.remote, tt.local, merge.Stable)
			assert.Equal(t, tt.wantChanged, res.Changed)
			assert.Equal(t, tt.wantReason, res.AuditReason)
		})
	}
}

func TestMergeUnstable_Verdict(t *testing.T) {
	tests := []struct {
		name        string
		remote      []models.TocItem
		local       []models.TocItem
		wantChanged bool
		wantReason  string
	}{
		{
			name:        "same size same titles",
			remote:      toc(item("a", "", "1"), item("b", "", "2")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: false,
		},
		{
			name:        "fewer remote entries always audited",
			remote:      toc(item("a", "", "1")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: true,
			wantReason:  merge.ReasonUnknownChaptersRemoved,
		},
		{
			name:        "additions change without audit",
			remote:      toc(item("a", "", "1"), item("b", "", "2"), item("c", "", "3")),
			local:       toc(item("a", "", "1"), item("b", "", "2")),
			wantChanged: true,
			wantReason:  "",
		},
		{
			name:        "title drift with equal size audited but unchanged",
			remote:      toc(item("a", "", "1"), item("b-new", "", "2")),
			local:       toc(item("a", "", "1"), item("b-old", "", "2")),
			wantChanged: false,
			wantReason:  merge.ReasonChapterTitlesChanged,
		},
		{
			name: "entries without ids excluded from comparison",
			remote: toc(
				item("a", "", "1"),
				item("extra", "", ""),
			),
			local:       toc(item("a", "", "1")),
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := merge.Merge(tt.remote, tt.local, merge.Unstable)
			assert.Equal(t, tt.wantChanged, res.Changed)
			assert.Equal(t, tt.wantReason, res.AuditReason)
			assert.Len(t, res.Toc, len(tt.remote), "merged output keeps every remote item")
		})
	}
}
