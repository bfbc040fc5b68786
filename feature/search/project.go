package search

import (
	"strings"

	"novel-hub/core/index"
	"novel-hub/feature/novel/models"
)

// DocID returns the index document id for a work.
func DocID(key models.WorkKey) string {
	return key.Provider + "/" + key.WorkID
}

// Project flattens a work record into its index document. Tags and keywords
// are lowercased so exact-match constraints are case-insensitive; timestamps
// are stored as unix seconds so the index can sort numerically.
func Project(w *models.WorkMetadata) (string, index.Document) {
	authors := make([]string, 0, len(w.Authors))
	for _, a := range w.Authors {
		authors = append(authors, a.Name)
	}

	doc := index.Document{
		index.FieldProvider:       w.Provider,
		index.FieldTitle:          w.Title,
		index.FieldTitleZh:        w.TitleZh,
		index.FieldAuthors:        authors,
		index.FieldClassification: int(w.Classification),
		index.FieldTags:           lowered(w.Tags),
		index.FieldKeywords:       lowered(w.Keywords),
		index.FieldHasMT:          w.HasMachineTranslation(),
		index.FieldChapterCount:   len(w.Toc),
		index.FieldUpdateAt:       w.UpdateAt.Unix(),
	}
	return DocID(w.Key()), doc
}

func lowered(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
