package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Bleve is the persistent Index implementation backed by a bleve index on
// disk. It is the production adapter; tests use Memory.
type Bleve struct {
	idx bleve.Index
}

// NewBleve opens the bleve index at cfg.Path, creating it with the work
// document mapping when it does not exist yet.
func NewBleve(cfg Config) (*Bleve, error) {
	idx, err := bleve.Open(cfg.Path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(cfg.Path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open search index at %s: %w", cfg.Path, err)
	}
	return &Bleve{idx: idx}, nil
}

// buildMapping declares analyzers per field: exact-match fields use the
// keyword analyzer so term constraints see the stored literal, counters and
// timestamps are numeric, titles and authors get full text analysis.
func buildMapping() *mapping.IndexMappingImpl {
	doc := bleve.NewDocumentMapping()

	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name
	for _, f := range []string{FieldProvider, FieldTags, FieldKeywords} {
		doc.AddFieldMappingsAt(f, kw)
	}

	num := bleve.NewNumericFieldMapping()
	for _, f := range []string{FieldClassification, FieldChapterCount, FieldUpdateAt} {
		doc.AddFieldMappingsAt(f, num)
	}

	doc.AddFieldMappingsAt(FieldHasMT, bleve.NewBooleanFieldMapping())

	txt := bleve.NewTextFieldMapping()
	for _, f := range []string{FieldTitle, FieldTitleZh, FieldAuthors} {
		doc.AddFieldMappingsAt(f, txt)
	}

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

func (b *Bleve) Upsert(_ context.Context, id string, doc Document) error {
	return b.idx.Index(id, map[string]any(doc))
}

func (b *Bleve) Search(_ context.Context, req Request) (*Result, error) {
	q := bleve.NewBooleanQuery()
	clauses := 0

	for _, t := range req.Must {
		q.AddMust(termQuery(t))
		clauses++
	}
	for _, t := range req.MustNot {
		q.AddMustNot(termQuery(t))
		clauses++
	}
	if len(req.Any) > 0 {
		var alts []query.Query
		for _, t := range req.Any {
			alts = append(alts, termQuery(t))
		}
		q.AddMust(bleve.NewDisjunctionQuery(alts...))
		clauses++
	}
	for _, r := range req.Ranges {
		// Bounds are strict, matching the compiler's >N / <N semantics.
		incl := false
		var min, max *float64
		if r.GT != nil {
			v := float64(*r.GT)
			min = &v
		}
		if r.LT != nil {
			v := float64(*r.LT)
			max = &v
		}
		nr := bleve.NewNumericRangeInclusiveQuery(min, max, &incl, &incl)
		nr.SetField(r.Field)
		q.AddMust(nr)
		clauses++
	}
	if req.Text != nil {
		// Every token must match at least one of the text fields.
		for _, token := range strings.Fields(req.Text.Query) {
			var alts []query.Query
			for _, f := range req.Text.Fields {
				mq := bleve.NewMatchQuery(token)
				mq.SetField(f)
				alts = append(alts, mq)
			}
			q.AddMust(bleve.NewDisjunctionQuery(alts...))
			clauses++
		}
	}

	var root query.Query = q
	if clauses == 0 {
		root = bleve.NewMatchAllQuery()
	}

	size := req.PageSize
	if size <= 0 {
		size = 10
	}
	sr := bleve.NewSearchRequestOptions(root, size, req.Page*size, false)
	sr.Fields = []string{"*"}
	if req.SortByRecency {
		sr.SortBy([]string{"-" + FieldUpdateAt})
	}

	res, err := b.idx.Search(sr)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	out := &Result{Total: int64(res.Total)}
	for _, hit := range res.Hits {
		out.Hits = append(out.Hits, Hit{ID: hit.ID, Fields: hit.Fields})
	}
	return out, nil
}

// Close releases the underlying bleve index.
func (b *Bleve) Close() error {
	return b.idx.Close()
}

func termQuery(t Term) query.Query {
	switch v := t.Value.(type) {
	case string:
		tq := bleve.NewTermQuery(v)
		tq.SetField(t.Field)
		return tq
	case bool:
		bq := bleve.NewBoolFieldQuery(v)
		bq.SetField(t.Field)
		return bq
	default:
		f := toFloat(v)
		incl := true
		nr := bleve.NewNumericRangeInclusiveQuery(&f, &f, &incl, &incl)
		nr.SetField(t.Field)
		return nr
	}
}
