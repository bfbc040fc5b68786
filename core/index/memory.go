package index

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-process Index used by tests and by deployments that do not
// run a persistent index. Evaluation is a linear scan; it is not meant for
// large corpora.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]Document)}
}

func (m *Memory) Upsert(_ context.Context, id string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(Document, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	m.docs[id] = copied
	return nil
}

func (m *Memory) Search(_ context.Context, req Request) (*Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, doc := range m.docs {
		if matches(doc, req) {
			ids = append(ids, id)
		}
	}

	if req.SortByRecency {
		sort.Slice(ids, func(i, j int) bool {
			ui := toFloat(m.docs[ids[i]][FieldUpdateAt])
			uj := toFloat(m.docs[ids[j]][FieldUpdateAt])
			if ui != uj {
				return ui > uj
			}
			return ids[i] < ids[j]
		})
	} else {
		sort.Strings(ids)
	}

	total := int64(len(ids))
	start := req.Page * req.PageSize
	if start > len(ids) {
		start = len(ids)
	}
	end := start + req.PageSize
	if req.PageSize <= 0 || end > len(ids) {
		end = len(ids)
	}

	hits := make([]Hit, 0, end-start)
	for _, id := range ids[start:end] {
		hits = append(hits, Hit{ID: id, Fields: m.docs[id]})
	}
	return &Result{Hits: hits, Total: total}, nil
}

func matches(doc Document, req Request) bool {
	for _, t := range req.Must {
		if !matchTerm(doc, t) {
			return false
		}
	}
	for _, t := range req.MustNot {
		if matchTerm(doc, t) {
			return false
		}
	}
	if len(req.Any) > 0 {
		ok := false
		for _, t := range req.Any {
			if matchTerm(doc, t) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, r := range req.Ranges {
		v := toFloat(doc[r.Field])
		if r.GT != nil && !(v > float64(*r.GT)) {
			return false
		}
		if r.LT != nil && !(v < float64(*r.LT)) {
			return false
		}
	}
	if req.Text != nil {
		for _, token := range strings.Fields(req.Text.Query) {
			if !matchToken(doc, req.Text.Fields, token) {
				return false
			}
		}
	}
	return true
}

func matchTerm(doc Document, t Term) bool {
	switch want := t.Value.(type) {
	case string:
		switch have := doc[t.Field].(type) {
		case string:
			return have == want
		case []string:
			for _, s := range have {
				if s == want {
					return true
				}
			}
			return false
		}
		return false
	case bool:
		have, ok := doc[t.Field].(bool)
		return ok && have == want
	default:
		return toFloat(doc[t.Field]) == toFloat(t.Value)
	}
}

func matchToken(doc Document, fields []string, token string) bool {
	token = strings.ToLower(token)
	for _, f := range fields {
		switch v := doc[f].(type) {
		case string:
			if strings.Contains(strings.ToLower(v), token) {
				return true
			}
		case []string:
			for _, s := range v {
				if strings.Contains(strings.ToLower(s), token) {
					return true
				}
			}
		}
	}
	return false
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	}
	return 0
}
