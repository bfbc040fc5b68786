package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"novel-hub/feature/novel/merge"
	"novel-hub/feature/novel/models"
)

// HTTPProvider is a generic adapter for provider gateways speaking the
// scraping gateway's JSON API. Site-specific scraping stays inside the
// gateway; this adapter only translates snapshots.
type HTTPProvider struct {
	name      string
	baseURL   string
	stability merge.Stability
	client    *http.Client
}

// NewHTTP creates an adapter for one provider endpoint.
func NewHTTP(name, baseURL string, stability merge.Stability, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPProvider{
		name:      name,
		baseURL:   baseURL,
		stability: stability,
		client:    &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) Name() string {
	return p.name
}

func (p *HTTPProvider) Stability() merge.Stability {
	return p.stability
}

type wireAuthor struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type wireTocItem struct {
	Title     string    `json:"title"`
	ChapterID string    `json:"chapter_id"`
	CreatedAt time.Time `json:"created_at"`
}

type wireWork struct {
	Title    string        `json:"title"`
	Authors  []wireAuthor  `json:"authors"`
	Type     string        `json:"type"`
	Tags     []string      `json:"tags"`
	Keywords []string      `json:"keywords"`
	Synopsis string        `json:"synopsis"`
	Cover    string        `json:"cover"`
	Toc      []wireTocItem `json:"toc"`
}

// FetchMetadata retrieves the current remote snapshot of a work.
func (p *HTTPProvider) FetchMetadata(ctx context.Context, workID string) (*models.RemoteWork, error) {
	var wire wireWork
	endpoint := fmt.Sprintf("%s/works/%s", p.baseURL, url.PathEscape(workID))
	if err := p.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	work := &models.RemoteWork{
		Title:          wire.Title,
		Classification: parseClassification(wire.Type),
		Tags:           wire.Tags,
		Keywords:       wire.Keywords,
		Synopsis:       wire.Synopsis,
		CoverURL:       wire.Cover,
	}
	for _, a := range wire.Authors {
		work.Authors = append(work.Authors, models.Author{Name: a.Name, Link: a.Link})
	}
	for _, c := range wire.Toc {
		work.Toc = append(work.Toc, models.TocItem{
			Title:     c.Title,
			ChapterID: c.ChapterID,
			CreatedAt: c.CreatedAt,
		})
	}
	return work, nil
}

type wireRankItem struct {
	WorkID   string            `json:"work_id"`
	Title    string            `json:"title"`
	Tags     []string          `json:"tags"`
	Keywords []string          `json:"keywords"`
	Extra    map[string]string `json:"extra"`
}

// FetchRank retrieves a rank listing.
func (p *HTTPProvider) FetchRank(ctx context.Context, opts RankOptions) ([]models.RankItem, error) {
	values := url.Values{}
	for k, v := range opts {
		values.Set(k, v)
	}
	endpoint := p.baseURL + "/rank"
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var wire []wireRankItem
	if err := p.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	items := make([]models.RankItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, models.RankItem{
			WorkID:   w.WorkID,
			Title:    w.Title,
			Tags:     w.Tags,
			Keywords: w.Keywords,
			Extra:    w.Extra,
		})
	}
	return items, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewError(KindPermanent, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return NewError(KindTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewError(KindNotFound, fmt.Errorf("%s returned 404", endpoint))
	case resp.StatusCode >= 500:
		return NewError(KindTransient, fmt.Errorf("%s returned %d", endpoint, resp.StatusCode))
	case resp.StatusCode >= 400:
		return NewError(KindPermanent, fmt.Errorf("%s returned %d", endpoint, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(KindPermanent, fmt.Errorf("failed to decode %s: %w", endpoint, err))
	}
	return nil
}

func parseClassification(s string) models.Classification {
	switch s {
	case "ongoing":
		return models.ClassificationOngoing
	case "completed":
		return models.ClassificationCompleted
	case "short":
		return models.ClassificationShort
	}
	return models.ClassificationUnknown
}
