package novel

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"novel-hub/core/storage"
	"novel-hub/feature/novel/models"

	"github.com/minio/minio-go/v7"
)

// CoverMirror copies remote cover images into object storage so the frontend
// never hotlinks provider sites. Mirroring is best-effort: the caller logs
// failures and moves on.
type CoverMirror struct {
	client storage.Client
	bucket string
	http   *http.Client
}

// NewCoverMirror creates a mirror writing into the given bucket.
func NewCoverMirror(client storage.Client, bucket string) *CoverMirror {
	return &CoverMirror{
		client: client,
		bucket: bucket,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Mirror downloads coverURL and stores it under provider/workID.
func (m *CoverMirror) Mirror(ctx context.Context, key models.WorkKey, coverURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return fmt.Errorf("invalid cover url %s: %w", coverURL, err)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch cover %s: %w", coverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cover fetch %s returned %d", coverURL, resp.StatusCode)
	}

	ext := path.Ext(coverURL)
	if ext == "" {
		ext = ".jpg"
	}
	objectName := fmt.Sprintf("%s/%s%s", key.Provider, key.WorkID, ext)

	_, err = m.client.PutObject(ctx, m.bucket, objectName, resp.Body, resp.ContentLength,
		minio.PutObjectOptions{ContentType: resp.Header.Get("Content-Type")})
	if err != nil {
		return fmt.Errorf("failed to store cover %s: %w", objectName, err)
	}
	return nil
}
