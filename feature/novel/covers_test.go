package novel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"novel-hub/core/storage/mocks"
	"novel-hub/feature/novel"
	"novel-hub/feature/novel/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCoverMirror_StoresUnderProviderPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "covers", "syosetu/n1234.png",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	m := novel.NewCoverMirror(mockClient, "covers")
	err := m.Mirror(context.Background(),
		models.WorkKey{Provider: "syosetu", WorkID: "n1234"},
		srv.URL+"/covers/n1234.png")
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestCoverMirror_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	mockClient := new(mocks.Client)
	m := novel.NewCoverMirror(mockClient, "covers")

	err := m.Mirror(context.Background(),
		models.WorkKey{Provider: "syosetu", WorkID: "n1234"},
		srv.URL+"/missing.jpg")
	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "PutObject")
}
