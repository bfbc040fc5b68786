package favorite_test

import (
	"context"
	"testing"
	"time"

	"novel-hub/core/database"
	"novel-hub/feature/favorite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *favorite.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&favorite.Record{}))
	return favorite.NewGormStore(db)
}

func TestStamp_UpdatesEveryRelationshipForWork(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "user-1", "syosetu", "n1234"))
	require.NoError(t, s.Add(ctx, "user-2", "syosetu", "n1234"))
	require.NoError(t, s.Add(ctx, "user-1", "syosetu", "other"))

	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	n, err := s.Stamp(ctx, "syosetu", "n1234", ts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	favs, err := s.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favs, 2)
	for _, f := range favs {
		if f.WorkID == "n1234" {
			assert.Equal(t, ts.Unix(), f.UpdatedRef.Unix())
		} else {
			assert.True(t, f.UpdatedRef.IsZero() || f.UpdatedRef.Unix() != ts.Unix())
		}
	}
}

func TestStamp_IsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "user-1", "syosetu", "n1234"))
	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Stamp(ctx, "syosetu", "n1234", ts)
	require.NoError(t, err)
	_, err = s.Stamp(ctx, "syosetu", "n1234", ts)
	require.NoError(t, err)

	favs, err := s.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, ts.Unix(), favs[0].UpdatedRef.Unix())
}

func TestStamp_NoRelationships(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Stamp(context.Background(), "syosetu", "unloved", time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
