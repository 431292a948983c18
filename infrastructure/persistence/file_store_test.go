package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"berta-backend/domain/model"
	"berta-backend/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreReadMiss(t *testing.T) {
	store := NewFileStore(t.TempDir())

	doc, err := store.Read(context.Background(), model.ResourceVideo)

	assert.ErrorIs(t, err, repository.ErrCacheMiss)
	assert.Nil(t, doc)
}

func TestFileStoreWriteRead(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	doc := &model.CacheDocument{
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Videos: []model.Video{{
			ID:         "vid-1",
			Title:      "Launch recap",
			Statistics: model.VideoStatistics{ViewCount: "1200", LikeCount: "34"},
			Popularity: 840,
		}},
	}
	require.NoError(t, store.Write(ctx, model.ResourceVideo, doc))

	got, err := store.Read(ctx, model.ResourceVideo)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// resource types live in separate files
	_, err = store.Read(ctx, model.ResourcePlaylist)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	first := &model.CacheDocument{UpdatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	second := &model.CacheDocument{UpdatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Write(ctx, model.ResourceVideo, first))
	require.NoError(t, store.Write(ctx, model.ResourceVideo, second))

	got, err := store.Read(ctx, model.ResourceVideo)
	require.NoError(t, err)
	assert.Equal(t, second.UpdatedAt, got.UpdatedAt)
}

func TestFileStoreCorruptFileReadsAsMiss(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "video.json"), []byte("{not json"), 0o644))

	_, err := store.Read(context.Background(), model.ResourceVideo)

	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	store := NewFileStore(dir)

	err := store.Write(context.Background(), model.ResourceVideo, &model.CacheDocument{})

	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Write(context.Background(), model.ResourceVideo, &model.CacheDocument{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "stray temp file %s", entry.Name())
	}
}
