package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceType(t *testing.T) {
	for _, rt := range AllResourceTypes {
		got, ok := ParseResourceType(string(rt))
		assert.True(t, ok)
		assert.Equal(t, rt, got)
	}

	_, ok := ParseResourceType("channel")
	assert.False(t, ok)
	_, ok = ParseResourceType("")
	assert.False(t, ok)
}

func TestCacheDocumentIsStale(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	staleTime := 24 * time.Hour

	var nilDoc *CacheDocument
	assert.True(t, nilDoc.IsStale(now, staleTime))
	assert.True(t, (&CacheDocument{}).IsStale(now, staleTime), "zero timestamp reads as infinitely stale")

	fresh := &CacheDocument{UpdatedAt: now.Add(-time.Hour)}
	assert.False(t, fresh.IsStale(now, staleTime))

	atLimit := &CacheDocument{UpdatedAt: now.Add(-staleTime)}
	assert.False(t, atLimit.IsStale(now, staleTime))

	past := &CacheDocument{UpdatedAt: now.Add(-staleTime - time.Nanosecond)}
	assert.True(t, past.IsStale(now, staleTime))
}

func TestCacheDocumentFindVideo(t *testing.T) {
	doc := &CacheDocument{Videos: []Video{{ID: "a"}, {ID: "b"}}}

	found := doc.FindVideo("b")
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	assert.Nil(t, doc.FindVideo("missing"))
	var nilDoc *CacheDocument
	assert.Nil(t, nilDoc.FindVideo("a"))
}

func TestVideoStatisticsCounters(t *testing.T) {
	assert.Equal(t, int64(1200), VideoStatistics{ViewCount: "1200"}.Views())
	assert.Zero(t, VideoStatistics{}.Views())
	assert.Zero(t, VideoStatistics{ViewCount: "n/a"}.Views())
	assert.Zero(t, VideoStatistics{LikeCount: "-5"}.Likes())
}
