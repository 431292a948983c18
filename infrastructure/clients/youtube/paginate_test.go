package youtube

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticPager serves n items in pages of size p and counts fetches.
type syntheticPager struct {
	items     []string
	pageSize  int
	totalHint int64
	fetches   int
}

func (s *syntheticPager) fetch(_ context.Context, pageToken string) (page[string], error) {
	s.fetches++
	start := 0
	if pageToken != "" {
		for i := range s.items {
			if s.items[i] == pageToken {
				start = i
				break
			}
		}
	}
	end := start + s.pageSize
	if end > len(s.items) {
		end = len(s.items)
	}
	p := page[string]{items: s.items[start:end], totalResults: s.totalHint}
	if end < len(s.items) {
		p.nextPageToken = s.items[end]
	}
	return p, nil
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a'+i%26)) + "-" + string(rune('0'+i/26))
	}
	return items
}

func TestFetchAllPages(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		pageSize    int
		totalHint   int64
		wantFetches int
	}{
		{name: "exact_hint", n: 120, pageSize: 50, totalHint: 120, wantFetches: 3},
		{name: "no_hint", n: 120, pageSize: 50, totalHint: 0, wantFetches: 3},
		{name: "overstated_hint", n: 120, pageSize: 50, totalHint: 500, wantFetches: 3},
		{name: "single_page", n: 10, pageSize: 50, totalHint: 10, wantFetches: 1},
		{name: "empty", n: 0, pageSize: 50, totalHint: 0, wantFetches: 1},
		{name: "page_boundary", n: 100, pageSize: 50, totalHint: 100, wantFetches: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager := &syntheticPager{items: makeItems(tt.n), pageSize: tt.pageSize, totalHint: tt.totalHint}

			got, err := fetchAllPages(context.Background(), pager.fetch)

			require.NoError(t, err)
			assert.Len(t, got, tt.n)
			assert.Equal(t, tt.wantFetches, pager.fetches)
		})
	}
}

func TestFetchAllPagesError(t *testing.T) {
	boom := errors.New("transport down")
	fetches := 0
	fetch := func(_ context.Context, pageToken string) (page[string], error) {
		fetches++
		if pageToken == "" {
			return page[string]{items: []string{"a"}, nextPageToken: "b", totalResults: 2}, nil
		}
		return page[string]{}, boom
	}

	got, err := fetchAllPages(context.Background(), fetch)

	require.ErrorIs(t, err, boom)
	assert.Nil(t, got, "no partial result on failure")
	assert.Equal(t, 2, fetches)
}

func TestFetchAllPagesNeverTerminates(t *testing.T) {
	fetch := func(_ context.Context, _ string) (page[string], error) {
		// token never goes empty, total never reached
		return page[string]{items: []string{"x"}, nextPageToken: "again", totalResults: 0}, nil
	}

	_, err := fetchAllPages(context.Background(), fetch)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not terminate")
}

func TestChunkIDs(t *testing.T) {
	assert.Nil(t, chunkIDs(nil, 50))
	assert.Nil(t, chunkIDs([]string{"a"}, 0))

	chunks := chunkIDs(makeItems(120), 50)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 50)
	assert.Len(t, chunks[1], 50)
	assert.Len(t, chunks[2], 20)

	chunks = chunkIDs(makeItems(50), 50)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 50)
}
