package youtube

import (
	"testing"

	"berta-backend/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"
)

func TestParseISO8601Duration(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{raw: "PT1H2M3S", want: 3723},
		{raw: "PT4M13S", want: 253},
		{raw: "PT45S", want: 45},
		{raw: "PT2H", want: 7200},
		{raw: "PT", want: 0},
		{raw: "", want: 0},
		// day-carrying durations are outside the decoded syntax
		{raw: "P1DT2H", want: 0},
		{raw: "garbage", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseISO8601Duration(tt.raw))
		})
	}
}

func TestConvertVideo(t *testing.T) {
	in := &youtube.Video{
		Id: "vid-1",
		Snippet: &youtube.VideoSnippet{
			Title:       "Launch recap",
			Description: "desc",
			PublishedAt: "2024-05-01T12:00:00Z",
			Tags:        []string{"space"},
			Thumbnails: &youtube.ThumbnailDetails{
				High: &youtube.Thumbnail{Url: "https://img/high.jpg", Width: 480, Height: 360},
			},
		},
		Statistics:     &youtube.VideoStatistics{ViewCount: 1200, LikeCount: 34},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT4M13S"},
	}

	got := convertVideo(in)

	assert.Equal(t, "vid-1", got.ID)
	assert.Equal(t, "Launch recap", got.Title)
	assert.Equal(t, "1200", got.Statistics.ViewCount)
	assert.Equal(t, "34", got.Statistics.LikeCount)
	assert.Equal(t, int64(253), got.Duration)
	assert.Equal(t, "https://img/high.jpg", got.Thumbnails.High.URL)
	assert.Equal(t, 2024, got.PublishedAt.Year())
}

func TestConvertVideoDefensive(t *testing.T) {
	assert.Equal(t, model.Video{}, convertVideo(nil))

	got := convertVideo(&youtube.Video{Id: "bare"})
	assert.Equal(t, "bare", got.ID)
	assert.Zero(t, got.Duration)
	assert.Empty(t, got.Statistics.ViewCount)
}

func TestConvertPlaylistPrivacy(t *testing.T) {
	public := convertPlaylist(&youtube.Playlist{
		Id:     "pl-1",
		Status: &youtube.PlaylistStatus{PrivacyStatus: "public"},
	})
	assert.False(t, public.IsPrivate)

	unlisted := convertPlaylist(&youtube.Playlist{
		Id:     "pl-2",
		Status: &youtube.PlaylistStatus{PrivacyStatus: "unlisted"},
	})
	assert.True(t, unlisted.IsPrivate)

	// no status block at all reads as not public
	bare := convertPlaylist(&youtube.Playlist{Id: "pl-3"})
	assert.True(t, bare.IsPrivate)
}

func TestRemoveShorts(t *testing.T) {
	in := []model.Video{
		{ID: "long", Duration: 61},
		{ID: "boundary", Duration: 60},
		{ID: "short", Duration: 12},
		{ID: "unknown", Duration: 0},
	}

	got := removeShorts(in)

	require.Len(t, got, 1)
	assert.Equal(t, "long", got[0].ID)
}
