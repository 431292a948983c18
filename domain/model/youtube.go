package model

import (
	"strconv"
	"time"
)

// Thumbnails carries the channel-supplied preview images, passed through
// from the API unchanged.
type Thumbnails struct {
	Default Thumbnail `json:"default,omitempty"`
	Medium  Thumbnail `json:"medium,omitempty"`
	High    Thumbnail `json:"high,omitempty"`
}

type Thumbnail struct {
	URL    string `json:"url,omitempty"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// VideoStatistics holds the raw counters as reported by the API. Counters
// stay strings because the API delivers them that way and they may be absent
// for some videos; Views/Likes give parsed access.
type VideoStatistics struct {
	ViewCount string `json:"view_count,omitempty"`
	LikeCount string `json:"like_count,omitempty"`
}

// Views returns the parsed view count, zero when absent or unparsable.
func (s VideoStatistics) Views() int64 {
	return parseCounter(s.ViewCount)
}

// Likes returns the parsed like count, zero when absent or unparsable.
func (s VideoStatistics) Likes() int64 {
	return parseCounter(s.LikeCount)
}

func parseCounter(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// TrendSnapshot captures a video's raw counters at one refresh.
type TrendSnapshot struct {
	Timestamp  time.Time       `json:"timestamp"`
	Statistics VideoStatistics `json:"statistics"`
}

// Video is the normalized domain shape for a channel video.
//
// Popularity and Trend are recomputed on every refresh. TrendStatistics is
// the bounded newest-first snapshot history the trend computation feeds on;
// it is internal state and gets stripped by the client DTO.
type Video struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PublishedAt     time.Time       `json:"published_at"`
	Thumbnails      Thumbnails      `json:"thumbnails"`
	Tags            []string        `json:"tags,omitempty"`
	Duration        int64           `json:"duration"`
	Statistics      VideoStatistics `json:"statistics"`
	Popularity      int64           `json:"popularity"`
	Trend           int64           `json:"trend"`
	TrendStatistics []TrendSnapshot `json:"trend_statistics,omitempty"`
}

// Playlist is the normalized domain shape for a channel playlist. VideoIDs
// accumulates the member ids by walking the playlist items endpoint.
type Playlist struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishedAt time.Time  `json:"published_at"`
	Thumbnails  Thumbnails `json:"thumbnails"`
	IsPrivate   bool       `json:"is_private"`
	VideoIDs    []string   `json:"video_ids"`
}
