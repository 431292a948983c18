package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"berta-backend/domain/model"
	"berta-backend/domain/repository"
	"berta-backend/infrastructure/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrMissingItems marks a response whose items field is absent; the whole
// aggregation aborts, nothing partial is handed back.
var ErrMissingItems = errors.New("api response missing items")

const retryAttempts = 3

// Config represents the YouTube API client configuration.
type Config struct {
	APIKey         string
	ChannelID      string
	MaxResults     int64
	RequestTimeout time.Duration
}

// Client wraps the YouTube Data API in API-key mode and aggregates paginated
// listings exhaustively. It holds no mutable state beyond the service handle.
type Client struct {
	service    *youtube.Service
	channelID  string
	maxResults int64
	timeout    time.Duration
}

// NewYouTubeClient creates a new YouTube API client.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IYouTube, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	maxResults := config.MaxResults
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 50
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		service:    service,
		channelID:  config.ChannelID,
		maxResults: maxResults,
		timeout:    timeout,
	}, nil
}

// FetchChannelVideos walks the channel's video search to exhaustion,
// resolves full records in batches and normalizes them, dropping shorts.
func (c *Client) FetchChannelVideos(ctx context.Context) ([]model.Video, error) {
	ids, err := fetchAllPages(ctx, c.searchPage("video"))
	if err != nil {
		return nil, fmt.Errorf("search channel videos: %w", err)
	}
	return c.FetchVideosByID(ctx, ids)
}

// FetchVideosByID resolves full video records for an id list in page-size
// chunks, normalizes them and drops shorts.
func (c *Client) FetchVideosByID(ctx context.Context, ids []string) ([]model.Video, error) {
	videos := make([]model.Video, 0, len(ids))
	for _, chunk := range chunkIDs(ids, int(c.maxResults)) {
		var resp *youtube.VideoListResponse
		err := c.withRetry(ctx, func(callCtx context.Context) error {
			var callErr error
			resp, callErr = c.service.Videos.
				List([]string{"snippet", "statistics", "contentDetails"}).
				Id(strings.Join(chunk, ",")).
				Context(callCtx).
				Do()
			return callErr
		})
		if err != nil {
			return nil, fmt.Errorf("fetch video details: %w", err)
		}
		if resp.Items == nil {
			return nil, fmt.Errorf("fetch video details: %w", ErrMissingItems)
		}
		for _, item := range resp.Items {
			videos = append(videos, convertVideo(item))
		}
	}
	return removeShorts(videos), nil
}

// FetchChannelPlaylists walks the channel's playlist search, resolves
// playlist records in batches and collects member video ids per playlist.
func (c *Client) FetchChannelPlaylists(ctx context.Context) ([]model.Playlist, error) {
	ids, err := fetchAllPages(ctx, c.searchPage("playlist"))
	if err != nil {
		return nil, fmt.Errorf("search channel playlists: %w", err)
	}

	playlists := make([]model.Playlist, 0, len(ids))
	for _, chunk := range chunkIDs(ids, int(c.maxResults)) {
		var resp *youtube.PlaylistListResponse
		err := c.withRetry(ctx, func(callCtx context.Context) error {
			var callErr error
			resp, callErr = c.service.Playlists.
				List([]string{"snippet", "status"}).
				Id(strings.Join(chunk, ",")).
				MaxResults(c.maxResults).
				Context(callCtx).
				Do()
			return callErr
		})
		if err != nil {
			return nil, fmt.Errorf("fetch playlist details: %w", err)
		}
		if resp.Items == nil {
			return nil, fmt.Errorf("fetch playlist details: %w", ErrMissingItems)
		}
		for _, item := range resp.Items {
			playlist := convertPlaylist(item)
			playlist.VideoIDs, err = c.playlistItemIDs(ctx, playlist.ID)
			if err != nil {
				return nil, fmt.Errorf("fetch items of playlist %s: %w", playlist.ID, err)
			}
			playlists = append(playlists, playlist)
		}
	}
	return playlists, nil
}

// searchPage returns a page fetcher over the channel search endpoint for one
// result type.
func (c *Client) searchPage(resourceType string) func(context.Context, string) (page[string], error) {
	return func(ctx context.Context, pageToken string) (page[string], error) {
		var resp *youtube.SearchListResponse
		err := c.withRetry(ctx, func(callCtx context.Context) error {
			call := c.service.Search.
				List([]string{"id"}).
				ChannelId(c.channelID).
				Type(resourceType).
				MaxResults(c.maxResults).
				Context(callCtx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var callErr error
			resp, callErr = call.Do()
			return callErr
		})
		if err != nil {
			return page[string]{}, err
		}
		if resp.Items == nil {
			return page[string]{}, ErrMissingItems
		}

		p := page[string]{nextPageToken: resp.NextPageToken}
		if resp.PageInfo != nil {
			p.totalResults = resp.PageInfo.TotalResults
		}
		for _, item := range resp.Items {
			if item.Id == nil {
				continue
			}
			switch resourceType {
			case "video":
				if item.Id.VideoId != "" {
					p.items = append(p.items, item.Id.VideoId)
				}
			case "playlist":
				if item.Id.PlaylistId != "" {
					p.items = append(p.items, item.Id.PlaylistId)
				}
			}
		}
		return p, nil
	}
}

// playlistItemIDs walks one playlist's items endpoint and returns the member
// video ids in playlist order.
func (c *Client) playlistItemIDs(ctx context.Context, playlistID string) ([]string, error) {
	return fetchAllPages(ctx, func(ctx context.Context, pageToken string) (page[string], error) {
		var resp *youtube.PlaylistItemListResponse
		err := c.withRetry(ctx, func(callCtx context.Context) error {
			call := c.service.PlaylistItems.
				List([]string{"snippet"}).
				PlaylistId(playlistID).
				MaxResults(c.maxResults).
				Context(callCtx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var callErr error
			resp, callErr = call.Do()
			return callErr
		})
		if err != nil {
			return page[string]{}, err
		}
		if resp.Items == nil {
			return page[string]{}, ErrMissingItems
		}

		p := page[string]{nextPageToken: resp.NextPageToken}
		if resp.PageInfo != nil {
			p.totalResults = resp.PageInfo.TotalResults
		}
		for _, item := range resp.Items {
			if item.Snippet != nil && item.Snippet.ResourceId != nil && item.Snippet.ResourceId.VideoId != "" {
				p.items = append(p.items, item.Snippet.ResourceId.VideoId)
			}
		}
		return p, nil
	})
}

// withRetry runs one API call with a per-call timeout and bounded
// exponential backoff on transport errors.
func (c *Client) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := 500 * time.Millisecond
	var err error
	for attempt := 1; ; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err = op(callCtx)
		cancel()
		if err == nil || attempt >= retryAttempts {
			return err
		}
		logger.GetLogger().WithField("error", err).WithField("attempt", attempt).Warn("API call failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
