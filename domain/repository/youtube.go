package repository

import (
	"context"

	"berta-backend/domain/model"
)

// IYouTube defines the outbound API surface the cache refresh needs. Every
// method aggregates all pages before returning; a transport failure or a
// malformed page aborts the whole aggregation, no partial result is handed
// back.
type IYouTube interface {
	// FetchChannelVideos walks the channel's video search exhaustively,
	// resolves full records in batches, normalizes them and drops shorts.
	FetchChannelVideos(ctx context.Context) ([]model.Video, error)

	// FetchChannelPlaylists walks the channel's playlist search, resolves
	// playlist records in batches and collects member video ids per playlist.
	FetchChannelPlaylists(ctx context.Context) ([]model.Playlist, error)

	// FetchVideosByID resolves full records for an arbitrary id list in
	// page-size chunks, normalizes them and drops shorts.
	FetchVideosByID(ctx context.Context, ids []string) ([]model.Video, error)
}
