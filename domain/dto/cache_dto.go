package dto

import (
	"time"

	"berta-backend/domain/model"
)

// ClientVideo is the presentation shape of a video: identical to the domain
// video minus the snapshot history, which is internal state.
type ClientVideo struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	PublishedAt time.Time             `json:"published_at"`
	Thumbnails  model.Thumbnails      `json:"thumbnails"`
	Tags        []string              `json:"tags,omitempty"`
	Duration    int64                 `json:"duration"`
	Statistics  model.VideoStatistics `json:"statistics"`
	Popularity  int64                 `json:"popularity"`
	Trend       int64                 `json:"trend"`
}

// ClientDocument is what non-raw requests receive.
type ClientDocument struct {
	UpdatedAt time.Time             `json:"updatedAt"`
	Videos    []ClientVideo         `json:"videos,omitempty"`
	Playlists []model.Playlist      `json:"playlists,omitempty"`
	Tracking  *model.TrackingReport `json:"tracking,omitempty"`
}

// NewClientDocument strips internal-only fields from a cache document.
func NewClientDocument(doc *model.CacheDocument) *ClientDocument {
	if doc == nil {
		return nil
	}
	out := &ClientDocument{
		UpdatedAt: doc.UpdatedAt,
		Playlists: doc.Playlists,
		Tracking:  doc.Tracking,
	}
	if doc.Videos != nil {
		out.Videos = make([]ClientVideo, 0, len(doc.Videos))
		for _, v := range doc.Videos {
			out.Videos = append(out.Videos, ClientVideo{
				ID:          v.ID,
				Title:       v.Title,
				Description: v.Description,
				PublishedAt: v.PublishedAt,
				Thumbnails:  v.Thumbnails,
				Tags:        v.Tags,
				Duration:    v.Duration,
				Statistics:  v.Statistics,
				Popularity:  v.Popularity,
				Trend:       v.Trend,
			})
		}
	}
	return out
}
