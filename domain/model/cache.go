package model

import "time"

// ResourceType identifies one cached document.
type ResourceType string

const (
	ResourceVideo         ResourceType = "video"
	ResourcePlaylist      ResourceType = "playlist"
	ResourceExternalVideo ResourceType = "external-video"
	ResourceTracking      ResourceType = "tracking"
)

// AllResourceTypes lists every resource the cache manages, in sweep order.
var AllResourceTypes = []ResourceType{
	ResourceVideo,
	ResourcePlaylist,
	ResourceExternalVideo,
	ResourceTracking,
}

// ParseResourceType validates a request-supplied resource name.
func ParseResourceType(raw string) (ResourceType, bool) {
	for _, rt := range AllResourceTypes {
		if string(rt) == raw {
			return rt, true
		}
	}
	return "", false
}

// TrackingReport is the payload of the tracking resource: request counts per
// resource type accumulated since the previous tracking refresh.
type TrackingReport struct {
	WindowStart time.Time        `json:"window_start"`
	Hits        map[string]int64 `json:"hits"`
	Total       int64            `json:"total"`
}

// CacheDocument is the unit of persistence, one per resource type. Exactly
// one of Videos, Playlists or Tracking is populated, matching the resource.
//
// UpdatedAt is the moment the fetch completed, never the write time;
// staleness is always judged against it.
type CacheDocument struct {
	UpdatedAt time.Time       `json:"updatedAt"`
	Videos    []Video         `json:"videos,omitempty"`
	Playlists []Playlist      `json:"playlists,omitempty"`
	Tracking  *TrackingReport `json:"tracking,omitempty"`
}

// IsStale reports whether the document needs recomputation. A zero UpdatedAt
// (missing or unparsable timestamp) is treated as infinitely stale.
func (d *CacheDocument) IsStale(now time.Time, staleTime time.Duration) bool {
	if d == nil || d.UpdatedAt.IsZero() {
		return true
	}
	return now.After(d.UpdatedAt.Add(staleTime))
}

// FindVideo returns the video with the given id, or nil. Used to carry
// snapshot history across refreshes.
func (d *CacheDocument) FindVideo(id string) *Video {
	if d == nil {
		return nil
	}
	for i := range d.Videos {
		if d.Videos[i].ID == id {
			return &d.Videos[i]
		}
	}
	return nil
}
