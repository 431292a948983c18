package youtube

import (
	"regexp"
	"strconv"
	"time"

	"berta-backend/domain/model"

	"google.golang.org/api/youtube/v3"
)

// shortFormMaxSeconds is the duration at or below which a video counts as a
// short and is excluded from the result set.
const shortFormMaxSeconds = 60

var durationPattern = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// parseISO8601Duration decodes the API's duration syntax into seconds.
// Missing components default to zero; malformed strings yield zero. Only the
// time part is decoded: a day-carrying duration like P1DT2H has no literal PT
// and yields zero, so videos over 24h fall to the short-form filter.
func parseISO8601Duration(raw string) int64 {
	match := durationPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	hours := parseDurationComponent(match[1])
	minutes := parseDurationComponent(match[2])
	seconds := parseDurationComponent(match[3])
	return hours*3600 + minutes*60 + seconds
}

func parseDurationComponent(component string) int64 {
	if component == "" {
		return 0
	}
	// strip the trailing H/M/S designator
	n, err := strconv.ParseInt(component[:len(component)-1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// convertVideo normalizes an API video record. Absent fields map to zero
// values; parsing never fails.
func convertVideo(video *youtube.Video) model.Video {
	if video == nil {
		return model.Video{}
	}
	out := model.Video{ID: video.Id}

	if video.Snippet != nil {
		out.Title = video.Snippet.Title
		out.Description = video.Snippet.Description
		out.Tags = video.Snippet.Tags
		out.PublishedAt, _ = time.Parse(time.RFC3339, video.Snippet.PublishedAt)
		out.Thumbnails = convertThumbnails(video.Snippet.Thumbnails)
	}
	if video.Statistics != nil {
		out.Statistics = model.VideoStatistics{
			ViewCount: strconv.FormatUint(video.Statistics.ViewCount, 10),
			LikeCount: strconv.FormatUint(video.Statistics.LikeCount, 10),
		}
	}
	if video.ContentDetails != nil {
		out.Duration = parseISO8601Duration(video.ContentDetails.Duration)
	}
	return out
}

// convertPlaylist normalizes an API playlist record. Anything not publicly
// visible is flagged private.
func convertPlaylist(playlist *youtube.Playlist) model.Playlist {
	if playlist == nil {
		return model.Playlist{}
	}
	out := model.Playlist{ID: playlist.Id, IsPrivate: true}

	if playlist.Snippet != nil {
		out.Title = playlist.Snippet.Title
		out.Description = playlist.Snippet.Description
		out.PublishedAt, _ = time.Parse(time.RFC3339, playlist.Snippet.PublishedAt)
		out.Thumbnails = convertThumbnails(playlist.Snippet.Thumbnails)
	}
	if playlist.Status != nil {
		out.IsPrivate = playlist.Status.PrivacyStatus != "public"
	}
	return out
}

func convertThumbnails(details *youtube.ThumbnailDetails) model.Thumbnails {
	out := model.Thumbnails{}
	if details == nil {
		return out
	}
	if details.Default != nil {
		out.Default = model.Thumbnail{URL: details.Default.Url, Width: details.Default.Width, Height: details.Default.Height}
	}
	if details.Medium != nil {
		out.Medium = model.Thumbnail{URL: details.Medium.Url, Width: details.Medium.Width, Height: details.Medium.Height}
	}
	if details.High != nil {
		out.High = model.Thumbnail{URL: details.High.Url, Width: details.High.Width, Height: details.High.Height}
	}
	return out
}

// removeShorts filters out short-form items. It runs once over the full
// fetched batch, after duration parsing.
func removeShorts(videos []model.Video) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.Duration > shortFormMaxSeconds {
			out = append(out, v)
		}
	}
	return out
}
