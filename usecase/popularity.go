package usecase

import (
	"math"

	"berta-backend/domain/model"
)

const (
	viewCountWeight = 0.7
	likeCountWeight = 0.3
)

// LikeScaleFactor rescales like counts onto the view-count scale for one
// refresh batch: total views over total likes across the batch, falling back
// to divide-by-one when the batch has no likes. Recomputed on every refresh,
// never persisted.
func LikeScaleFactor(videos []model.Video) float64 {
	var totalViews, totalLikes int64
	for i := range videos {
		totalViews += videos[i].Statistics.Views()
		totalLikes += videos[i].Statistics.Likes()
	}
	if totalLikes == 0 {
		totalLikes = 1
	}
	return float64(totalViews) / float64(totalLikes)
}

// PopularityScore blends the two raw counters into a single non-negative
// integer. Absent or unparsable counters count as zero.
func PopularityScore(stats model.VideoStatistics, likeScale float64) int64 {
	viewTerm := float64(stats.Views()) * viewCountWeight
	likeTerm := float64(stats.Likes()) * likeCountWeight * likeScale
	return int64(math.Floor(viewTerm + likeTerm))
}
