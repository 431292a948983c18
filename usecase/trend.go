package usecase

import (
	"math"
	"sort"
	"time"

	"berta-backend/domain/model"
)

// TrendEngine maintains per-video snapshot histories across refreshes and
// derives the trend value from them.
//
// The trend measures acceleration of popularity growth rather than raw
// growth: per-mille deltas between the current popularity and snapshots one
// lookback period apart are split into the most recent delta and the average
// of the older ones, so a one-off spike dampens out. The lookback stride is
// snapshot-count-based, not wall-clock-based.
type TrendEngine struct {
	period     int
	historyCap int
}

func NewTrendEngine(period, historyCap int) *TrendEngine {
	if period <= 0 {
		period = 14
	}
	if historyCap < period {
		historyCap = 3 * period
	}
	return &TrendEngine{period: period, historyCap: historyCap}
}

// MergeAndScore carries each video's snapshot history over from the previous
// document (absent means cold start with empty history), prepends the
// current counters, truncates to the cap, and computes popularity and trend.
// prev may be nil.
func (e *TrendEngine) MergeAndScore(videos []model.Video, prev *model.CacheDocument, now time.Time) []model.Video {
	likeScale := LikeScaleFactor(videos)

	out := make([]model.Video, len(videos))
	for i, video := range videos {
		var history []model.TrendSnapshot
		if prevVideo := prev.FindVideo(video.ID); prevVideo != nil && len(prevVideo.TrendStatistics) > 0 {
			history = make([]model.TrendSnapshot, len(prevVideo.TrendStatistics))
			copy(history, prevVideo.TrendStatistics)
			sort.SliceStable(history, func(a, b int) bool {
				return history[a].Timestamp.After(history[b].Timestamp)
			})
		}
		history = append([]model.TrendSnapshot{{Timestamp: now, Statistics: video.Statistics}}, history...)
		if len(history) > e.historyCap {
			history = history[:e.historyCap]
		}

		video.TrendStatistics = history
		video.Popularity = PopularityScore(video.Statistics, likeScale)
		video.Trend = e.trendValue(history, likeScale)
		out[i] = video
	}
	return out
}

// trendValue walks the newest-first history at period stride and compares
// the current popularity against each period-back snapshot, per mille of the
// earlier value. Zero earlier popularity contributes a zero delta instead of
// dividing. Fewer than two full periods of history yield zero.
func (e *TrendEngine) trendValue(history []model.TrendSnapshot, likeScale float64) int64 {
	if len(history) == 0 {
		return 0
	}
	current := float64(PopularityScore(history[0].Statistics, likeScale))

	var deltas []float64
	for idx := e.period; idx < len(history); idx += e.period {
		earlier := float64(PopularityScore(history[idx].Statistics, likeScale))
		if earlier == 0 {
			deltas = append(deltas, 0)
			continue
		}
		deltas = append(deltas, (current-earlier)/earlier*1000)
	}
	if len(deltas) < 2 {
		return 0
	}

	mostRecent := deltas[0]
	var olderSum float64
	for _, d := range deltas[1:] {
		olderSum += d
	}
	olderAvg := olderSum / float64(len(deltas)-1)

	return int64(math.Floor(1000 + mostRecent - olderAvg))
}
