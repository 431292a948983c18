package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"berta-backend/domain/model"
	"berta-backend/domain/repository"
	"berta-backend/infrastructure/logger"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// ICacheUseCase defines the cache orchestration operations.
type ICacheUseCase interface {
	// Get returns the document for the resource, refreshing it first when it
	// is missing, stale, or forceRefresh is set.
	Get(ctx context.Context, resource model.ResourceType, forceRefresh bool) (*model.CacheDocument, error)
	// Sweep applies the staleness check once to every resource type.
	Sweep(ctx context.Context)
	// RunSweeper sweeps on a fixed interval until ctx is done.
	RunSweeper(ctx context.Context) error
	// Tracker exposes the request counter feeding the tracking resource.
	Tracker() *Tracker
}

// CacheUseCase orchestrates staleness checks and refreshes. Refreshes of the
// same resource type are collapsed into a single in-flight operation;
// different resource types refresh independently.
type CacheUseCase struct {
	youtubeRepo repository.IYouTube
	store       repository.ICacheStore
	trend       *TrendEngine
	tracker     *Tracker
	staleTime   time.Duration
	sweepEvery  time.Duration
	now         func() time.Time
	flight      singleflight.Group
	memo        *gocache.Cache
}

func NewCacheUseCase(
	youtubeRepo repository.IYouTube,
	store repository.ICacheStore,
	trend *TrendEngine,
	staleTime time.Duration,
	sweepEvery time.Duration,
) *CacheUseCase {
	return &CacheUseCase{
		youtubeRepo: youtubeRepo,
		store:       store,
		trend:       trend,
		tracker:     NewTracker(),
		staleTime:   staleTime,
		sweepEvery:  sweepEvery,
		now:         time.Now,
		memo:        gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// WithClock overrides the time source (fluent, for tests).
func (u *CacheUseCase) WithClock(now func() time.Time) *CacheUseCase {
	u.now = now
	return u
}

func (u *CacheUseCase) Tracker() *Tracker {
	return u.tracker
}

func (u *CacheUseCase) Get(ctx context.Context, resource model.ResourceType, forceRefresh bool) (*model.CacheDocument, error) {
	if !forceRefresh {
		doc, err := u.lookup(ctx, resource)
		if err == nil && !doc.IsStale(u.now(), u.staleTime) {
			return doc, nil
		}
		if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
			logger.GetLogger().WithField("resource", resource).WithField("error", err).Warn("Cache read failed, refreshing")
		}
	}

	result, err, _ := u.flight.Do(string(resource), func() (interface{}, error) {
		return u.refresh(ctx, resource)
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.CacheDocument), nil
}

// lookup serves reads from the in-process memo when possible, falling back
// to the store.
func (u *CacheUseCase) lookup(ctx context.Context, resource model.ResourceType) (*model.CacheDocument, error) {
	if cached, found := u.memo.Get(string(resource)); found {
		if doc, ok := cached.(*model.CacheDocument); ok {
			return doc, nil
		}
	}
	doc, err := u.store.Read(ctx, resource)
	if err != nil {
		return nil, err
	}
	u.memo.Set(string(resource), doc, gocache.DefaultExpiration)
	return doc, nil
}

// refresh runs one full fetch-parse-score-persist cycle. On failure the
// previous stored document stays authoritative; the memo is only updated
// after a successful write.
func (u *CacheUseCase) refresh(ctx context.Context, resource model.ResourceType) (*model.CacheDocument, error) {
	prev, err := u.store.Read(ctx, resource)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			logger.GetLogger().WithField("resource", resource).WithField("error", err).Warn("Previous document unreadable, starting from empty history")
		}
		prev = nil
	}

	doc, err := u.assemble(ctx, resource, prev)
	if err != nil {
		return nil, err
	}

	if err := u.store.Write(ctx, resource, doc); err != nil {
		return nil, fmt.Errorf("persist %s document: %w", resource, err)
	}
	u.memo.Set(string(resource), doc, gocache.DefaultExpiration)
	return doc, nil
}

func (u *CacheUseCase) assemble(ctx context.Context, resource model.ResourceType, prev *model.CacheDocument) (*model.CacheDocument, error) {
	switch resource {
	case model.ResourceVideo:
		videos, err := u.youtubeRepo.FetchChannelVideos(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch channel videos: %w", err)
		}
		now := u.now()
		return &model.CacheDocument{UpdatedAt: now, Videos: u.trend.MergeAndScore(videos, prev, now)}, nil

	case model.ResourcePlaylist:
		playlists, err := u.youtubeRepo.FetchChannelPlaylists(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch channel playlists: %w", err)
		}
		return &model.CacheDocument{UpdatedAt: u.now(), Playlists: playlists}, nil

	case model.ResourceExternalVideo:
		ids, err := u.externalVideoIDs(ctx)
		if err != nil {
			return nil, err
		}
		videos, err := u.youtubeRepo.FetchVideosByID(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("fetch external videos: %w", err)
		}
		now := u.now()
		return &model.CacheDocument{UpdatedAt: now, Videos: u.trend.MergeAndScore(videos, prev, now)}, nil

	case model.ResourceTracking:
		now := u.now()
		return &model.CacheDocument{UpdatedAt: now, Tracking: u.tracker.Flush(now)}, nil

	default:
		return nil, fmt.Errorf("unknown resource type %q", resource)
	}
}

// externalVideoIDs derives the ids of videos referenced by the channel's
// playlists that are not uploads of the channel itself. It relies on the
// video and playlist documents, refreshing them first if needed.
func (u *CacheUseCase) externalVideoIDs(ctx context.Context) ([]string, error) {
	videoDoc, err := u.Get(ctx, model.ResourceVideo, false)
	if err != nil {
		return nil, fmt.Errorf("load video document for external ids: %w", err)
	}
	playlistDoc, err := u.Get(ctx, model.ResourcePlaylist, false)
	if err != nil {
		return nil, fmt.Errorf("load playlist document for external ids: %w", err)
	}

	own := make(map[string]bool, len(videoDoc.Videos))
	for i := range videoDoc.Videos {
		own[videoDoc.Videos[i].ID] = true
	}

	seen := make(map[string]bool)
	var ids []string
	for _, playlist := range playlistDoc.Playlists {
		for _, id := range playlist.VideoIDs {
			if !own[id] && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func (u *CacheUseCase) Sweep(ctx context.Context) {
	for _, resource := range model.AllResourceTypes {
		if _, err := u.Get(ctx, resource, false); err != nil {
			logger.GetLogger().WithField("resource", resource).WithField("error", err).Error("Scheduled refresh failed")
		}
	}
}

func (u *CacheUseCase) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(u.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			u.Sweep(ctx)
		}
	}
}
