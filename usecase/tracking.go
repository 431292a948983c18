package usecase

import (
	"sync"
	"time"

	"berta-backend/domain/model"
)

// Tracker accumulates request hits per resource type. It is owned by the
// cache use case; the tracking resource's refresh flushes and resets it
// atomically, so every hit lands in exactly one report.
type Tracker struct {
	mu          sync.Mutex
	windowStart time.Time
	hits        map[model.ResourceType]int64
}

func NewTracker() *Tracker {
	return &Tracker{
		windowStart: time.Now(),
		hits:        make(map[model.ResourceType]int64),
	}
}

// Record counts one request for the resource.
func (t *Tracker) Record(resource model.ResourceType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits[resource]++
}

// Flush returns the counts accumulated since the previous flush and starts a
// new window.
func (t *Tracker) Flush(now time.Time) *model.TrackingReport {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := &model.TrackingReport{
		WindowStart: t.windowStart,
		Hits:        make(map[string]int64, len(t.hits)),
	}
	for resource, count := range t.hits {
		report.Hits[string(resource)] = count
		report.Total += count
	}

	t.hits = make(map[model.ResourceType]int64)
	t.windowStart = now
	return report
}
