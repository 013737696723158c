package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
)

type ClubStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[string]clubstats.Overview
	now    func() time.Time
}

func NewClubStatsRepository() *ClubStatsRepository {
	return &ClubStatsRepository{
		byKey: make(map[string]clubstats.Overview),
		now:   time.Now,
	}
}

func (r *ClubStatsRepository) GetByKey(_ context.Context, key string) (clubstats.Overview, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byKey[key]
	return item, ok, nil
}

func (r *ClubStatsRepository) Insert(_ context.Context, item clubstats.Overview) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	if _, exists := r.byKey[key]; exists {
		return false, nil
	}

	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = r.now().UTC()
	r.byKey[key] = item
	return true, nil
}
