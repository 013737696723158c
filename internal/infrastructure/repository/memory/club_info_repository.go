package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
)

type ClubInfoRepository struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[string]clubinfo.ClubInfo
	now    func() time.Time
}

func NewClubInfoRepository() *ClubInfoRepository {
	return &ClubInfoRepository{
		byKey: make(map[string]clubinfo.ClubInfo),
		now:   time.Now,
	}
}

func (r *ClubInfoRepository) GetByKey(_ context.Context, key string) (clubinfo.ClubInfo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byKey[key]
	return item, ok, nil
}

func (r *ClubInfoRepository) Insert(_ context.Context, item clubinfo.ClubInfo) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	if _, exists := r.byKey[key]; exists {
		return false, nil
	}

	r.nextID++
	now := r.now().UTC()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byKey[key] = item
	return true, nil
}

func (r *ClubInfoRepository) Upsert(_ context.Context, item clubinfo.ClubInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	now := r.now().UTC()
	if existing, ok := r.byKey[key]; ok {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		item.ID = r.nextID
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.byKey[key] = item
	return nil
}

func (r *ClubInfoRepository) Update(_ context.Context, key string, item clubinfo.ClubInfo) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byKey[key]
	if !ok {
		return false, nil
	}

	newKey := item.Key()
	if newKey != key {
		if _, taken := r.byKey[newKey]; taken {
			return false, fmt.Errorf("update club info %q: %w", key, clubinfo.ErrKeyTaken)
		}
	}

	existing.League = item.League
	existing.Name = item.Name
	existing.Venue = item.Venue
	existing.Capacity = item.Capacity
	existing.UpdatedAt = r.now().UTC()

	delete(r.byKey, key)
	r.byKey[newKey] = existing
	return true, nil
}
