package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
)

// PlayerStatsRepository keeps rows in insertion order, which is also ID order.
type PlayerStatsRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []playerstats.PlayerStats
	now    func() time.Time
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{now: time.Now}
}

func (r *PlayerStatsRepository) ListByTeamKey(_ context.Context, teamKey string) ([]playerstats.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.PlayerStats, 0)
	for _, row := range r.rows {
		if row.TeamKey() == teamKey {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *PlayerStatsRepository) InsertMany(_ context.Context, items []playerstats.PlayerStats) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type rowKey struct {
		team     string
		playerID int64
	}
	seen := make(map[rowKey]struct{}, len(r.rows)+len(items))
	for _, row := range r.rows {
		seen[rowKey{row.TeamKey(), row.PlayerID}] = struct{}{}
	}

	now := r.now().UTC()
	written := 0
	for _, item := range items {
		k := rowKey{item.TeamKey(), item.PlayerID}
		if _, exists := seen[k]; exists {
			continue
		}
		seen[k] = struct{}{}

		r.nextID++
		item.ID = r.nextID
		item.CreatedAt = now
		r.rows = append(r.rows, item)
		written++
	}
	return written, nil
}

func (r *PlayerStatsRepository) DeleteOneByFirstNameKey(_ context.Context, key string) (playerstats.PlayerStats, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, row := range r.rows {
		if row.FirstNameKey() != key {
			continue
		}
		r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
		return row, true, nil
	}
	return playerstats.PlayerStats{}, false, nil
}
