package memory

import (
	"context"
	"sync"
)

type ClubAliasRepository struct {
	mu      sync.RWMutex
	targets map[string]string
}

func NewClubAliasRepository() *ClubAliasRepository {
	return &ClubAliasRepository{targets: make(map[string]string)}
}

func (r *ClubAliasRepository) Resolve(_ context.Context, alias string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nameKey, ok := r.targets[alias]
	return nameKey, ok, nil
}

func (r *ClubAliasRepository) Save(_ context.Context, alias, nameKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets[alias] = nameKey
	return nil
}

func (r *ClubAliasRepository) Repoint(_ context.Context, fromKey, toKey string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	moved := 0
	for alias, nameKey := range r.targets {
		if nameKey == fromKey {
			r.targets[alias] = toKey
			moved++
		}
	}
	return moved, nil
}
