package cache

import (
	"context"
	"errors"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubalias"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	basecache "github.com/riskibarqy/seriea-gateway/internal/platform/cache"
)

// errNotStored keeps absent records out of the cache. A miss must reach the
// store again so a later populate is visible immediately.
var errNotStored = errors.New("record not stored")

func lookup[T any](ctx context.Context, store *basecache.Store, key string, get func(context.Context) (T, bool, error)) (T, bool, error) {
	item, err := basecache.Load(ctx, store, key, func(ctx context.Context) (T, error) {
		item, exists, err := get(ctx)
		if err != nil {
			return item, err
		}
		if !exists {
			return item, errNotStored
		}
		return item, nil
	})
	if errors.Is(err, errNotStored) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		var zero T
		return zero, false, err
	}
	return item, true, nil
}

func clubKey(key string) string    { return "club:" + key }
func statsKey(key string) string   { return "stats:" + key }
func playersKey(key string) string { return "players:team:" + key }

const aliasPrefix = "alias:"

func aliasKey(key string) string { return aliasPrefix + key }

type ClubInfoRepository struct {
	next  clubinfo.Repository
	cache *basecache.Store
}

func NewClubInfoRepository(next clubinfo.Repository, cache *basecache.Store) *ClubInfoRepository {
	return &ClubInfoRepository{next: next, cache: cache}
}

func (r *ClubInfoRepository) GetByKey(ctx context.Context, key string) (clubinfo.ClubInfo, bool, error) {
	return lookup(ctx, r.cache, clubKey(key), func(ctx context.Context) (clubinfo.ClubInfo, bool, error) {
		return r.next.GetByKey(ctx, key)
	})
}

func (r *ClubInfoRepository) Insert(ctx context.Context, item clubinfo.ClubInfo) (bool, error) {
	inserted, err := r.next.Insert(ctx, item)
	if err != nil {
		return false, err
	}
	if inserted {
		r.cache.Delete(ctx, clubKey(item.Key()))
	}
	return inserted, nil
}

func (r *ClubInfoRepository) Upsert(ctx context.Context, item clubinfo.ClubInfo) error {
	err := r.next.Upsert(ctx, item)
	r.cache.Delete(ctx, clubKey(item.Key()))
	return err
}

func (r *ClubInfoRepository) Update(ctx context.Context, key string, item clubinfo.ClubInfo) (bool, error) {
	updated, err := r.next.Update(ctx, key, item)
	r.cache.Delete(ctx, clubKey(key), clubKey(item.Key()))
	return updated, err
}

type ClubStatsRepository struct {
	next  clubstats.Repository
	cache *basecache.Store
}

func NewClubStatsRepository(next clubstats.Repository, cache *basecache.Store) *ClubStatsRepository {
	return &ClubStatsRepository{next: next, cache: cache}
}

func (r *ClubStatsRepository) GetByKey(ctx context.Context, key string) (clubstats.Overview, bool, error) {
	return lookup(ctx, r.cache, statsKey(key), func(ctx context.Context) (clubstats.Overview, bool, error) {
		return r.next.GetByKey(ctx, key)
	})
}

func (r *ClubStatsRepository) Insert(ctx context.Context, item clubstats.Overview) (bool, error) {
	inserted, err := r.next.Insert(ctx, item)
	if err != nil {
		return false, err
	}
	if inserted {
		r.cache.Delete(ctx, statsKey(item.Key()))
	}
	return inserted, nil
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListByTeamKey(ctx context.Context, teamKey string) ([]playerstats.PlayerStats, error) {
	items, _, err := lookup(ctx, r.cache, playersKey(teamKey), func(ctx context.Context) ([]playerstats.PlayerStats, bool, error) {
		items, err := r.next.ListByTeamKey(ctx, teamKey)
		if err != nil {
			return nil, false, err
		}
		return append([]playerstats.PlayerStats(nil), items...), len(items) > 0, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]playerstats.PlayerStats(nil), items...), nil
}

func (r *PlayerStatsRepository) InsertMany(ctx context.Context, items []playerstats.PlayerStats) (int, error) {
	written, err := r.next.InsertMany(ctx, items)

	keys := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := playersKey(item.TeamKey())
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	r.cache.Delete(ctx, keys...)

	return written, err
}

func (r *PlayerStatsRepository) DeleteOneByFirstNameKey(ctx context.Context, key string) (playerstats.PlayerStats, bool, error) {
	deleted, ok, err := r.next.DeleteOneByFirstNameKey(ctx, key)
	if err != nil {
		return playerstats.PlayerStats{}, false, err
	}
	if ok {
		r.cache.Delete(ctx, playersKey(deleted.TeamKey()))
	}
	return deleted, ok, nil
}

type ClubAliasRepository struct {
	next  clubalias.Repository
	cache *basecache.Store
}

func NewClubAliasRepository(next clubalias.Repository, cache *basecache.Store) *ClubAliasRepository {
	return &ClubAliasRepository{next: next, cache: cache}
}

func (r *ClubAliasRepository) Resolve(ctx context.Context, alias string) (string, bool, error) {
	return lookup(ctx, r.cache, aliasKey(alias), func(ctx context.Context) (string, bool, error) {
		return r.next.Resolve(ctx, alias)
	})
}

func (r *ClubAliasRepository) Save(ctx context.Context, alias, nameKey string) error {
	err := r.next.Save(ctx, alias, nameKey)
	r.cache.Delete(ctx, aliasKey(alias))
	return err
}

// Repoint drops every cached alias since the moved ones are not known here.
func (r *ClubAliasRepository) Repoint(ctx context.Context, fromKey, toKey string) (int, error) {
	moved, err := r.next.Repoint(ctx, fromKey, toKey)
	if moved > 0 || err != nil {
		r.cache.DeletePrefix(ctx, aliasPrefix)
	}
	return moved, err
}
