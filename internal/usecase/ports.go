package usecase

import (
	"context"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
)

// SportsProvider fetches normalized records from the upstream sports API.
// Implementations mark failures with ErrNotFound, ErrUpstream,
// ErrMalformedUpstreamResponse or ErrDependencyUnavailable.
type SportsProvider interface {
	FetchClubInfo(ctx context.Context, name string) (clubinfo.ClubInfo, error)
	FetchClubStats(ctx context.Context, clubID int64) (clubstats.Overview, error)
	FetchClubPlayers(ctx context.Context, clubID int64) ([]playerstats.PlayerStats, error)
}

// KeyLocker serializes cache-miss population per key. Acquire blocks until the
// lock is held or ctx is done; failures wrap ErrDependencyUnavailable.
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
