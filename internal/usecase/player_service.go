package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const kindPlayerStats = "player_stats"

type PlayerService struct {
	clubs      *ClubService
	playerRepo playerstats.Repository
	provider   SportsProvider
	logger     *logging.Logger

	players *CacheThrough[[]playerstats.PlayerStats]
}

func NewPlayerService(
	clubs *ClubService,
	playerRepo playerstats.Repository,
	provider SportsProvider,
	locker KeyLocker,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	s := &PlayerService{
		clubs:      clubs,
		playerRepo: playerRepo,
		provider:   provider,
		logger:     logger,
	}

	s.players = newCacheThrough(cacheThroughSource[[]playerstats.PlayerStats]{
		Kind: kindPlayerStats,
		Lookup: func(ctx context.Context, key string) ([]playerstats.PlayerStats, bool, error) {
			items, err := playerRepo.ListByTeamKey(ctx, key)
			return items, len(items) > 0, err
		},
		Fetch: s.fetchPlayers,
		Insert: func(ctx context.Context, items []playerstats.PlayerStats) error {
			_, err := playerRepo.InsertMany(ctx, items)
			return err
		},
		ReadBack: func(ctx context.Context, items []playerstats.PlayerStats) ([]playerstats.PlayerStats, bool, error) {
			if len(items) == 0 {
				return nil, false, nil
			}
			stored, err := playerRepo.ListByTeamKey(ctx, items[0].TeamKey())
			return stored, len(stored) > 0, err
		},
		RecordKey: func(items []playerstats.PlayerStats) string {
			if len(items) == 0 {
				return ""
			}
			return items[0].TeamKey()
		},
	}, clubs.aliases, locker, logger)

	return s
}

// ListPlayers returns the stored player lines of a club, fetching the whole
// squad from upstream on first request.
func (s *PlayerService) ListPlayers(ctx context.Context, club string) ([]playerstats.PlayerStats, error) {
	return s.players.FetchOrPopulate(ctx, club)
}

func (s *PlayerService) fetchPlayers(ctx context.Context, name string) ([]playerstats.PlayerStats, error) {
	club, err := s.clubs.GetClub(ctx, name)
	if err != nil {
		return nil, err
	}

	items, err := s.provider.FetchClubPlayers(ctx, club.ClubID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no players for club %q", ErrNotFound, club.Name)
	}
	for i := range items {
		items[i].TeamName = club.Name
	}
	return items, nil
}

// DeletePlayer removes one stored player line matched by first name.
func (s *PlayerService) DeletePlayer(ctx context.Context, firstName string) (playerstats.PlayerStats, error) {
	key := naturalkey.Key(firstName)
	if key == "" {
		return playerstats.PlayerStats{}, fmt.Errorf("%w: player is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer", attribute.String("record.key", key))
	defer span.End()

	deleted, found, err := s.playerRepo.DeleteOneByFirstNameKey(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return playerstats.PlayerStats{}, fmt.Errorf("delete player %q: %w", key, err)
	}
	if !found {
		return playerstats.PlayerStats{}, fmt.Errorf("%w: player %q", ErrNotFound, firstName)
	}

	s.logger.InfoContext(ctx, "player deleted", "player", key, "team", deleted.TeamName, "player_id", deleted.PlayerID)
	return deleted, nil
}
