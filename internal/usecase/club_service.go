package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubalias"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/naturalkey"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	kindClubInfo  = "club_info"
	kindClubStats = "club_stats"
)

type ClubService struct {
	clubRepo  clubinfo.Repository
	statsRepo clubstats.Repository
	aliases   clubalias.Repository
	provider  SportsProvider
	locker    KeyLocker
	logger    *logging.Logger

	clubs *CacheThrough[clubinfo.ClubInfo]
	stats *CacheThrough[clubstats.Overview]
}

func NewClubService(
	clubRepo clubinfo.Repository,
	statsRepo clubstats.Repository,
	aliases clubalias.Repository,
	provider SportsProvider,
	locker KeyLocker,
	logger *logging.Logger,
) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}
	if aliases == nil {
		aliases = noAliases{}
	}

	s := &ClubService{
		clubRepo:  clubRepo,
		statsRepo: statsRepo,
		aliases:   aliases,
		provider:  provider,
		locker:    locker,
		logger:    logger,
	}

	s.clubs = newCacheThrough(cacheThroughSource[clubinfo.ClubInfo]{
		Kind:   kindClubInfo,
		Lookup: clubRepo.GetByKey,
		Fetch:  provider.FetchClubInfo,
		Insert: func(ctx context.Context, item clubinfo.ClubInfo) error {
			_, err := clubRepo.Insert(ctx, item)
			return err
		},
		ReadBack: func(ctx context.Context, item clubinfo.ClubInfo) (clubinfo.ClubInfo, bool, error) {
			return clubRepo.GetByKey(ctx, item.Key())
		},
		RecordKey: clubinfo.ClubInfo.Key,
	}, aliases, locker, logger)

	s.stats = newCacheThrough(cacheThroughSource[clubstats.Overview]{
		Kind:   kindClubStats,
		Lookup: statsRepo.GetByKey,
		Fetch:  s.fetchClubStats,
		Insert: func(ctx context.Context, item clubstats.Overview) error {
			_, err := statsRepo.Insert(ctx, item)
			return err
		},
		ReadBack: func(ctx context.Context, item clubstats.Overview) (clubstats.Overview, bool, error) {
			return statsRepo.GetByKey(ctx, item.Key())
		},
		RecordKey: clubstats.Overview.Key,
	}, aliases, locker, logger)

	return s
}

// GetClub returns the stored club, fetching it from upstream on first request.
func (s *ClubService) GetClub(ctx context.Context, club string) (clubinfo.ClubInfo, error) {
	return s.clubs.FetchOrPopulate(ctx, club)
}

func (s *ClubService) GetClubStats(ctx context.Context, club string) (clubstats.Overview, error) {
	return s.stats.FetchOrPopulate(ctx, club)
}

// fetchClubStats resolves the upstream team id through the stored club so the
// stats record is keyed by the same name.
func (s *ClubService) fetchClubStats(ctx context.Context, name string) (clubstats.Overview, error) {
	club, err := s.GetClub(ctx, name)
	if err != nil {
		return clubstats.Overview{}, err
	}

	overview, err := s.provider.FetchClubStats(ctx, club.ClubID)
	if err != nil {
		return clubstats.Overview{}, err
	}
	overview.Name = club.Name
	if overview.Country == "" {
		overview.Country = club.Country
	}
	return overview, nil
}

// RefreshClub fetches the club from upstream and replaces the stored copy.
func (s *ClubService) RefreshClub(ctx context.Context, club string) (clubinfo.ClubInfo, error) {
	key := naturalkey.Key(club)
	if key == "" {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.RefreshClub", attribute.String("record.key", key))
	defer span.End()

	release, err := s.locker.Acquire(ctx, kindClubInfo+":"+key)
	if err != nil {
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("acquire club lock: %w", err)
	}
	defer release()

	fetched, err := s.provider.FetchClubInfo(ctx, naturalkey.Display(club))
	if err != nil {
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("fetch club %q: %w", club, err)
	}
	if err := s.clubRepo.Upsert(ctx, fetched); err != nil {
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("upsert club %q: %w", fetched.Name, err)
	}

	stored, found, err := s.clubRepo.GetByKey(ctx, fetched.Key())
	if err != nil {
		return clubinfo.ClubInfo{}, fmt.Errorf("read back club %q: %w", fetched.Name, err)
	}
	if !found {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q missing after upsert", ErrStore, fetched.Name)
	}
	if storedKey := stored.Key(); storedKey != key {
		if err := s.aliases.Save(ctx, key, storedKey); err != nil {
			s.logger.WarnContext(ctx, "save club alias failed", "key", key, "record_key", storedKey, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "club refreshed", "club", stored.Name, "club_id", stored.ClubID)
	return stored, nil
}

// UpdateClub applies a partial update to a stored club. It never creates one.
func (s *ClubService) UpdateClub(ctx context.Context, club string, update clubinfo.Update) (clubinfo.ClubInfo, error) {
	key := naturalkey.Key(club)
	if key == "" {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club is required", ErrInvalidInput)
	}
	if update.IsEmpty() {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if update.Name != nil {
		trimmed := strings.Join(strings.Fields(*update.Name), " ")
		update.Name = &trimmed
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.UpdateClub", attribute.String("record.key", key))
	defer span.End()

	target, aliased, err := s.aliases.Resolve(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("resolve club alias %q: %w", key, err)
	}
	if aliased {
		key = target
	}

	existing, found, err := s.clubRepo.GetByKey(ctx, key)
	if err != nil {
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("get club %q: %w", key, err)
	}
	if !found {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q", ErrNotFound, club)
	}

	updated := existing.Apply(update)
	if err := updated.Validate(); err != nil {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newKey := updated.Key()
	if newKey != key {
		_, taken, err := s.clubRepo.GetByKey(ctx, newKey)
		if err != nil {
			return clubinfo.ClubInfo{}, fmt.Errorf("get club %q: %w", newKey, err)
		}
		if taken {
			return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q already exists", ErrConflict, updated.Name)
		}
	}

	ok, err := s.clubRepo.Update(ctx, key, updated)
	switch {
	case errors.Is(err, clubinfo.ErrKeyTaken):
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q already exists", ErrConflict, updated.Name)
	case err != nil:
		recordSpanError(span, err)
		return clubinfo.ClubInfo{}, fmt.Errorf("update club %q: %w", key, err)
	case !ok:
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q", ErrNotFound, club)
	}

	stored, found, err := s.clubRepo.GetByKey(ctx, newKey)
	if err != nil {
		return clubinfo.ClubInfo{}, fmt.Errorf("read back club %q: %w", newKey, err)
	}
	if !found {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: club %q missing after update", ErrStore, newKey)
	}
	if newKey != key {
		if _, err := s.aliases.Repoint(ctx, key, newKey); err != nil {
			s.logger.WarnContext(ctx, "repoint club aliases failed", "from", key, "to", newKey, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "club updated", "club", key, "name", stored.Name)
	return stored, nil
}
