package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	clubaliasmock "github.com/riskibarqy/seriea-gateway/internal/mocks/domain/clubalias"
	clubinfomock "github.com/riskibarqy/seriea-gateway/internal/mocks/domain/clubinfo"
	clubstatsmock "github.com/riskibarqy/seriea-gateway/internal/mocks/domain/clubstats"
	usecasemock "github.com/riskibarqy/seriea-gateway/internal/mocks/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestClubService_UpdateClub_NotFoundPerformsNoWrite(t *testing.T) {
	t.Parallel()

	clubRepo := clubinfomock.NewRepository(t)
	clubRepo.On("GetByKey", mock.Anything, "juventus").Return(clubinfo.ClubInfo{}, false, nil).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)
	_, err := service.UpdateClub(context.Background(), "Juventus", clubinfo.Update{Venue: strPtr("Allianz Stadium")})
	require.ErrorIs(t, err, ErrNotFound)
	clubRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestClubService_UpdateClub_EmptyUpdateIsInvalid(t *testing.T) {
	t.Parallel()

	service := NewClubService(clubinfomock.NewRepository(t), clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)
	_, err := service.UpdateClub(context.Background(), "Napoli", clubinfo.Update{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClubService_UpdateClub_RejectsBlankNameAndNegativeCapacity(t *testing.T) {
	t.Parallel()

	stored := clubinfo.ClubInfo{ID: 1, Name: "Napoli"}
	clubRepo := clubinfomock.NewRepository(t)
	clubRepo.On("GetByKey", mock.Anything, "napoli").Return(stored, true, nil).Twice()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)

	_, err := service.UpdateClub(context.Background(), "napoli", clubinfo.Update{Name: strPtr("   ")})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = service.UpdateClub(context.Background(), "napoli", clubinfo.Update{Capacity: intPtr(-5)})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClubService_UpdateClub_Success(t *testing.T) {
	t.Parallel()

	stored := clubinfo.ClubInfo{ID: 1, ClubID: 492, Name: "Napoli", Venue: "San Paolo", Capacity: 60000, League: "Serie A"}
	want := stored
	want.Venue = "Stadio Diego Armando Maradona"
	want.Capacity = 54726

	clubRepo := clubinfomock.NewRepository(t)
	clubRepo.On("GetByKey", mock.Anything, "napoli").Return(stored, true, nil).Once()
	clubRepo.On("Update", mock.Anything, "napoli", want).Return(true, nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "napoli").Return(want, true, nil).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)
	got, err := service.UpdateClub(context.Background(), "Napoli", clubinfo.Update{Venue: strPtr(want.Venue), Capacity: intPtr(want.Capacity)})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClubService_UpdateClub_RenameOntoExistingConflicts(t *testing.T) {
	t.Parallel()

	clubRepo := clubinfomock.NewRepository(t)
	clubRepo.On("GetByKey", mock.Anything, "inter").Return(clubinfo.ClubInfo{ID: 1, Name: "Inter"}, true, nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "milan").Return(clubinfo.ClubInfo{ID: 2, Name: "Milan"}, true, nil).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)
	_, err := service.UpdateClub(context.Background(), "Inter", clubinfo.Update{Name: strPtr("  Milan ")})
	require.ErrorIs(t, err, ErrConflict)
}

func TestClubService_UpdateClub_StoreRaceConflicts(t *testing.T) {
	t.Parallel()

	clubRepo := clubinfomock.NewRepository(t)
	clubRepo.On("GetByKey", mock.Anything, "inter").Return(clubinfo.ClubInfo{ID: 1, Name: "Inter"}, true, nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "internazionale").Return(clubinfo.ClubInfo{}, false, nil).Once()
	clubRepo.On("Update", mock.Anything, "inter", mock.Anything).Return(false, clubinfo.ErrKeyTaken).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, usecasemock.NewSportsProvider(t), usecasemock.NewKeyLocker(t), nil)
	_, err := service.UpdateClub(context.Background(), "inter", clubinfo.Update{Name: strPtr("Internazionale")})
	require.ErrorIs(t, err, ErrConflict)
}

func TestClubService_RefreshClub_UpsertsFetchedClub(t *testing.T) {
	t.Parallel()

	fetched := clubinfo.ClubInfo{ClubID: 489, Name: "AC Milan", Venue: "San Siro", Capacity: 80018}
	stored := fetched
	stored.ID = 11

	clubRepo := clubinfomock.NewRepository(t)
	provider := usecasemock.NewSportsProvider(t)
	locker := usecasemock.NewKeyLocker(t)

	locker.On("Acquire", mock.Anything, "club_info:ac milan").Return(noopRelease, nil).Once()
	provider.On("FetchClubInfo", mock.Anything, "AC Milan").Return(fetched, nil).Once()
	clubRepo.On("Upsert", mock.Anything, fetched).Return(nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "ac milan").Return(stored, true, nil).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, provider, locker, nil)
	got, err := service.RefreshClub(context.Background(), "AC Milan")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClubService_RefreshClub_UpstreamFailureWritesNothing(t *testing.T) {
	t.Parallel()

	clubRepo := clubinfomock.NewRepository(t)
	provider := usecasemock.NewSportsProvider(t)
	locker := usecasemock.NewKeyLocker(t)

	locker.On("Acquire", mock.Anything, "club_info:torino").Return(noopRelease, nil).Once()
	provider.On("FetchClubInfo", mock.Anything, "Torino").Return(clubinfo.ClubInfo{}, ErrUpstream).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), nil, provider, locker, nil)
	_, err := service.RefreshClub(context.Background(), "torino")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClubService_GetClubStats_ResolvesClubThroughStore(t *testing.T) {
	t.Parallel()

	club := clubinfo.ClubInfo{ID: 1, ClubID: 492, Name: "Napoli", Country: "Italy"}
	upstream := clubstats.Overview{League: "Serie A", Season: "2022", Name: "SSC Napoli", Stats: clubstats.Stats{Wins: 28, Draws: 6, Points: 90}}
	want := upstream
	want.Name = "Napoli"
	want.Country = "Italy"

	clubRepo := clubinfomock.NewRepository(t)
	statsRepo := clubstatsmock.NewRepository(t)
	provider := usecasemock.NewSportsProvider(t)
	locker := usecasemock.NewKeyLocker(t)

	statsRepo.On("GetByKey", mock.Anything, "napoli").Return(clubstats.Overview{}, false, nil).Twice()
	locker.On("Acquire", mock.Anything, "club_stats:napoli").Return(noopRelease, nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "napoli").Return(club, true, nil).Once()
	provider.On("FetchClubStats", mock.Anything, int64(492)).Return(upstream, nil).Once()
	statsRepo.On("Insert", mock.Anything, want).Return(true, nil).Once()
	statsRepo.On("GetByKey", mock.Anything, "napoli").Return(want, true, nil).Once()

	service := NewClubService(clubRepo, statsRepo, nil, provider, locker, nil)
	got, err := service.GetClubStats(context.Background(), "napoli")
	require.NoError(t, err)
	assert.Equal(t, 90, got.Stats.Points)
	assert.Equal(t, "Napoli", got.Name)
}

func TestClubService_GetClubStats_ClubNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeClubRepo()
	provider := &countingProvider{failClub: map[string]error{"Atlantis": ErrNotFound}}
	service := NewClubService(repo, newFakeStatsRepo(), nil, provider, &fakeLocker{}, nil)

	_, err := service.GetClubStats(context.Background(), "atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if provider.statsCalls.Load() != 0 {
		t.Fatalf("stats fetched for unknown club")
	}
}

func TestClubService_RefreshClub_SavesAliasForUpstreamName(t *testing.T) {
	t.Parallel()

	fetched := clubinfo.ClubInfo{ClubID: 489, Name: "AC Milan"}
	stored := fetched
	stored.ID = 11

	clubRepo := clubinfomock.NewRepository(t)
	aliases := clubaliasmock.NewRepository(t)
	provider := usecasemock.NewSportsProvider(t)
	locker := usecasemock.NewKeyLocker(t)

	locker.On("Acquire", mock.Anything, "club_info:milan").Return(noopRelease, nil).Once()
	provider.On("FetchClubInfo", mock.Anything, "Milan").Return(fetched, nil).Once()
	clubRepo.On("Upsert", mock.Anything, fetched).Return(nil).Once()
	clubRepo.On("GetByKey", mock.Anything, "ac milan").Return(stored, true, nil).Once()
	aliases.On("Save", mock.Anything, "milan", "ac milan").Return(nil).Once()

	service := NewClubService(clubRepo, clubstatsmock.NewRepository(t), aliases, provider, locker, nil)
	got, err := service.RefreshClub(context.Background(), "milan")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestClubService_UpdateClub_ThroughAliasRepointsAliases(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := newFakeClubRepo()
	aliases := newFakeAliasRepo()
	_, err := clubRepo.Insert(ctx, clubinfo.ClubInfo{ClubID: 489, Name: "AC Milan"})
	require.NoError(t, err)
	require.NoError(t, aliases.Save(ctx, "milan", "ac milan"))

	service := NewClubService(clubRepo, newFakeStatsRepo(), aliases, &countingProvider{}, &fakeLocker{}, nil)
	got, err := service.UpdateClub(ctx, "milan", clubinfo.Update{Name: strPtr("Milan FC")})
	require.NoError(t, err)
	assert.Equal(t, "Milan FC", got.Name)

	target, ok, err := aliases.Resolve(ctx, "milan")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "milan fc", target)

	again, err := service.GetClub(ctx, "milan")
	require.NoError(t, err)
	assert.Equal(t, int64(489), again.ClubID)
}
