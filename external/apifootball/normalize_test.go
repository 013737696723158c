package apifootball

import (
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const napoliTeamJSON = `{
  "get": "teams",
  "parameters": {"name": "Napoli", "league": "135", "season": "2022"},
  "errors": [],
  "results": 1,
  "paging": {"current": 1, "total": 1},
  "response": [{
    "team": {"id": 492, "name": "Napoli", "code": "NAP", "country": "Italy", "founded": 1904, "national": false},
    "venue": {"id": 905, "name": "Stadio Diego Armando Maradona", "city": "Napoli", "capacity": 60240, "surface": "grass"}
  }]
}`

const napoliStatsJSON = `{
  "get": "teams/statistics",
  "errors": [],
  "results": 11,
  "response": {
    "league": {"id": 135, "name": "Serie A", "country": "Italy", "season": 2022},
    "team": {"id": 492, "name": "Napoli"},
    "form": "WWWDW",
    "fixtures": {
      "played": {"home": 19, "away": 19, "total": 38},
      "wins": {"home": 14, "away": 14, "total": 28},
      "draws": {"home": 2, "away": 4, "total": 6},
      "loses": {"home": 3, "away": 1, "total": 4}
    },
    "goals": {"for": {"total": {"home": 40, "away": 37, "total": 77}}, "against": {"total": {"home": 16, "away": 12, "total": 28}}},
    "clean_sheet": {"home": 8, "away": 9, "total": null},
    "lineups": [{"formation": "4-3-3", "played": 36}, {"formation": "4-2-3-1", "played": 2}]
  }
}`

const napoliPlayersJSON = `{
  "get": "players",
  "errors": [],
  "results": 2,
  "paging": {"current": 1, "total": 1},
  "response": [
    {
      "player": {"id": 1, "name": "V. Osimhen", "firstname": "Victor James", "lastname": "Osimhen", "age": 24, "nationality": "Nigeria", "height": "186 cm"},
      "statistics": [{
        "team": {"id": 492, "name": "Napoli"},
        "league": {"id": 135, "name": "Serie A", "country": "Italy", "season": 2022},
        "games": {"appearences": 32},
        "shots": {"total": 111, "on": 56},
        "goals": {"total": 26, "conceded": 0, "assists": 4, "saves": null},
        "passes": {"total": 402, "key": 27, "accuracy": "12"},
        "tackles": {"total": 8, "blocks": null, "interceptions": 3},
        "dribbles": {"attempts": 52, "success": 27, "past": null},
        "cards": {"yellow": 3, "yellowred": 0, "red": 0},
        "penalty": {"won": 2, "commited": null, "scored": 1, "missed": 1, "saved": null}
      }]
    },
    {
      "player": {"id": 2, "name": "Alex Meret", "firstname": "Alex", "lastname": "Meret", "age": null, "nationality": "Italy", "height": null},
      "statistics": [{"team": {"id": 492, "name": "Napoli"}, "league": {"name": "Serie A"}, "goals": {"total": null, "conceded": 28, "saves": 67}}]
    }
  ]
}`

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	var out T
	require.NoError(t, sonic.Unmarshal([]byte(raw), &out))
	return out
}

func TestNormalizeClubInfo(t *testing.T) {
	t.Parallel()

	got, err := NormalizeClubInfo(decode[TeamsEnvelope](t, napoliTeamJSON), "Serie A")
	require.NoError(t, err)
	assert.Equal(t, int64(492), got.ClubID)
	assert.Equal(t, "Napoli", got.Name)
	assert.Equal(t, "Italy", got.Country)
	assert.Equal(t, "Serie A", got.League)
	assert.Equal(t, "Stadio Diego Armando Maradona", got.Venue)
	assert.Equal(t, 60240, got.Capacity)
	assert.Equal(t, 1904, got.Founded)
}

func TestNormalizeClubInfo_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty response", raw: `{"errors":[],"response":[]}`, want: usecase.ErrNotFound},
		{name: "provider errors", raw: `{"errors":{"token":"Error/Missing application key."},"response":[]}`, want: usecase.ErrUpstream},
		{name: "missing team", raw: `{"errors":[],"response":[{"venue":{"name":"x"}}]}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "missing venue", raw: `{"errors":[],"response":[{"team":{"id":1,"name":"x"}}]}`, want: usecase.ErrMalformedUpstreamResponse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizeClubInfo(decode[TeamsEnvelope](t, tc.raw), "Serie A")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizeClubStats(t *testing.T) {
	t.Parallel()

	got, err := NormalizeClubStats(decode[StatisticsEnvelope](t, napoliStatsJSON))
	require.NoError(t, err)
	assert.Equal(t, "Serie A", got.League)
	assert.Equal(t, "2022", got.Season)
	assert.Equal(t, "Napoli", got.Name)
	assert.Equal(t, "Italy", got.Country)
	assert.Equal(t, 90, got.Stats.Points)
	assert.Equal(t, "4-3-3", got.Stats.Formation)
	assert.Equal(t, 38, got.Stats.Played)
	assert.Equal(t, 40, got.Stats.HomeGoals)
	assert.Equal(t, 37, got.Stats.AwayGoals)
	assert.Equal(t, 0, got.Stats.CleanSheets, "null counters map to zero")
	assert.Equal(t, 28, got.Stats.Wins)
	assert.Equal(t, 6, got.Stats.Draws)
	assert.Equal(t, 4, got.Stats.Losses)
	assert.Equal(t, "WWWDW", got.Stats.Form)
}

func TestNormalizeClubStats_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty array response", raw: `{"errors":[],"response":[]}`, want: usecase.ErrNotFound},
		{name: "missing fixtures", raw: `{"errors":[],"response":{"league":{"name":"Serie A"},"team":{"name":"Napoli"},"goals":{"for":{"total":{}}}}}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "missing goals", raw: `{"errors":[],"response":{"league":{"name":"Serie A"},"team":{"name":"Napoli"},"fixtures":{}}}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "missing league", raw: `{"errors":[],"response":{"team":{"name":"Napoli"}}}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "rate limited", raw: `{"errors":{"requests":"You have reached the request limit for the day"},"response":[]}`, want: usecase.ErrUpstream},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizeClubStats(decode[StatisticsEnvelope](t, tc.raw))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalizePlayers(t *testing.T) {
	t.Parallel()

	got, err := NormalizePlayers(decode[PlayersEnvelope](t, napoliPlayersJSON))
	require.NoError(t, err)
	require.Len(t, got, 2)

	osimhen := got[0]
	assert.Equal(t, int64(1), osimhen.PlayerID)
	assert.Equal(t, "Napoli", osimhen.TeamName)
	assert.Equal(t, "Serie A", osimhen.League)
	assert.Equal(t, "Victor James", osimhen.Player.FirstName)
	assert.Equal(t, "186 cm", osimhen.Player.Height)
	assert.Equal(t, 24, osimhen.Player.Age)
	assert.Equal(t, 32, osimhen.Stats.Appearances)
	assert.Equal(t, 56, osimhen.Stats.Shots.On)
	assert.Equal(t, 26, osimhen.Stats.Goals.Total)
	assert.Equal(t, 12, osimhen.Stats.Passes.Accuracy, "numeric strings are accepted")
	assert.Equal(t, 0, osimhen.Stats.Tackles.Blocks)
	assert.Equal(t, 2, osimhen.Stats.Penalty.Won)
	assert.Equal(t, 0, osimhen.Stats.Penalty.Committed)

	meret := got[1]
	assert.Equal(t, 0, meret.Player.Age)
	assert.Equal(t, "", meret.Player.Height)
	assert.Equal(t, 67, meret.Stats.Goals.Saves)
	assert.Equal(t, 0, meret.Stats.Appearances, "missing blocks map to zero")
}

func TestNormalizePlayers_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: `{"errors":[],"response":[]}`, want: usecase.ErrNotFound},
		{name: "missing player", raw: `{"errors":[],"response":[{"statistics":[{"team":{"name":"Napoli"}}]}]}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "missing statistics", raw: `{"errors":[],"response":[{"player":{"id":1},"statistics":[]}]}`, want: usecase.ErrMalformedUpstreamResponse},
		{name: "missing statistics team", raw: `{"errors":[],"response":[{"player":{"id":1},"statistics":[{"games":{}}]}]}`, want: usecase.ErrMalformedUpstreamResponse},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizePlayers(decode[PlayersEnvelope](t, tc.raw))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestProviderErrors_String(t *testing.T) {
	t.Parallel()

	env := decode[TeamsEnvelope](t, `{"errors":{"token":"bad","requests":"limit"},"response":[]}`)
	assert.Equal(t, "requests=limit; token=bad", env.Errors.String())

	env = decode[TeamsEnvelope](t, `{"errors":["boom"],"response":[]}`)
	assert.Equal(t, "error_0=boom", env.Errors.String())
}
