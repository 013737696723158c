package apifootball

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

func malformed(path string) error {
	return fmt.Errorf("%w: missing %s", usecase.ErrMalformedUpstreamResponse, path)
}

func checkProviderErrors(meta Meta) error {
	if len(meta.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: provider errors: %s", usecase.ErrUpstream, meta.Errors.String())
}

// NormalizeClubInfo maps the first team of a /teams response. league is the
// configured competition name stored on the record.
func NormalizeClubInfo(env TeamsEnvelope, league string) (clubinfo.ClubInfo, error) {
	if err := checkProviderErrors(env.Meta); err != nil {
		return clubinfo.ClubInfo{}, err
	}
	if len(env.Response) == 0 {
		return clubinfo.ClubInfo{}, fmt.Errorf("%w: no team matched", usecase.ErrNotFound)
	}

	item := env.Response[0]
	switch {
	case item.Team == nil:
		return clubinfo.ClubInfo{}, malformed("response[0].team")
	case strings.TrimSpace(item.Team.Name) == "":
		return clubinfo.ClubInfo{}, malformed("response[0].team.name")
	case item.Venue == nil:
		return clubinfo.ClubInfo{}, malformed("response[0].venue")
	}

	return clubinfo.ClubInfo{
		ClubID:   item.Team.ID,
		Country:  item.Team.Country,
		League:   league,
		Name:     strings.TrimSpace(item.Team.Name),
		Venue:    item.Venue.Name,
		Capacity: item.Venue.Capacity.Int(),
		Founded:  item.Team.Founded.Int(),
	}, nil
}

// NormalizeClubStats maps a /teams/statistics response. Points is derived here
// and stored with the record.
func NormalizeClubStats(env StatisticsEnvelope) (clubstats.Overview, error) {
	if err := checkProviderErrors(env.Meta); err != nil {
		return clubstats.Overview{}, err
	}
	stats := env.Response.Value
	if stats == nil {
		return clubstats.Overview{}, fmt.Errorf("%w: no statistics for team", usecase.ErrNotFound)
	}

	switch {
	case stats.League == nil:
		return clubstats.Overview{}, malformed("response.league")
	case stats.Team == nil:
		return clubstats.Overview{}, malformed("response.team")
	case stats.Fixtures == nil:
		return clubstats.Overview{}, malformed("response.fixtures")
	case stats.Goals == nil || stats.Goals.For == nil || stats.Goals.For.Total == nil:
		return clubstats.Overview{}, malformed("response.goals.for.total")
	}

	wins := splitTotal(stats.Fixtures.Wins)
	draws := splitTotal(stats.Fixtures.Draws)

	out := clubstats.Overview{
		League:  stats.League.Name,
		Name:    strings.TrimSpace(stats.Team.Name),
		Country: stats.League.Country,
		Stats: clubstats.Stats{
			Points:      clubstats.Points(wins, draws),
			Played:      splitTotal(stats.Fixtures.Played),
			HomeGoals:   stats.Goals.For.Total.Home.Int(),
			AwayGoals:   stats.Goals.For.Total.Away.Int(),
			CleanSheets: splitTotal(stats.CleanSheet),
			Wins:        wins,
			Draws:       draws,
			Losses:      splitTotal(stats.Fixtures.Loses),
		},
	}
	if stats.League.Season > 0 {
		out.Season = strconv.Itoa(stats.League.Season)
	}
	if stats.Form != nil {
		out.Stats.Form = *stats.Form
	}
	if len(stats.Lineups) > 0 {
		out.Stats.Formation = stats.Lineups[0].Formation
	}
	return out, nil
}

// NormalizePlayers maps every player of a /players response using the first
// statistics block of each.
func NormalizePlayers(env PlayersEnvelope) ([]playerstats.PlayerStats, error) {
	if err := checkProviderErrors(env.Meta); err != nil {
		return nil, err
	}
	if len(env.Response) == 0 {
		return nil, fmt.Errorf("%w: no players for team", usecase.ErrNotFound)
	}

	out := make([]playerstats.PlayerStats, 0, len(env.Response))
	for i, item := range env.Response {
		path := "response[" + strconv.Itoa(i) + "]"
		if item.Player == nil {
			return nil, malformed(path + ".player")
		}
		if len(item.Statistics) == 0 {
			return nil, malformed(path + ".statistics[0]")
		}
		stat := item.Statistics[0]
		if stat.Team == nil {
			return nil, malformed(path + ".statistics[0].team")
		}

		row := playerstats.PlayerStats{
			PlayerID: item.Player.ID,
			TeamName: strings.TrimSpace(stat.Team.Name),
			Player: playerstats.Identity{
				FirstName:   item.Player.FirstName,
				LastName:    item.Player.LastName,
				Age:         item.Player.Age.Int(),
				Nationality: item.Player.Nationality,
			},
			Stats: performance(stat),
		}
		if item.Player.Height != nil {
			row.Player.Height = *item.Player.Height
		}
		if stat.League != nil {
			row.League = stat.League.Name
		}
		out = append(out, row)
	}
	return out, nil
}

func performance(stat PlayerStatistic) playerstats.Performance {
	var p playerstats.Performance
	if g := stat.Games; g != nil {
		p.Appearances = g.Appearances.Int()
	}
	if s := stat.Shots; s != nil {
		p.Shots = playerstats.Shots{Total: s.Total.Int(), On: s.On.Int()}
	}
	if g := stat.Goals; g != nil {
		p.Goals = playerstats.Goals{Total: g.Total.Int(), Conceded: g.Conceded.Int(), Assists: g.Assists.Int(), Saves: g.Saves.Int()}
	}
	if s := stat.Passes; s != nil {
		p.Passes = playerstats.Passes{Total: s.Total.Int(), Key: s.Key.Int(), Accuracy: s.Accuracy.Int()}
	}
	if t := stat.Tackles; t != nil {
		p.Tackles = playerstats.Tackles{Total: t.Total.Int(), Blocks: t.Blocks.Int(), Interceptions: t.Interceptions.Int()}
	}
	if d := stat.Dribbles; d != nil {
		p.Dribbles = playerstats.Dribbles{Attempts: d.Attempts.Int(), Success: d.Success.Int(), Past: d.Past.Int()}
	}
	if c := stat.Cards; c != nil {
		p.Cards = playerstats.Cards{Yellow: c.Yellow.Int(), YellowRed: c.YellowRed.Int(), Red: c.Red.Int()}
	}
	if pen := stat.Penalty; pen != nil {
		p.Penalty = playerstats.Penalty{Won: pen.Won.Int(), Committed: pen.Committed.Int(), Scored: pen.Scored.Int(), Missed: pen.Missed.Int(), Saved: pen.Saved.Int()}
	}
	return p
}

func splitTotal(s *Split) int {
	if s == nil {
		return 0
	}
	return s.Total.Int()
}
