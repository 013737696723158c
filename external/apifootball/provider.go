package apifootball

import (
	"context"

	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

var _ usecase.SportsProvider = (*Client)(nil)

func (c *Client) FetchClubInfo(ctx context.Context, name string) (clubinfo.ClubInfo, error) {
	env, err := c.FetchTeamByName(ctx, name)
	if err != nil {
		return clubinfo.ClubInfo{}, err
	}
	return NormalizeClubInfo(env, c.leagueName)
}

func (c *Client) FetchClubStats(ctx context.Context, clubID int64) (clubstats.Overview, error) {
	env, err := c.FetchStatistics(ctx, clubID)
	if err != nil {
		return clubstats.Overview{}, err
	}
	return NormalizeClubStats(env)
}

func (c *Client) FetchClubPlayers(ctx context.Context, clubID int64) ([]playerstats.PlayerStats, error) {
	env, err := c.FetchPlayers(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return NormalizePlayers(env)
}
