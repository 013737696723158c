package playerstats

import "context"

type Repository interface {
	// ListByTeamKey returns the team's players ordered by ID.
	ListByTeamKey(ctx context.Context, teamKey string) ([]PlayerStats, error)
	// InsertMany stores items, skipping any whose (team key, player id) is
	// already stored. It returns the number of rows written.
	InsertMany(ctx context.Context, items []PlayerStats) (int, error)
	// DeleteOneByFirstNameKey removes the oldest player with the first-name
	// key and returns it. It returns false when none matched.
	DeleteOneByFirstNameKey(ctx context.Context, key string) (PlayerStats, bool, error)
}
