package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	qb "github.com/riskibarqy/seriea-gateway/internal/platform/querybuilder"
)

const playerStatsInsertBatch = 100

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByTeamKey(ctx context.Context, teamKey string) ([]playerstats.PlayerStats, error) {
	query, args, err := qb.Select(qb.Columns(playerStatsTableModel{})...).
		From(playerStatsTable).
		Where(qb.Eq("team_key", teamKey)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player stats query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeErr("select player stats", err)
	}

	out := make([]playerstats.PlayerStats, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, storeErr("map player stats", err)
		}
		out = append(out, item)
	}
	return out, nil
}

// InsertMany writes all items in one transaction so a team's roster is stored
// whole or not at all.
func (r *PlayerStatsRepository) InsertMany(ctx context.Context, items []playerstats.PlayerStats) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, storeErr("begin insert player stats", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	written := 0
	for start := 0; start < len(items); start += playerStatsInsertBatch {
		end := min(start+playerStatsInsertBatch, len(items))

		builder := qb.InsertInto(playerStatsTable).
			Columns(playerStatsInsertColumns...).
			Suffix("ON CONFLICT (team_key, player_id) DO NOTHING")
		for _, item := range items[start:end] {
			row, err := toPlayerStatsRow(item)
			if err != nil {
				return 0, err
			}
			builder.Values(row...)
		}

		query, args, err := builder.ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build insert player stats query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, storeErr("insert player stats", err)
		}
		n, err := rowsAffected(res, "insert player stats")
		if err != nil {
			return 0, err
		}
		written += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, storeErr("commit insert player stats", err)
	}
	return written, nil
}

func (r *PlayerStatsRepository) DeleteOneByFirstNameKey(ctx context.Context, key string) (playerstats.PlayerStats, bool, error) {
	query, args, err := qb.DeleteFrom(playerStatsTable).
		Where(qb.Expr("id = (SELECT id FROM "+playerStatsTable+" WHERE first_name_key = ? ORDER BY id ASC LIMIT 1)", key)).
		Suffix("RETURNING " + strings.Join(qb.Columns(playerStatsTableModel{}), ", ")).
		ToSQL()
	if err != nil {
		return playerstats.PlayerStats{}, false, fmt.Errorf("build delete player stats query: %w", err)
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.PlayerStats{}, false, nil
		}
		return playerstats.PlayerStats{}, false, storeErr("delete player stats", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return playerstats.PlayerStats{}, false, storeErr("map deleted player stats", err)
	}
	return item, true, nil
}
