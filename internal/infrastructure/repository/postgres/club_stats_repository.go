package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	qb "github.com/riskibarqy/seriea-gateway/internal/platform/querybuilder"
)

type ClubStatsRepository struct {
	db *sqlx.DB
}

func NewClubStatsRepository(db *sqlx.DB) *ClubStatsRepository {
	return &ClubStatsRepository{db: db}
}

func (r *ClubStatsRepository) GetByKey(ctx context.Context, key string) (clubstats.Overview, bool, error) {
	query, args, err := qb.Select(qb.Columns(clubStatsTableModel{})...).
		From(clubStatsTable).
		Where(qb.Eq("name_key", key)).
		ToSQL()
	if err != nil {
		return clubstats.Overview{}, false, fmt.Errorf("build select club stats query: %w", err)
	}

	var row clubStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubstats.Overview{}, false, nil
		}
		return clubstats.Overview{}, false, storeErr("select club stats", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return clubstats.Overview{}, false, storeErr("map club stats", err)
	}
	return item, true, nil
}

func (r *ClubStatsRepository) Insert(ctx context.Context, item clubstats.Overview) (bool, error) {
	model, err := toClubStatsInsertModel(item)
	if err != nil {
		return false, err
	}
	query, args, err := qb.InsertModel(clubStatsTable, model, "ON CONFLICT (name_key) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert club stats query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeErr("insert club stats", err)
	}
	n, err := rowsAffected(res, "insert club stats")
	return n > 0, err
}
