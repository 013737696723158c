package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	qb "github.com/riskibarqy/seriea-gateway/internal/platform/querybuilder"
)

type ClubInfoRepository struct {
	db *sqlx.DB
}

func NewClubInfoRepository(db *sqlx.DB) *ClubInfoRepository {
	return &ClubInfoRepository{db: db}
}

func (r *ClubInfoRepository) GetByKey(ctx context.Context, key string) (clubinfo.ClubInfo, bool, error) {
	query, args, err := qb.Select(qb.Columns(clubInfoTableModel{})...).
		From(clubInfoTable).
		Where(qb.Eq("name_key", key)).
		ToSQL()
	if err != nil {
		return clubinfo.ClubInfo{}, false, fmt.Errorf("build select club info query: %w", err)
	}

	var row clubInfoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubinfo.ClubInfo{}, false, nil
		}
		return clubinfo.ClubInfo{}, false, storeErr("select club info", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubInfoRepository) Insert(ctx context.Context, item clubinfo.ClubInfo) (bool, error) {
	query, args, err := qb.InsertModel(clubInfoTable, toClubInfoInsertModel(item, time.Now().UTC()), "ON CONFLICT (name_key) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert club info query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, storeErr("insert club info", err)
	}
	n, err := rowsAffected(res, "insert club info")
	return n > 0, err
}

func (r *ClubInfoRepository) Upsert(ctx context.Context, item clubinfo.ClubInfo) error {
	query, args, err := qb.UpsertModel(clubInfoTable, toClubInfoInsertModel(item, time.Now().UTC()), []string{"name_key"})
	if err != nil {
		return fmt.Errorf("build upsert club info query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert club info", err)
	}
	return nil
}

func (r *ClubInfoRepository) Update(ctx context.Context, key string, item clubinfo.ClubInfo) (bool, error) {
	query, args, err := qb.Update(clubInfoTable).
		Set("name_key", item.Key()).
		Set("league", item.League).
		Set("name", item.Name).
		Set("venue", item.Venue).
		Set("capacity", item.Capacity).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("name_key", key)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update club info query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("update club info %q: %w", key, clubinfo.ErrKeyTaken)
		}
		return false, storeErr("update club info", err)
	}
	n, err := rowsAffected(res, "update club info")
	return n > 0, err
}
