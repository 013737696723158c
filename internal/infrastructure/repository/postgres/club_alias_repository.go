package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/seriea-gateway/internal/platform/querybuilder"
)

const clubAliasTable = "club_aliases"

type clubAliasInsertModel struct {
	AliasKey  string    `db:"alias_key"`
	NameKey   string    `db:"name_key"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ClubAliasRepository struct {
	db *sqlx.DB
}

func NewClubAliasRepository(db *sqlx.DB) *ClubAliasRepository {
	return &ClubAliasRepository{db: db}
}

func (r *ClubAliasRepository) Resolve(ctx context.Context, alias string) (string, bool, error) {
	query, args, err := qb.Select("name_key").
		From(clubAliasTable).
		Where(qb.Eq("alias_key", alias)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build select club alias query: %w", err)
	}

	var nameKey string
	if err := r.db.GetContext(ctx, &nameKey, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, storeErr("select club alias", err)
	}
	return nameKey, true, nil
}

func (r *ClubAliasRepository) Save(ctx context.Context, alias, nameKey string) error {
	model := clubAliasInsertModel{AliasKey: alias, NameKey: nameKey, UpdatedAt: time.Now().UTC()}
	query, args, err := qb.UpsertModel(clubAliasTable, model, []string{"alias_key"})
	if err != nil {
		return fmt.Errorf("build upsert club alias query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert club alias", err)
	}
	return nil
}

func (r *ClubAliasRepository) Repoint(ctx context.Context, fromKey, toKey string) (int, error) {
	query, args, err := qb.Update(clubAliasTable).
		Set("name_key", toKey).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("name_key", fromKey)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build repoint club alias query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storeErr("repoint club alias", err)
	}
	n, err := rowsAffected(res, "repoint club alias")
	return int(n), err
}
