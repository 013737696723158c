package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

const pqUniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}

// storeErr marks a driver failure with usecase.ErrStore and keeps the cause.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", usecase.ErrStore, op, err)
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr(op+" rows affected", err)
	}
	return n, nil
}
