package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get club: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches unique violation", func(t *testing.T) {
		err := fmt.Errorf("update: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(errors.New("23505")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestStoreErr(t *testing.T) {
	cause := errors.New("connection refused")
	err := storeErr("select club", cause)
	if !errors.Is(err, usecase.ErrStore) || !errors.Is(err, cause) {
		t.Fatalf("expected both store sentinel and cause, got %v", err)
	}
}
