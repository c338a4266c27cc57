package base

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(pgx.ErrNoRows))
	require.True(t, IsNotFound(fmt.Errorf("get row: %w", pgx.ErrNoRows)))
	require.False(t, IsNotFound(fmt.Errorf("boom")))
	require.False(t, IsNotFound(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	require.True(t, IsUniqueViolation(unique))
	require.True(t, IsUniqueViolation(fmt.Errorf("create service: %w", unique)))

	// Другие коды и не-pg ошибки не считаются конфликтом уникальности
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(fmt.Errorf("boom")))
	require.False(t, IsUniqueViolation(nil))
}
