// Package db provides PostgreSQL access for user profiles and generated records.
package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool. One DB is created at process start
// and shared by all requests; pool sizing is left to pgxpool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// InsertRecord inserts one row into the named table and returns its generated
// id. Column values pass through as-is: strings and times map to their
// columns, maps and slices to JSONB, nil to NULL. Columns are ordered by name
// so the statement text is deterministic for a given column set.
func (db *DB) InsertRecord(ctx context.Context, table string, cols map[string]any) (uuid.UUID, error) {
	id := uuid.New()

	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]string, 0, len(names)+1)
	placeholders := make([]string, 0, len(names)+1)
	values := make([]any, 0, len(names)+1)

	columns = append(columns, "id")
	placeholders = append(placeholders, "$1")
	values = append(values, id)

	for i, name := range names {
		columns = append(columns, name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		values = append(values, cols[name])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := db.pool.Exec(ctx, query, values...); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}
