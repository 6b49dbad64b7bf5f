// Package db provides PostgreSQL persistence for venues, artists and shows.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
	sql  *sql.DB
}

// New creates a new database connection pool.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	// Parse connection settings
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	// Create pool
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", classify(err))
	}

	// Expose the pool through database/sql
	return &DB{pool: pool, sql: stdlib.OpenDBFromPool(pool)}, nil
}

// NewFromSQL wraps an already opened *sql.DB. The caller keeps ownership
// of any pool behind it.
func NewFromSQL(sqlDB *sql.DB) *DB {
	return &DB{sql: sqlDB}
}

// Close closes the database connection pool.
func (db *DB) Close() {
	_ = db.sql.Close()
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.sql.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", classify(err))
	}
	return nil
}

// Venues returns a VenueRepository outside of any transaction.
func (db *DB) Venues() *VenueRepository {
	return &VenueRepository{q: db.sql}
}

// Artists returns an ArtistRepository outside of any transaction.
func (db *DB) Artists() *ArtistRepository {
	return &ArtistRepository{q: db.sql}
}

// Shows returns a ShowRepository outside of any transaction.
func (db *DB) Shows() *ShowRepository {
	return &ShowRepository{q: db.sql}
}

// Tx is a request-scoped transaction. It is only valid inside the
// function passed to WithTx.
type Tx struct {
	tx *sql.Tx
}

// Venues returns a VenueRepository bound to the transaction.
func (t *Tx) Venues() *VenueRepository {
	return &VenueRepository{q: t.tx}
}

// Artists returns an ArtistRepository bound to the transaction.
func (t *Tx) Artists() *ArtistRepository {
	return &ArtistRepository{q: t.tx}
}

// Shows returns a ShowRepository bound to the transaction.
func (t *Tx) Shows() *ShowRepository {
	return &ShowRepository{q: t.tx}
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; its connection is returned to the
// pool on every path.
func (db *DB) WithTx(ctx context.Context, fn func(*Tx) error) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", classify(err))
	}
	defer tx.Rollback() //nolint:errcheck // no-op after a successful commit

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", classify(err))
	}
	return nil
}
