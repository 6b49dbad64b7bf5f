package db

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationResult reports the schema version before and after Migrate.
// Version 0 means no migration has been applied.
type MigrationResult struct {
	From uint
	To   uint
}

// Changed reports whether any migration was applied.
func (r MigrationResult) Changed() bool {
	return r.From != r.To
}

// Migrate applies every pending embedded migration to the database at
// databaseURL. Applied versions are tracked in schema_migrations.
func Migrate(databaseURL string) (MigrationResult, error) {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return MigrationResult{}, err
	}
	defer m.Close()

	from, err := schemaVersion(m)
	if err != nil {
		return MigrationResult{}, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationResult{From: from, To: from}, fmt.Errorf("applying migrations: %w", classify(err))
	}

	to, err := schemaVersion(m)
	if err != nil {
		return MigrationResult{From: from}, err
	}
	return MigrationResult{From: from, To: to}, nil
}

func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	target, err := migrationURL(databaseURL)
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", classify(err))
	}
	return m, nil
}

func schemaVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", classify(err))
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty; fix it by hand and force the version", version)
	}
	return version, nil
}

// migrationURL rewrites a postgres:// URL to the pgx5:// scheme the
// migrate driver registers.
func migrationURL(databaseURL string) (string, error) {
	scheme, rest, ok := strings.Cut(databaseURL, "://")
	if !ok || (scheme != "postgres" && scheme != "postgresql") {
		return "", fmt.Errorf("%w: unsupported database URL scheme %q", ErrInvalidInput, scheme)
	}
	return "pgx5://" + rest, nil
}
