package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrDirtySchema is returned when a previous migration failed halfway and the
// schema needs manual repair.
var ErrDirtySchema = errors.New("database schema is dirty")

// MigrationResult describes the schema state after RunMigrations.
type MigrationResult struct {
	Version uint // Version is the latest applied migration, zero for an empty schema.
	Changed bool // Changed reports whether any migration was applied.
}

// RunMigrations applies every pending migration found at path to the database at dsn.
func RunMigrations(path string, dsn string) (MigrationResult, error) {
	const op = "postgres.RunMigrations"

	m, err := migrate.New(path, dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("%s: failed to initialize migrations: %w", op, err)
	}
	defer m.Close()

	if _, dirty, err := m.Version(); err == nil && dirty {
		return MigrationResult{}, fmt.Errorf("%s: %w", op, ErrDirtySchema)
	}

	res := MigrationResult{Changed: true}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return MigrationResult{}, fmt.Errorf("%s: failed to run migrations: %w", op, err)
		}
		res.Changed = false
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationResult{}, fmt.Errorf("%s: failed to read schema version: %w", op, err)
	}
	res.Version = version

	return res, nil
}
