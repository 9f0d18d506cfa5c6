package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Runner drives schema migrations for the ticket store. It wraps
// golang-migrate with structured logging and treats ErrNoChange as
// success everywhere.
type Runner struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// NewRunner builds a Runner on an open postgres connection reading
// migration pairs from dir.
func NewRunner(db *sql.DB, dir string, logger *zap.Logger) (*Runner, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Runner{m: m, logger: logger}, nil
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	r.logger.Info("Applying pending migrations")

	if err := r.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Schema already up to date")
			return nil
		}
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := r.m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	r.logger.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// Down rolls back every applied migration.
func (r *Runner) Down() error {
	r.logger.Info("Rolling back all migrations")

	if err := r.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Nothing to roll back")
			return nil
		}
		return fmt.Errorf("migration down failed: %w", err)
	}

	r.logger.Info("All migrations rolled back")
	return nil
}

// Steps moves n versions forward (n > 0) or backward (n < 0).
func (r *Runner) Steps(n int) error {
	r.logger.Info("Stepping migrations", zap.Int("steps", n))

	if err := r.m.Steps(n); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Schema already up to date")
			return nil
		}
		return fmt.Errorf("migration steps failed: %w", err)
	}
	return nil
}

// Version reports the current schema version. A fresh database reports
// version 0 without error.
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version without running SQL. Only for
// recovering from a dirty state.
func (r *Runner) Force(version int) error {
	r.logger.Warn("Forcing migration version", zap.Int("version", version))
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// Close releases the source and database handles.
func (r *Runner) Close() error {
	sourceErr, dbErr := r.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close migration database: %w", dbErr)
	}
	return nil
}
