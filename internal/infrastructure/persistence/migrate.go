// Package persistence wires the PostgreSQL store: embedded schema migrations
// plus the generated query layer in db/ and repositories in postgres/.
package persistence

import (
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending migrations. Already being at the latest
// version is not an error.
func RunMigrations(databaseURL string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, pgxURL(databaseURL))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// pgxURL rewrites a postgres:// URL to the scheme registered by migrate's
// pgx/v5 driver.
func pgxURL(databaseURL string) string {
	if s, ok := strings.CutPrefix(databaseURL, "postgres://"); ok {
		return "pgx5://" + s
	}
	if s, ok := strings.CutPrefix(databaseURL, "postgresql://"); ok {
		return "pgx5://" + s
	}
	return databaseURL
}
