package sqldb

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationsFS embed.FS

// NewMigrator builds a migrator over the embedded migrations for the
// driver of db. Closing the migrator closes db.
func NewMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	driverName := db.DriverName()

	src, err := iofs.New(migrationsFS, "migrations/"+driverName)
	if err != nil {
		return nil, fmt.Errorf("migrations source: %w", err)
	}

	var drv database.Driver
	switch driverName {
	case DriverPostgres:
		drv, err = migratepg.WithInstance(db.DB, &migratepg.Config{})
	case DriverSQLite:
		drv, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driverName)
	}
	if err != nil {
		return nil, fmt.Errorf("migrations driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, driverName, drv)
}

// Migrate applies all pending migrations. The migrator is left open since it
// shares db with the caller.
func Migrate(db *sqlx.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
