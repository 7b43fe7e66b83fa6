package sqldb

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/gym-network-toolkit/portal/pkg/db"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the schema up to date on either driver.
func RunMigrations(database_ *db.SQL) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	var driver database.Driver

	if database_.IsEmbedded {
		driver, err = migratesqlite.WithInstance(database_.Pool, &migratesqlite.Config{})
	} else {
		driver, err = migratepgx.WithInstance(database_.Pool, &migratepgx.Config{})
	}

	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "portal", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
