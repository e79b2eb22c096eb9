// Package migrate applies the embedded PostgreSQL schema with golang-migrate.
package migrate

import (
	"admission/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

// Supported directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ErrNoChange is returned by golang-migrate when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run migrates the database at dsn in the given direction. Being already at
// the target version is not an error.
func Run(dsn, direction string) error {
	if err := checkArgs(dsn, direction); err != nil {
		return err
	}

	source, err := iofs.New(postgres.MigrationFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "open migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	return nil
}

func checkArgs(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migration database url is not set; configure migration.databaseUrl or MIGRATION_DATABASEURL")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Errorf("direction must be %q or %q, got %q", DirectionUp, DirectionDown, direction)
	}

	return nil
}
