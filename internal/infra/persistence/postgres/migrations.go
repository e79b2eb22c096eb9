package postgres

import "embed"

// MigrationFS holds the golang-migrate SQL files for the accounts schema.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
