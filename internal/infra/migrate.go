package infra

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"roomdesign/internal/infra/migrations"
)

// Migration commands accepted by RunMigrations.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// seams for tests
var (
	openMigrationDB = func(dsn string) (*sql.DB, error) { return sql.Open("postgres", dsn) }
	gooseRun        = func(ctx context.Context, command string, db *sql.DB) error {
		switch command {
		case MigrateUp:
			return goose.UpContext(ctx, db, ".")
		case MigrateDown:
			return goose.DownContext(ctx, db, ".")
		default:
			return goose.StatusContext(ctx, db, ".")
		}
	}
)

// RunMigrations applies the embedded schema migrations through a short-lived
// database/sql connection. The pgx pool is not used here because goose works
// against *sql.DB.
func RunMigrations(ctx context.Context, databaseURL, command string) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus:
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db, err := openMigrationDB(databaseURL)
	if err != nil {
		return fmt.Errorf("open migration db: %w", err)
	}
	defer db.Close()

	if err := gooseRun(ctx, command, db); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
