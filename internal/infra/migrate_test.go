package infra

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomdesign/internal/infra/migrations"
)

func TestMigrationsAreEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_furniture_items.sql", "00002_room_designs.sql"}, names)
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := RunMigrations(context.Background(), "postgres://example", "sideways")
	require.EqualError(t, err, `unknown migration command "sideways"`)
}

func TestRunMigrationsDispatchesCommand(t *testing.T) {
	origOpen, origRun := openMigrationDB, gooseRun
	t.Cleanup(func() {
		openMigrationDB = origOpen
		gooseRun = origRun
	})

	var opened string
	openMigrationDB = func(dsn string) (*sql.DB, error) {
		opened = dsn
		return sql.Open("postgres", dsn)
	}
	var ran []string
	gooseRun = func(_ context.Context, command string, _ *sql.DB) error {
		ran = append(ran, command)
		if command == MigrateDown {
			return errors.New("boom")
		}
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), "postgres://localhost/db", MigrateUp))
	err := RunMigrations(context.Background(), "postgres://localhost/db", MigrateDown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate down: boom")

	assert.Equal(t, "postgres://localhost/db", opened)
	assert.Equal(t, []string{MigrateUp, MigrateDown}, ran)
}
