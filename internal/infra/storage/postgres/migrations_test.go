package postgres

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	r, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	for _, table := range []string{"leads", "schedules", "settings", "services"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
}
