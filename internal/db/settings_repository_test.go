package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SettingsRepository {
	t.Helper()
	database, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)
	return NewSettingsRepository(database)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := OpenInMemory()
	require.NoError(t, err)
	defer database.Close()

	applied, err := database.MigrateUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), applied)

	applied, err = database.MigrateUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	version, err := database.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)
}

func TestSettingsGetMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsSetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "theme", "default"))
	require.NoError(t, repo.Set(ctx, "theme", "high-contrast"))

	value, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "high-contrast", value)

	require.NoError(t, repo.Delete(ctx, "theme"))
	require.NoError(t, repo.Delete(ctx, "theme"))
	_, err = repo.Get(ctx, "theme")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	assert.Error(t, repo.Set(ctx, " ", "x"))
}

func TestDarkModeRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	dark, err := repo.DarkMode(ctx, true)
	require.NoError(t, err)
	assert.True(t, dark, "fallback when unset")

	require.NoError(t, repo.SetDarkMode(ctx, false))
	dark, err = repo.DarkMode(ctx, true)
	require.NoError(t, err)
	assert.False(t, dark)

	require.NoError(t, repo.Set(ctx, KeyDarkMode, "maybe"))
	dark, err = repo.DarkMode(ctx, true)
	assert.Error(t, err)
	assert.True(t, dark)
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "nahw.db")

	database, err := Open(path)
	require.NoError(t, err)
	_, err = database.MigrateUp(ctx)
	require.NoError(t, err)
	require.NoError(t, NewSettingsRepository(database).SetDarkMode(ctx, true))
	require.NoError(t, database.Close())

	database, err = Open(path)
	require.NoError(t, err)
	defer database.Close()
	assert.Equal(t, path, database.Path())

	applied, err := database.MigrateUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	dark, err := NewSettingsRepository(database).DarkMode(ctx, false)
	require.NoError(t, err)
	assert.True(t, dark)
}
