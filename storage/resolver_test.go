package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storages.dev/storages/storage"
)

func TestResolve_AllConfigurations(t *testing.T) {
	dirs := storage.HostDirectories{
		InternalRoot: filepath.Join(t.TempDir(), "internal"),
		ExternalRoot: t.TempDir(),
	}
	resolver := storage.NewResolver(dirs)

	cases := []struct {
		config  storage.StorageConfig
		kind    storage.Kind
		wantDir string
	}{
		{storage.StorageConfig{Persistent: true, Internal: true}, storage.InternalFiles, filepath.Join(dirs.InternalRoot, "files")},
		{storage.StorageConfig{Persistent: false, Internal: true}, storage.InternalCache, filepath.Join(dirs.InternalRoot, "cache")},
		{storage.StorageConfig{Persistent: true, Internal: false}, storage.ExternalFiles, filepath.Join(dirs.ExternalRoot, "files")},
		{storage.StorageConfig{Persistent: false, Internal: false}, storage.ExternalCache, filepath.Join(dirs.ExternalRoot, "cache")},
	}

	seen := map[string]bool{}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			loc, err := resolver.Resolve(tc.config, "note.txt")
			require.NoError(t, err)

			assert.Equal(t, tc.kind, loc.Kind)
			assert.Equal(t, tc.wantDir, loc.Directory)
			assert.Equal(t, "note.txt", loc.FileName)
			assert.Equal(t, filepath.Join(tc.wantDir, "note.txt"), loc.Path())
			assert.Equal(t, tc.config.Internal, loc.Kind.Internal())
			assert.Equal(t, tc.config.Persistent, loc.Kind.Persistent())

			assert.False(t, seen[loc.Directory], "each configuration should resolve to its own directory")
			seen[loc.Directory] = true
		})
	}
}

func TestResolve_PerformsNoIO(t *testing.T) {
	dirs := storage.HostDirectories{InternalRoot: filepath.Join(t.TempDir(), "internal")}
	loc, err := storage.NewResolver(dirs).Resolve(storage.StorageConfig{Persistent: true, Internal: true}, "note.txt")
	require.NoError(t, err)

	_, err = os.Stat(loc.Directory)
	assert.True(t, errors.Is(err, os.ErrNotExist), "resolving should not create directories")
}

func TestResolve_ExternalUnavailable(t *testing.T) {
	t.Run("NoExternalRoot", func(t *testing.T) {
		resolver := storage.NewResolver(storage.HostDirectories{InternalRoot: t.TempDir()})

		_, err := resolver.Resolve(storage.StorageConfig{Persistent: true}, "note.txt")

		var configErr *storage.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, storage.ExternalFiles, configErr.Kind)
		assert.ErrorIs(t, err, storage.ErrUnavailable)
	})

	t.Run("MissingMount", func(t *testing.T) {
		resolver := storage.NewResolver(storage.HostDirectories{
			InternalRoot: t.TempDir(),
			ExternalRoot: filepath.Join(t.TempDir(), "unmounted"),
		})

		_, err := resolver.Resolve(storage.StorageConfig{Persistent: false}, "note.txt")
		assert.ErrorIs(t, err, storage.ErrUnavailable)
	})

	t.Run("InternalStillResolves", func(t *testing.T) {
		resolver := storage.NewResolver(storage.HostDirectories{InternalRoot: t.TempDir()})

		_, err := resolver.Resolve(storage.StorageConfig{Persistent: true, Internal: true}, "note.txt")
		assert.NoError(t, err)
	})
}

func TestResolve_S3ExternalRoot(t *testing.T) {
	resolver := storage.NewResolver(storage.HostDirectories{
		InternalRoot: t.TempDir(),
		ExternalRoot: "s3://bucket/shared",
	})

	loc, err := resolver.Resolve(storage.StorageConfig{Persistent: false}, "note.txt")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/shared/cache", loc.Directory)
	assert.Equal(t, "s3://bucket/shared/cache/note.txt", loc.Path())
}

func TestResolve_InvalidNames(t *testing.T) {
	resolver := storage.NewResolver(storage.HostDirectories{InternalRoot: t.TempDir()})
	config := storage.StorageConfig{Persistent: true, Internal: true}

	for _, name := range []string{"", ".", "..", "../escape.txt", "nested/file.txt", `win\file.txt`} {
		_, err := resolver.Resolve(config, name)
		assert.ErrorIs(t, err, storage.ErrInvalidName, "name %q should be rejected", name)

		var configErr *storage.ConfigError
		assert.ErrorAs(t, err, &configErr, "name %q should be a config error", name)
	}
}

func TestDirectories(t *testing.T) {
	resolver := storage.NewResolver(storage.HostDirectories{InternalRoot: t.TempDir()})

	statuses := resolver.Directories()
	require.Len(t, statuses, 4)

	for _, s := range statuses {
		if s.Kind.Internal() {
			assert.NoError(t, s.Err, "%s should be available", s.Kind)
			assert.NotEmpty(t, s.Path)
		} else {
			assert.ErrorIs(t, s.Err, storage.ErrUnavailable, "%s should be unavailable", s.Kind)
		}
	}
}

func TestHostDirectories_ExtraDirectories(t *testing.T) {
	dirs := storage.HostDirectories{
		InternalRoot: filepath.Join(t.TempDir(), "internal"),
		ExternalRoot: t.TempDir(),
	}

	custom, err := dirs.NamedDir("custom")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirs.InternalRoot, "custom"), custom)

	pictures, err := dirs.PicturesDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirs.ExternalRoot, "files", "Pictures"), pictures)

	_, err = dirs.NamedDir("../escape")
	assert.ErrorIs(t, err, storage.ErrInvalidName)

	_, err = storage.HostDirectories{InternalRoot: dirs.InternalRoot}.PicturesDir()
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}
