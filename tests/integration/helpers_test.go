// Package integration provides shared test helpers for integration tests.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/liquihost/liquihost/internal/cachestore"
	"github.com/liquihost/liquihost/internal/driverdb"
	"github.com/liquihost/liquihost/internal/props"
	"github.com/liquihost/liquihost/pkg/types"
)

// setupCodec builds a codec over the embedded driver catalog with a
// fixed separator so output is identical across platforms.
func setupCodec(t *testing.T) *props.Codec {
	t.Helper()
	catalog, err := driverdb.New()
	if err != nil {
		t.Fatalf("driverdb.New: %v", err)
	}
	codec := props.NewCodec(catalog)
	codec.ListSeparator = ':'
	return codec
}

// setupWorkspace returns an OS filesystem and an isolated temp directory
// for properties files. Each test gets its own directory.
func setupWorkspace(t *testing.T) (billy.Filesystem, string) {
	t.Helper()
	return osfs.New("/"), t.TempDir()
}

// setupLockedStore opens a flock-guarded store backed by a file inside
// an isolated temp directory, as the CLI does in production.
func setupLockedStore(t *testing.T) *cachestore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connections.json")
	return cachestore.NewLockedStore(path, &cachestore.SystemClock{})
}

// mustSave writes cfg to path or fails the test.
func mustSave(t *testing.T, codec *props.Codec, fs billy.Filesystem, path string, cfg *types.Configuration) {
	t.Helper()
	if err := codec.SaveFile(fs, path, cfg); err != nil {
		t.Fatalf("SaveFile(%q): %v", path, err)
	}
}

// mustLoad parses the file at path or fails the test.
func mustLoad(t *testing.T, codec *props.Codec, fs billy.Filesystem, path string) *types.Configuration {
	t.Helper()
	cfg, err := codec.LoadFile(fs, path)
	if err != nil {
		t.Fatalf("LoadFile(%q): %v", path, err)
	}
	return cfg
}
