// Shared helpers for liquihost CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/liquihost/liquihost/internal/cachestore"
	"github.com/liquihost/liquihost/internal/driverdb"
	"github.com/liquihost/liquihost/internal/paths"
	"github.com/liquihost/liquihost/internal/props"
	"github.com/liquihost/liquihost/pkg/types"
)

// workFS is the filesystem commands read and write properties files on.
// Commands canonicalize paths before touching it.
var workFS billy.Filesystem = osfs.New("/")

// newCodec builds a properties codec over the embedded driver catalog,
// honoring the list_separator config value.
func newCodec() (*props.Codec, error) {
	catalog, err := driverdb.New()
	if err != nil {
		return nil, fmt.Errorf("load driver catalog: %w", err)
	}
	codec := props.NewCodec(catalog)
	codec.ListSeparator = configListSeparator
	return codec, nil
}

// openStore resolves the data directory and opens the recency cache with
// cross-process locking.
func openStore() (*cachestore.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return cachestore.NewLockedStore(paths.CachePath(dataDir), &cachestore.SystemClock{}), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// masked returns a deep copy of cfg with password values replaced by the
// display mask, for output that must not leak credentials.
func masked(cfg *types.Configuration) *types.Configuration {
	out := cfg.Clone()
	if out.Primary.Password != "" {
		out.Primary.Password = props.PasswordMask
	}
	if out.Reference != nil && out.Reference.Password != "" {
		out.Reference.Password = props.PasswordMask
	}
	return out
}
