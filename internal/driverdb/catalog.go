// Package driverdb provides the immutable catalog of pre-configured JDBC
// drivers. The catalog is built once from an embedded TOML table and
// passed by reference into the components that need driver lookups; there
// is no package-level mutable state.
package driverdb

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed drivers.toml
var driversTOML []byte

// Driver describes one pre-configured database driver.
type Driver struct {
	// ClassName is the JDBC driver class, for example
	// "org.mariadb.jdbc.Driver".
	ClassName string `toml:"class"`

	// DefaultPort is the engine's conventional port; 0 when the engine
	// has no network port (file-based databases).
	DefaultPort int `toml:"port"`
}

// Catalog maps database type keys to drivers and supports reverse lookup
// by driver class name. Construct it with New and treat it as read-only.
type Catalog struct {
	byKey   map[string]Driver
	byClass map[string]string
	keys    []string
}

type catalogFile struct {
	Drivers map[string]Driver `toml:"drivers"`
}

// New builds the catalog from the embedded driver table.
func New() (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(driversTOML, &file); err != nil {
		return nil, fmt.Errorf("parse driver table: %w", err)
	}
	return newFromEntries(file.Drivers)
}

func newFromEntries(entries map[string]Driver) (*Catalog, error) {
	c := &Catalog{
		byKey:   make(map[string]Driver, len(entries)),
		byClass: make(map[string]string, len(entries)),
	}
	for key, d := range entries {
		if d.ClassName == "" {
			return nil, fmt.Errorf("driver %q has no class name", key)
		}
		c.byKey[key] = d
		c.byClass[d.ClassName] = key
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return c, nil
}

// Lookup returns the driver for a database type key.
func (c *Catalog) Lookup(key string) (Driver, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

// KeyForClass returns the database type key whose driver class matches
// className, or false when no pre-configured driver uses that class.
func (c *Catalog) KeyForClass(className string) (string, bool) {
	key, ok := c.byClass[className]
	return key, ok
}

// Keys returns all database type keys in ascending order. The slice is a
// copy.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
