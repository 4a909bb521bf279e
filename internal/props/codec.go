// Package props implements the bidirectional mapping between Liquibase
// properties files and Configuration records: a permissive ordered
// parser, a key router, the classpath assembler, and a deterministic
// serializer safe to re-run on every keystroke of a live preview.
package props

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/magiconair/properties"

	"github.com/liquihost/liquihost/internal/driverdb"
	"github.com/liquihost/liquihost/internal/fsio"
	"github.com/liquihost/liquihost/pkg/types"
)

// PasswordMask replaces password values in preview output.
const PasswordMask = "*****"

// FileSuffix is the conventional suffix for connection properties files.
const FileSuffix = ".liquibase.properties"

const (
	classpathComment = "Search path for changelog files and JDBC driver jars."
	extraComment     = "Additional configuration, passed through to Liquibase unchanged."
)

// Codec converts between properties text and Configuration records.
type Codec struct {
	// Catalog resolves driver classes in both directions.
	Catalog *driverdb.Catalog

	// ListSeparator joins and splits classpath values; zero means the
	// platform separator.
	ListSeparator rune
}

// NewCodec returns a codec using the platform list separator.
func NewCodec(catalog *driverdb.Catalog) *Codec {
	return &Codec{Catalog: catalog}
}

// Parse reads properties text into a Configuration with StatusEdit.
// Unknown keys are kept; duplicate keys resolve to the last occurrence;
// lines the underlying parser cannot read are skipped, never fatal.
func (c *Codec) Parse(text string) (*types.Configuration, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	cfg := types.NewParsedConfiguration("")
	mapper := Mapper{Catalog: c.Catalog, ListSeparator: c.ListSeparator}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		mapper.Apply(cfg, key, value)
	}
	return cfg, nil
}

// Serialize renders cfg in its on-disk form. This is the only rendering
// the save path uses; passwords are written as-is.
func (c *Codec) Serialize(cfg *types.Configuration) string {
	return c.render(cfg, false)
}

// Preview renders cfg for display, with password values replaced by
// PasswordMask. Preview output is never written to disk.
func (c *Codec) Preview(cfg *types.Configuration) string {
	return c.render(cfg, true)
}

func (c *Codec) render(cfg *types.Configuration, disguise bool) string {
	p := properties.NewProperties()
	p.DisableExpansion = true

	if cfg.ChangelogFile != "" {
		set(p, KeyChangelogFile, cfg.ChangelogFile)
	}

	c.renderConnection(p, cfg.Primary, false, disguise)
	if cfg.Reference != nil {
		c.renderConnection(p, *cfg.Reference, true, disguise)
	}

	if classpath := AssembleClasspath(cfg.ClasspathEntries, c.separator()); classpath != "" {
		set(p, KeyClasspath, classpath)
		p.SetComment(KeyClasspath, classpathComment)
	}

	if cfg.Extra != nil {
		for i, key := range cfg.Extra.Keys() {
			value, _ := cfg.Extra.Get(key)
			set(p, key, value)
			if i == 0 {
				p.SetComment(key, extraComment)
			}
		}
	}

	var buf bytes.Buffer
	// The writer cannot fail on a bytes.Buffer.
	_, _ = p.WriteComment(&buf, "# ", properties.UTF8)
	return unescapeSeparators(buf.String())
}

func (c *Codec) renderConnection(p *properties.Properties, conn types.Connection, reference, disguise bool) {
	if !conn.HasData() {
		return
	}
	key := func(canonical string) string {
		if reference {
			return referenceKey(canonical)
		}
		return canonical
	}

	if conn.Username != "" {
		set(p, key(KeyUsername), conn.Username)
	}
	if conn.Password != "" {
		value := conn.Password
		if disguise {
			value = PasswordMask
		}
		set(p, key(KeyPassword), value)
	}
	if conn.URL != "" {
		set(p, key(KeyURL), conn.URL)
	}
	if class := c.driverClass(conn); class != "" {
		set(p, key(KeyDriver), class)
	}
}

// driverClass resolves the class name to write for a connection: the
// catalog class for a known database type key, or the explicit class.
func (c *Codec) driverClass(conn types.Connection) string {
	if conn.DatabaseTypeKey != "" && conn.DatabaseTypeKey != types.NoPreConfiguredDriver {
		if d, ok := c.Catalog.Lookup(conn.DatabaseTypeKey); ok {
			return d.ClassName
		}
	}
	return conn.DriverClassName
}

func (c *Codec) separator() rune {
	if c.ListSeparator != 0 {
		return c.ListSeparator
	}
	return os.PathListSeparator
}

func set(p *properties.Properties, key, value string) {
	// Expansion is disabled, so Set cannot fail.
	_, _, _ = p.Set(key, value)
}

// unescapeSeparators undoes the key/value writer's escaping of colons and
// equals signs so JDBC URLs stay literal on disk.
func unescapeSeparators(s string) string {
	return strings.NewReplacer(`\:`, ":", `\=`, "=").Replace(s)
}

// LoadFile parses the properties file at path. A missing file is an
// empty record, not an error. The record's name is derived from the file
// name with the conventional suffix stripped.
func (c *Codec) LoadFile(fs billy.Filesystem, path string) (*types.Configuration, error) {
	name := ConnectionName(path)
	if !fsio.Exists(fs, path) {
		cfg := types.NewParsedConfiguration(name)
		return cfg, nil
	}

	text, err := fsio.ReadText(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", path, err, types.ErrReadFailed)
	}
	cfg, err := c.Parse(text)
	if err != nil {
		return nil, err
	}
	cfg.Name = name
	return cfg, nil
}

// SaveFile writes cfg's on-disk form to path. Preview rendering never
// goes through here.
func (c *Codec) SaveFile(fs billy.Filesystem, path string, cfg *types.Configuration) error {
	if err := fsio.WriteText(fs, path, c.Serialize(cfg)); err != nil {
		return fmt.Errorf("write %s: %v: %w", path, err, types.ErrWriteFailed)
	}
	return nil
}

// ConnectionName derives a display name from a properties file path.
func ConnectionName(path string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, FileSuffix) {
		return strings.TrimSuffix(base, FileSuffix)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
