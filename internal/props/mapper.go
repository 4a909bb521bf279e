package props

import (
	"os"
	"unicode"

	"github.com/liquihost/liquihost/internal/driverdb"
	"github.com/liquihost/liquihost/pkg/types"
)

// Canonical property keys. Each may appear with the "reference" prefix
// and an upper-camel canonical part (referenceUsername, referenceUrl, ...)
// to target the reference connection instead of the primary one.
const (
	KeyChangelogFile = "changelogFile"
	KeyClasspath     = "classpath"
	KeyUsername      = "username"
	KeyPassword      = "password"
	KeyURL           = "url"
	KeyDriver        = "driver"
)

const referencePrefix = "reference"

// Mapper routes one raw key/value pair from a properties file onto a
// Configuration. It never fails: keys outside the canonical set land
// verbatim in the record's overflow bucket, so any file the line-level
// parser accepts maps to a record.
type Mapper struct {
	// Catalog resolves driver class names to database type keys.
	Catalog *driverdb.Catalog

	// ListSeparator splits classpath values; zero means the platform
	// separator (';' on Windows, ':' elsewhere).
	ListSeparator rune
}

// Apply routes rawKey/rawValue onto cfg. Later applications of the same
// canonical key overwrite earlier ones.
func (m Mapper) Apply(cfg *types.Configuration, rawKey, rawValue string) {
	canonical, isReference := splitReferenceKey(rawKey)

	switch canonical {
	case KeyChangelogFile:
		// A reference-prefixed changelog key is a plain changelog
		// override; the changelog is not a per-connection field.
		cfg.ChangelogFile = rawValue
	case KeyClasspath:
		cfg.ClasspathEntries = SplitClasspath(rawValue, m.separator())
	case KeyUsername:
		m.target(cfg, isReference).Username = rawValue
	case KeyPassword:
		m.target(cfg, isReference).Password = rawValue
	case KeyURL:
		m.target(cfg, isReference).URL = rawValue
	case KeyDriver:
		conn := m.target(cfg, isReference)
		if key, ok := m.Catalog.KeyForClass(rawValue); ok {
			conn.DatabaseTypeKey = key
			conn.DriverClassName = ""
		} else {
			conn.DatabaseTypeKey = types.NoPreConfiguredDriver
			conn.DriverClassName = rawValue
		}
	default:
		// Unknown keys keep their original, non-dereferenced form.
		if cfg.Extra == nil {
			cfg.Extra = types.NewExtraConfig()
		}
		cfg.Extra.Set(rawKey, rawValue)
	}
}

func (m Mapper) separator() rune {
	if m.ListSeparator != 0 {
		return m.ListSeparator
	}
	return os.PathListSeparator
}

func (m Mapper) target(cfg *types.Configuration, reference bool) *types.Connection {
	if reference {
		return cfg.EnsureReference()
	}
	return &cfg.Primary
}

// splitReferenceKey strips the reference prefix from rawKey when the key
// has the form "reference" + UpperCamel(rest), returning the canonical
// key and true. Any other key is returned unchanged.
func splitReferenceKey(rawKey string) (string, bool) {
	rest, ok := cutReferencePrefix(rawKey)
	if !ok {
		return rawKey, false
	}
	return lowerFirst(rest), true
}

func cutReferencePrefix(key string) (string, bool) {
	if len(key) <= len(referencePrefix) || key[:len(referencePrefix)] != referencePrefix {
		return "", false
	}
	rest := key[len(referencePrefix):]
	r := []rune(rest)
	if !unicode.IsUpper(r[0]) {
		return "", false
	}
	return rest, true
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// referenceKey builds the reference-prefixed form of a canonical key.
func referenceKey(canonical string) string {
	r := []rune(canonical)
	r[0] = unicode.ToUpper(r[0])
	return referencePrefix + string(r)
}
