package types

// Configuration status values. A record is NEW when created from scratch
// and EDIT when loaded from an existing properties file.
const (
	StatusNew  = "NEW"
	StatusEdit = "EDIT"
)

// Configuration is the in-memory form of one *.liquibase.properties file.
// It is built either empty (StatusNew) or by parsing a file (StatusEdit),
// mutated field by field while the user edits, and discarded after a save
// or cancel. Its only persistent identity is the file it round-trips
// through.
type Configuration struct {
	Status        string `json:"status"`
	Name          string `json:"name"`
	ChangelogFile string `json:"changelogFile,omitempty"`

	// ClasspathEntries holds the classpath paths in the order they were
	// typed or parsed. Quoting and deduplication happen at serialization
	// time; entries here stay raw.
	ClasspathEntries []string `json:"classpathEntries,omitempty"`

	// Primary is always present.
	Primary Connection `json:"primaryConnection"`

	// Reference is the optional secondary connection for diff-style
	// commands. It stays nil until EnsureReference creates it.
	Reference *Connection `json:"referenceConnection,omitempty"`

	// Extra preserves keys outside the canonical set, verbatim.
	Extra *ExtraConfig `json:"additionalConfiguration,omitempty"`
}

// NewConfiguration returns an empty record with StatusNew.
func NewConfiguration(name string) *Configuration {
	return newConfiguration(name, StatusNew)
}

// NewParsedConfiguration returns an empty record with StatusEdit, ready
// to be filled by the properties parser.
func NewParsedConfiguration(name string) *Configuration {
	return newConfiguration(name, StatusEdit)
}

func newConfiguration(name, status string) *Configuration {
	return &Configuration{
		Status:  status,
		Name:    name,
		Primary: NewConnection(),
		Extra:   NewExtraConfig(),
	}
}

// EnsureReference returns the reference connection, creating it with
// default fields on first use. Mutations through the returned pointer
// never touch the primary connection.
func (c *Configuration) EnsureReference() *Connection {
	if c.Reference == nil {
		ref := NewConnection()
		c.Reference = &ref
	}
	return c.Reference
}

// HasReference reports whether a reference connection exists.
func (c *Configuration) HasReference() bool {
	return c.Reference != nil
}

// Clone returns a deep copy. The copy shares nothing with the original;
// mutating one never affects the other.
func (c *Configuration) Clone() *Configuration {
	out := &Configuration{
		Status:        c.Status,
		Name:          c.Name,
		ChangelogFile: c.ChangelogFile,
		Primary:       c.Primary.Clone(),
	}
	if len(c.ClasspathEntries) > 0 {
		out.ClasspathEntries = make([]string, len(c.ClasspathEntries))
		copy(out.ClasspathEntries, c.ClasspathEntries)
	}
	if c.Reference != nil {
		ref := c.Reference.Clone()
		out.Reference = &ref
	}
	if c.Extra != nil {
		out.Extra = c.Extra.Clone()
	}
	return out
}
