package types

// NoPreConfiguredDriver is the DatabaseTypeKey sentinel for a connection
// whose driver class is not one of the pre-configured catalog entries.
// Only with this sentinel is DriverClassName meaningful.
const NoPreConfiguredDriver = "NO_PRE_CONFIGURED_DRIVER"

// Connection holds the credentials and driver selection for one database
// connection. A Configuration owns two of these: the primary connection
// and the optional reference connection used by diff-style commands.
type Connection struct {
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`

	// DatabaseTypeKey is a driver catalog key (for example "MariaDB"),
	// or NoPreConfiguredDriver when the driver class was given verbatim.
	DatabaseTypeKey string `json:"databaseTypeKey"`

	// DriverClassName is the explicit JDBC driver class. It is set only
	// when DatabaseTypeKey is NoPreConfiguredDriver; otherwise the class
	// comes from the catalog.
	DriverClassName string `json:"driverClassName,omitempty"`
}

// NewConnection returns a Connection with no driver selected.
func NewConnection() Connection {
	return Connection{DatabaseTypeKey: NoPreConfiguredDriver}
}

// HasData reports whether any of username, password, url or driver is set.
// Serialization skips connections without data.
func (c Connection) HasData() bool {
	return c.Username != "" || c.Password != "" || c.URL != "" || c.HasDriver()
}

// HasDriver reports whether a driver is selected, either by catalog key
// or by explicit class name.
func (c Connection) HasDriver() bool {
	if c.DatabaseTypeKey != "" && c.DatabaseTypeKey != NoPreConfiguredDriver {
		return true
	}
	return c.DriverClassName != ""
}

// Clone returns an independent copy of the connection.
func (c Connection) Clone() Connection {
	return c
}
