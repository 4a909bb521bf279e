package types

import "testing"

func TestNewConfigurationDefaults(t *testing.T) {
	c := NewConfiguration("dev")
	if c.Status != StatusNew {
		t.Errorf("Status = %q, want %q", c.Status, StatusNew)
	}
	if c.Name != "dev" {
		t.Errorf("Name = %q, want %q", c.Name, "dev")
	}
	if c.Primary.DatabaseTypeKey != NoPreConfiguredDriver {
		t.Errorf("Primary.DatabaseTypeKey = %q, want sentinel", c.Primary.DatabaseTypeKey)
	}
	if c.Reference != nil {
		t.Error("Reference must be nil until EnsureReference is called")
	}
	if c.Extra == nil || c.Extra.Len() != 0 {
		t.Error("Extra must be empty, not nil")
	}
}

func TestNewParsedConfigurationStatus(t *testing.T) {
	c := NewParsedConfiguration("prod")
	if c.Status != StatusEdit {
		t.Errorf("Status = %q, want %q", c.Status, StatusEdit)
	}
}

func TestEnsureReference(t *testing.T) {
	c := NewConfiguration("dev")

	ref := c.EnsureReference()
	if ref == nil {
		t.Fatal("EnsureReference returned nil")
	}
	if ref.DatabaseTypeKey != NoPreConfiguredDriver {
		t.Errorf("reference DatabaseTypeKey = %q, want sentinel", ref.DatabaseTypeKey)
	}

	// Second call returns the same connection.
	ref.Username = "ru"
	again := c.EnsureReference()
	if again.Username != "ru" {
		t.Errorf("EnsureReference created a fresh connection, want the existing one")
	}
}

func TestReferenceIsolation(t *testing.T) {
	c := NewConfiguration("dev")
	c.Primary.Username = "primary-user"

	ref := c.EnsureReference()
	ref.Username = "reference-user"
	ref.Password = "secret"

	if c.Primary.Username != "primary-user" {
		t.Errorf("Primary.Username = %q, mutated by reference edit", c.Primary.Username)
	}
	if c.Primary.Password != "" {
		t.Errorf("Primary.Password = %q, mutated by reference edit", c.Primary.Password)
	}

	c.Primary.URL = "jdbc:h2://localhost"
	if c.Reference.URL != "" {
		t.Errorf("Reference.URL = %q, mutated by primary edit", c.Reference.URL)
	}
}

func TestConfigurationClone(t *testing.T) {
	c := NewConfiguration("dev")
	c.ChangelogFile = "changelog.xml"
	c.ClasspathEntries = []string{"a.jar", "b.jar"}
	c.Primary.Username = "u"
	c.EnsureReference().URL = "jdbc:h2://ref"
	c.Extra.Set("logLevel", "info")

	clone := c.Clone()

	clone.ClasspathEntries[0] = "changed.jar"
	clone.Reference.URL = "jdbc:h2://other"
	clone.Extra.Set("logLevel", "debug")
	clone.Primary.Username = "other"

	if c.ClasspathEntries[0] != "a.jar" {
		t.Error("Clone shares ClasspathEntries with the original")
	}
	if c.Reference.URL != "jdbc:h2://ref" {
		t.Error("Clone shares Reference with the original")
	}
	if v, _ := c.Extra.Get("logLevel"); v != "info" {
		t.Error("Clone shares Extra with the original")
	}
	if c.Primary.Username != "u" {
		t.Error("Clone shares Primary with the original")
	}
}

func TestConnectionHasData(t *testing.T) {
	tests := []struct {
		name string
		conn Connection
		want bool
	}{
		{"empty", NewConnection(), false},
		{"username only", Connection{Username: "u", DatabaseTypeKey: NoPreConfiguredDriver}, true},
		{"password only", Connection{Password: "p", DatabaseTypeKey: NoPreConfiguredDriver}, true},
		{"url only", Connection{URL: "jdbc:h2://x", DatabaseTypeKey: NoPreConfiguredDriver}, true},
		{"catalog driver", Connection{DatabaseTypeKey: "MariaDB"}, true},
		{"explicit driver class", Connection{DatabaseTypeKey: NoPreConfiguredDriver, DriverClassName: "com.example.Driver"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conn.HasData(); got != tt.want {
				t.Errorf("HasData() = %v, want %v", got, tt.want)
			}
		})
	}
}
