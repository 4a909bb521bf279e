// Package types defines the connection configuration entities and the
// standard error values shared across liquihost: the Configuration record
// parsed from and serialized to *.liquibase.properties files, its primary
// and reference database connections, and the insertion-ordered overflow
// bucket for free-form keys.
package types
