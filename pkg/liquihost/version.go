// Package liquihost identifies the liquihost release.
package liquihost

// Version is the liquihost release version.
const Version = "0.1.0"
