// Package main provides the liquihost CLI, a manager for Liquibase
// connection properties files and the per-connection recency cache.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
