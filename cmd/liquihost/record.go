// Record command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
)

var recordCmd = &cobra.Command{
	Use:   "record <file> <changelog>",
	Short: "Record a changelog use for a connection",
	Long: `Record stamps the changelog as the most recently used one for the
connection. When a sixth distinct changelog is recorded, the least
recently used entry is dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "record:", err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "record:", err)
			os.Exit(exitSysError)
		}

		if err := store.RecordChangelogUse(id, args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "record changelog:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Recorded %s for %s\n", args[1], id)
		return nil
	},
}
