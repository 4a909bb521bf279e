// Recent command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
)

var recentCmd = &cobra.Command{
	Use:   "recent <file>",
	Short: "List recently used changelogs for a connection",
	Long: `Recent prints the changelog files recorded for a connection, most
recently used first. The cache keeps at most five per connection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "recent:", err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "recent:", err)
			os.Exit(exitSysError)
		}

		changelogs := store.ReadChangelogs(id)
		if flagJSON {
			if err := printJSON(changelogs); err != nil {
				fmt.Fprintln(os.Stderr, "recent:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		for _, path := range changelogs {
			fmt.Println(path)
		}
		return nil
	},
}
