// Contexts command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
)

var contextsCmd = &cobra.Command{
	Use:   "contexts <file> [context...]",
	Short: "Show or replace the cached contexts for a connection",
	Long: `With no contexts, prints the cached context names for the connection.
With contexts, replaces the cached set wholesale; contexts absent from
the new set are dropped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "contexts:", err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "contexts:", err)
			os.Exit(exitSysError)
		}

		if len(args) > 1 {
			if err := store.ReplaceContexts(id, args[1:]); err != nil {
				fmt.Fprintln(os.Stderr, "replace contexts:", err)
				os.Exit(exitSysError)
			}
		}

		contexts := store.ReadContexts(id)
		if flagJSON {
			if err := printJSON(contexts); err != nil {
				fmt.Fprintln(os.Stderr, "contexts:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		for _, name := range contexts {
			fmt.Println(name)
		}
		return nil
	},
}
