// Clear command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
)

var clearCmd = &cobra.Command{
	Use:   "clear [file...]",
	Short: "Clear the connection recency cache",
	Long: `With no arguments, removes the whole cache. With files, removes only
the cache entries for those connections, leaving others untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "clear:", err)
			os.Exit(exitSysError)
		}

		if len(args) == 0 {
			if err := store.RemoveAll(); err != nil {
				fmt.Fprintln(os.Stderr, "clear cache:", err)
				os.Exit(exitSysError)
			}
			fmt.Println("Cleared connection cache")
			return nil
		}

		ids := make([]string, len(args))
		for i, arg := range args {
			id, err := paths.Canonical(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "clear:", err)
				os.Exit(exitUserError)
			}
			ids[i] = id
		}

		if err := store.RemoveConnections(ids); err != nil {
			fmt.Fprintln(os.Stderr, "clear connections:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Cleared %d connection(s) from cache\n", len(ids))
		return nil
	},
}
