// Show command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a connection file with passwords masked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitUserError)
		}

		codec, err := newCodec()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		cfg, err := codec.LoadFile(workFS, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load connection:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(masked(cfg)); err != nil {
				fmt.Fprintln(os.Stderr, "show:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Print(codec.Preview(cfg))
		return nil
	},
}
