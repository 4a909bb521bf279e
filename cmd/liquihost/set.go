// Set command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
	"github.com/liquihost/liquihost/internal/props"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Set one property on a connection file",
	Long: `Set routes a raw properties key onto the connection record and rewrites
the file. Canonical keys (username, password, url, driver, changelogFile,
classpath) update their fields, reference-prefixed keys target the
reference connection, and anything else is kept as an extra property.
A missing file is created.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitUserError)
		}

		codec, err := newCodec()
		if err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitSysError)
		}

		cfg, err := codec.LoadFile(workFS, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load connection:", err)
			os.Exit(exitSysError)
		}

		mapper := props.Mapper{Catalog: codec.Catalog, ListSeparator: codec.ListSeparator}
		mapper.Apply(cfg, args[1], args[2])

		if err := codec.SaveFile(workFS, path, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "write connection:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(masked(cfg)); err != nil {
				fmt.Fprintln(os.Stderr, "set:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Print(codec.Preview(cfg))
		return nil
	},
}
