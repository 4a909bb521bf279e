// Fmt command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/fsio"
	"github.com/liquihost/liquihost/internal/paths"
)

var flagFmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Regenerate a connection file in canonical form",
	Long: `Fmt parses a connection properties file and re-emits it with canonical
key order, grouping comments, and a deduplicated classpath. Without
--write the result goes to stdout; the file is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "fmt:", err)
			os.Exit(exitUserError)
		}
		if !fsio.Exists(workFS, path) {
			fmt.Fprintf(os.Stderr, "no such file %q\n", args[0])
			os.Exit(exitUserError)
		}

		codec, err := newCodec()
		if err != nil {
			fmt.Fprintln(os.Stderr, "fmt:", err)
			os.Exit(exitSysError)
		}

		cfg, err := codec.LoadFile(workFS, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load connection:", err)
			os.Exit(exitSysError)
		}

		if flagFmtWrite {
			if err := codec.SaveFile(workFS, path, cfg); err != nil {
				fmt.Fprintln(os.Stderr, "write connection:", err)
				os.Exit(exitSysError)
			}
			fmt.Println("Formatted", path)
			return nil
		}

		fmt.Print(codec.Serialize(cfg))
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&flagFmtWrite, "write", false, "rewrite the file in place")
}
