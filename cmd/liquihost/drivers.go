// Drivers command for the liquihost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/driverdb"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List the pre-configured JDBC drivers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := driverdb.New()
		if err != nil {
			fmt.Fprintln(os.Stderr, "drivers:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out := make(map[string]driverdb.Driver, len(catalog.Keys()))
			for _, key := range catalog.Keys() {
				d, _ := catalog.Lookup(key)
				out[key] = d
			}
			if err := printJSON(out); err != nil {
				fmt.Fprintln(os.Stderr, "drivers:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		for _, key := range catalog.Keys() {
			d, _ := catalog.Lookup(key)
			if d.DefaultPort != 0 {
				fmt.Printf("%-12s %-42s %d\n", key, d.ClassName, d.DefaultPort)
			} else {
				fmt.Printf("%-12s %s\n", key, d.ClassName)
			}
		}
		return nil
	},
}
