// Version command for the liquihost CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/pkg/liquihost"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the liquihost version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("liquihost", liquihost.Version)
	},
}
