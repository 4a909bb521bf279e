// New command for the liquihost CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/fsio"
	"github.com/liquihost/liquihost/internal/paths"
	"github.com/liquihost/liquihost/internal/props"
	"github.com/liquihost/liquihost/pkg/types"
)

var (
	flagNewURL       string
	flagNewUsername  string
	flagNewPassword  string
	flagNewDriver    string
	flagNewChangelog string
	flagNewClasspath []string
	flagNewExtra     []string
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a connection properties file",
	Long: `New writes a fresh connection properties file from the given flags.
The --driver value may be a database type key (see "liquihost drivers")
or a raw JDBC driver class name. Refuses to overwrite an existing file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.Canonical(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitUserError)
		}
		if fsio.Exists(workFS, path) {
			fmt.Fprintf(os.Stderr, "%q already exists (use set to modify it)\n", args[0])
			os.Exit(exitUserError)
		}

		codec, err := newCodec()
		if err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitSysError)
		}

		cfg := types.NewConfiguration(props.ConnectionName(path))
		cfg.ChangelogFile = flagNewChangelog
		cfg.ClasspathEntries = flagNewClasspath
		cfg.Primary.URL = flagNewURL
		cfg.Primary.Username = flagNewUsername
		cfg.Primary.Password = flagNewPassword
		applyDriver(codec, &cfg.Primary, flagNewDriver)

		for _, pair := range flagNewExtra {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				fmt.Fprintf(os.Stderr, "invalid --extra %q (want key=value)\n", pair)
				os.Exit(exitUserError)
			}
			if cfg.Extra == nil {
				cfg.Extra = types.NewExtraConfig()
			}
			cfg.Extra.Set(key, value)
		}

		if err := codec.SaveFile(workFS, path, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "write connection:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Created", path)
		if cfg.Primary.URL == "" {
			if d, ok := codec.Catalog.Lookup(cfg.Primary.DatabaseTypeKey); ok && d.DefaultPort != 0 {
				fmt.Printf("Hint: %s usually listens on port %d\n", cfg.Primary.DatabaseTypeKey, d.DefaultPort)
			}
		}
		return nil
	},
}

// applyDriver sets the connection's driver from a database type key or,
// when the value matches no pre-configured driver, a raw class name.
func applyDriver(codec *props.Codec, conn *types.Connection, value string) {
	if value == "" {
		return
	}
	if _, ok := codec.Catalog.Lookup(value); ok {
		conn.DatabaseTypeKey = value
		conn.DriverClassName = ""
		return
	}
	conn.DatabaseTypeKey = types.NoPreConfiguredDriver
	conn.DriverClassName = value
}

func init() {
	newCmd.Flags().StringVar(&flagNewURL, "url", "", "JDBC connection URL")
	newCmd.Flags().StringVar(&flagNewUsername, "username", "", "database username")
	newCmd.Flags().StringVar(&flagNewPassword, "password", "", "database password")
	newCmd.Flags().StringVar(&flagNewDriver, "driver", "", "database type key or JDBC driver class")
	newCmd.Flags().StringVar(&flagNewChangelog, "changelog", "", "changelog file path")
	newCmd.Flags().StringArrayVar(&flagNewClasspath, "classpath", nil, "classpath entry (repeatable)")
	newCmd.Flags().StringArrayVar(&flagNewExtra, "extra", nil, "additional key=value property (repeatable)")
}
