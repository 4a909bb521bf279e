// Root command for the liquihost CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/liquihost/liquihost/internal/paths"
	"github.com/liquihost/liquihost/pkg/liquihost"
)

// Exit codes: user errors (bad arguments, missing files) exit 1, system
// errors (I/O, lock failures) exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir and configListSeparator hold values loaded from
// config.yaml. Set by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir       string
	configListSeparator rune
)

var rootCmd = &cobra.Command{
	Use:     "liquihost",
	Short:   "Liquihost manages Liquibase connection properties files",
	Version: liquihost.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListSeparator, err = parseListSeparator(cfg.GetString(cfgKeyListSeparator))
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(contextsCmd)
	rootCmd.AddCommand(clearCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > LIQUIHOST_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LIQUIHOST_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
