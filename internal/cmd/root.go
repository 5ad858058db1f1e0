// Package cmd implements the sqlregex command line.
package cmd

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/config"
	"github.com/tds-django/sqlregex/internal/log"
)

// Version is set at build time.
var Version = "devel"

var rootCmd = &cobra.Command{
	Use:   "sqlregex",
	Short: "Regular expression functions for SQLite",
	Long: `sqlregex registers django_regex, django_iregex, regexp, django_lpad and
django_rpad as SQL scalar functions and runs queries or single matches with them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(Version)); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and installs the logger. Every subcommand
// calls it first.
func setup(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
	if _, err := log.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.JSON); err != nil {
		return nil, err
	}
	return cfg, nil
}
