// Package main implements the domkit CLI: helpers over static HTML files
// and live pages, built on pkg/domutil.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"domkit/internal/config"
	"domkit/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	logger  *zap.Logger
	profile config.Profile
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "domkit",
	Short: "domkit - DOM helper toolbox for static HTML and live pages",
	Long: `domkit inspects HTML documents and live pages using the helper
layer in pkg/domutil: tag lookup, form enable/disable, debounced file
watching, and viewport/page coordinate resolution through a headless
browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		profile, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		logger.Debug("profile loaded",
			zap.Strings("tags", profile.Tags),
			zap.Duration("watch_delay", profile.WatchDelay),
			zap.Bool("page_relative", profile.PageRelative))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "profile file path")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(enableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
