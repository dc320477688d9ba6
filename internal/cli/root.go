package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tessro/tidal-presence/internal/config"
	perrors "github.com/tessro/tidal-presence/internal/errors"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tidal-presence",
	Short: "Show what Tidal Hi-Fi is playing as Discord Rich Presence",
	Long: `tidal-presence polls the Tidal Hi-Fi web API and mirrors the current track
into Discord Rich Presence. It runs until interrupted, reconnecting to Discord
and Tidal Hi-Fi as they come and go.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config show must work on an invalid config so it can be inspected
		return initConfig(cmd != configShowCmd)
	},
	Args:          cobra.NoArgs,
	RunE:          runBridge,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.tidal-presence.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig(validate bool) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	if !validate {
		return nil
	}
	return cfg.Validate()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, perrors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
