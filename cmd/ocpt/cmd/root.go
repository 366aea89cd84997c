package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opendfg/ocpt/internal/config"
	"github.com/opendfg/ocpt/internal/obslog"
)

var (
	cfgFile    string
	verbose    bool
	permissive bool

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd is the base command and has no subcommands: it runs discovery
// (runDiscover) itself, as a one-positional-argument CLI (spec §6).
var rootCmd = &cobra.Command{
	Use:   "ocpt BASENAME",
	Short: "Discover and conformance-check an object-centric process tree",
	Long: `ocpt reads an object-centric event log, discovers a process tree over
it, and scores the tree against the log's traces for fitness, precision,
and F-score.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger = obslog.New(level, cfg.Log.Format, os.Stderr)

		return nil
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on any parse or I/O failure (spec §6).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&permissive, "permissive", false, "drop dangling object references instead of failing")
}
