// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg config.Config
	log = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "N×N×N cube simulator",
	Long: `twisty - A Rubik's-style cube simulator for 2x2 up to large cubes.

Apply moves in standard notation, generate scrambles, get beginner-friendly
explanations of a sequence, practise in an interactive terminal session or
serve sessions to a browser renderer over HTTP.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.twisty/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads preferences and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	log, err = newLogger(verbose, cfg.LogLevel)
	if err != nil {
		return err
	}
	twisty.SetLogger(log)
	log.Debug("config loaded", zap.String("path", cfg.Path()))
	return nil
}

// newLogger returns a development logger when verbose, otherwise a
// production logger at level.
func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// engineOptions lets commands accept any size the config asks for.
func engineOptions(size int) []twisty.Option {
	if size > twisty.DefaultMaxSize {
		return []twisty.Option{twisty.WithMaxSize(size), twisty.WithLogger(log)}
	}
	return []twisty.Option{twisty.WithLogger(log)}
}
