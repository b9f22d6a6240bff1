package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "CLI tool for the battleship game engine",
		Long: `battleship runs the naval combat game engine locally.

It can simulate computer-vs-computer matches, print generated fleet layouts,
and play a match against the computer from the terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seeded = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := cfg.Level()
			logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")
	rootCmd.PersistentFlags().IntVar(&cfg.Width, "width", cfg.Width, "Board width (env: BATTLESHIP_BOARD_WIDTH)")
	rootCmd.PersistentFlags().IntVar(&cfg.Height, "height", cfg.Height, "Board height (env: BATTLESHIP_BOARD_HEIGHT)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible computer players (env: BATTLESHIP_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BATTLESHIP_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newFleetCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// newApp wires an application. Seeded runs offset the seed so that each
// simulated game draws from its own reproducible sequence.
func newApp(offset uint64) *factory.App {
	return factory.New(factory.Config{
		Logger: logger,
		Seed:   cfg.Seed + offset,
		Seeded: cfg.Seeded,
	})
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
