// crystalcaves is a triangle-grid crystal puzzle.
//
// Usage:
//
//	crystalcaves play                 - Open the game window
//	crystalcaves simulate --moves 50  - Random walk in the terminal
//	crystalcaves export --out -       - Write a board snapshot
//
// Global flags:
//
//	--config <path>     - Config file (default: ./config.yaml if present)
//	--seed <value>      - RNG seed for reproducible boards (0 = clock)
//	--level <path>      - Start from a YAML level instead of a generated board
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/export"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/level"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLevel    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crystalcaves",
	Short: "Crystal Caves - grow crystals across a triangle grid to reach the exit",
	Long: `Crystal Caves is a puzzle on a grid of alternating triangles.

Place crystals, watch them reflect across the cave and find a crystal
path to the exit before the cave shifts around you.

Examples:
  crystalcaves play
  crystalcaves play --level levels/tutorial.yaml
  crystalcaves simulate --moves 40 --seed 7
  crystalcaves export --out board_state.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a YAML level file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadSettings reads the config file and lets explicit flags override it
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := config.Init(flagConfig); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("seed") {
		overrides["game.seed"] = flagSeed
	}
	if cmd.Flags().Changed("level") {
		overrides["game.level"] = flagLevel
	}
	if flagLogLevel != "" {
		overrides["log.level"] = flagLogLevel
	}
	for key, value := range overrides {
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("flag %s: %w", key, err)
		}
	}

	cfg := config.Get()
	setupLogging(cfg.Log)
	log.Debug().
		Str("config_file", config.ConfigFilePath()).
		Int64("seed", cfg.Game.Seed).
		Str("level", cfg.Game.Level).
		Msg("Settings loaded")
	return nil
}

func setupLogging(lc config.LogConfig) {
	logLevel, err := zerolog.ParseLevel(lc.Level)
	if err != nil || lc.Level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// JSON output when asked for or in production
	if lc.Format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// newEngine builds an engine from the loaded settings. A non-nil exporter
// replaces the configured export destination.
func newEngine(ctx context.Context, exporter export.Exporter) (*game.Engine, error) {
	cfg := config.Get()
	gc := game.GameConfigFromSettings(cfg, log.Logger)

	if cfg.Game.Level != "" {
		lvl, err := level.Load(cfg.Game.Level)
		if err != nil {
			return nil, fmt.Errorf("loading level: %w", err)
		}
		gc.Level = lvl
	}
	if exporter != nil {
		gc.Exporter = exporter
	}

	engine, err := game.NewEngine(ctx, gc)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return engine, nil
}
