package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window.

Controls:
  Left click   - Move to an adjacent cell, otherwise toggle a crystal
  Right click  - Toggle a crystal
  R            - Solve a path to the exit
  C            - Clear all crystals
  E            - Export the board snapshot
  Esc          - Quit

Colors and the reveal speed are reloaded when the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(cmd.Context(), nil)
	if err != nil {
		return err
	}

	cfg := config.Get()
	g := ui.NewGame(engine, cfg, log.Logger)

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(next *config.Config, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			g.ApplyConfig(next)
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
		})
	}

	log.Info().
		Str("game_id", engine.GameID()).
		Int("rows", engine.Board().Rows).
		Int("cols", engine.Board().Cols).
		Msg("Starting game window")
	return ui.Run(g, cfg.UI.Window.Title)
}
