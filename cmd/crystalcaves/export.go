package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/CrystalCaves/internal/export"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

var (
	flagOut       string
	flagSolveOnce bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of the starting board",
	Long: `Build the starting board and write it as one row of tokens per line:

  S exit   P path   X obstacle   R reflection   M crystal   . empty

Examples:
  crystalcaves export --out -
  crystalcaves export --level levels/tutorial.yaml --solve --out tutorial.txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "", "Destination file, - for stdout (empty to use config default)")
	exportCmd.Flags().BoolVar(&flagSolveOnce, "solve", false, "Solve a path before exporting")
}

func runExport(cmd *cobra.Command, _ []string) error {
	var exporter export.Exporter
	switch flagOut {
	case "":
		// Configured export.path
	case "-":
		exporter = &export.WriterExporter{W: cmd.OutOrStdout(), Name: "stdout"}
	default:
		exporter = export.NewFileExporter(flagOut)
	}

	engine, err := newEngine(cmd.Context(), exporter)
	if err != nil {
		return err
	}

	if flagSolveOnce {
		if _, err := engine.Apply(core.SolvePath{}); err != nil {
			return fmt.Errorf("solving: %w", err)
		}
	}
	if _, err := engine.Apply(core.ExportBoard{}); err != nil {
		return err
	}

	log.Debug().Str("game_id", engine.GameID()).Msg("Export finished")
	return nil
}
