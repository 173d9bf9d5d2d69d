package game

import (
	"math/rand"
	"time"

	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/export"
	"github.com/rs/zerolog"
)

// Fallbacks used when a GameConfig leaves a field unset
const (
	DefaultRows          = 30
	DefaultCols          = 20
	DefaultThreshold     = 10
	DefaultObstacles     = 5
	DefaultAttemptFactor = 2
)

// GameConfigFromSettings builds a GameConfig from the loaded application
// configuration. A zero seed seeds the RNG from the clock. The level file, if
// any, is left for the caller to load.
func GameConfigFromSettings(cfg *config.Config, logger zerolog.Logger) GameConfig {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gc := GameConfig{
		Rows:          cfg.Game.Board.Rows,
		Cols:          cfg.Game.Board.Cols,
		Threshold:     cfg.Game.Turn.Threshold,
		Obstacles:     obstaclesFromSettings(cfg.Game.Rollover.Obstacles),
		AttemptFactor: cfg.Game.Rollover.AttemptFactor,
		Relation:      cfg.MirrorRelation(),
		AutoSeed:      cfg.Game.Solve.AutoSeed,
		Rng:           rand.New(rand.NewSource(seed)),
		Logger:        logger,
	}
	if cfg.Export.Path != "" {
		gc.Exporter = export.NewFileExporter(cfg.Export.Path)
	}
	return gc
}

// obstaclesFromSettings keeps a configured 0 meaning "no obstacles", which a
// zero GameConfig.Obstacles would otherwise turn into the default
func obstaclesFromSettings(n int) int {
	if n == 0 {
		return -1
	}
	return n
}
