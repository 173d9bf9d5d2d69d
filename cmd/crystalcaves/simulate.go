package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/CrystalCaves/internal/config"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game"
	"github.com/mitchelldurbincs/CrystalCaves/internal/game/core"
)

var (
	flagMoves int
	flagEvery int
	flagSolve bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Walk the player randomly and print the board",
	Long: `Walk the player randomly across the board, leaving a crystal trail,
and print the board as it changes. The walk stops early when the player
reaches the exit or has nowhere to go.

Examples:
  crystalcaves simulate --moves 40 --seed 7
  crystalcaves simulate --moves 200 --every 0 --solve`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMoves, "moves", 30, "Number of moves to make")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 10, "Print the board every N moves (0 = only at the end)")
	simulateCmd.Flags().BoolVar(&flagSolve, "solve", false, "Solve a path once the walk ends")
}

// walkerRNG returns the random walker's own stream, offset from the engine's
// seed so move choices never mirror obstacle placement
func walkerRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + 1))
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(cmd.Context(), nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	seed := config.Get().Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := walkerRNG(seed)

	fmt.Fprintf(out, "Game %s\n%s\n", engine.GameID(), engine.BoardString())

	for move := 1; move <= flagMoves; move++ {
		if engine.IsStuck() {
			fmt.Fprintf(out, "Player is stuck after %d moves\n", move-1)
			break
		}

		moves := engine.LegalMoves()
		target := moves[rng.Intn(len(moves))]
		res, err := engine.Apply(&core.MovePlayer{Target: target})
		if err != nil {
			return fmt.Errorf("move %d: %w", move, err)
		}
		if res.RolledOver {
			fmt.Fprintf(out, "Move %d: the cave shifts (%d new obstacles)\n", move, len(res.NewObstacles))
		}
		if flagEvery > 0 && move%flagEvery == 0 {
			fmt.Fprintf(out, "After move %d:\n%s\n", move, engine.BoardString())
		}
		if res.ExitReached {
			fmt.Fprintf(out, "Exit reached on move %d!\n", move)
			break
		}
	}

	if flagSolve {
		res, err := engine.Apply(core.SolvePath{})
		if err != nil {
			return fmt.Errorf("solving: %w", err)
		}
		fmt.Fprintf(out, "Path length: %d\n", len(res.Path))
	}

	fmt.Fprintf(out, "Final board:\n%s\n", engine.BoardString())
	printStats(cmd, engine.Stats())

	log.Debug().Int64("seed", seed).Msg("Simulation finished")
	return nil
}

func printStats(cmd *cobra.Command, s game.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Turn %d/%d (%d until the cave shifts)\n", s.TurnCounter, s.Threshold, s.TurnsUntilRollover())
	fmt.Fprintf(out, "Moves: %d  Rollovers: %d  Exits reached: %d\n", s.Moves, s.Rollovers, s.ExitsReached)
	fmt.Fprintf(out, "Crystals: %d  Reflections: %d  Obstacles: %d  Path: %d\n",
		s.BaseCrystals, s.ReflectedCrystals, s.BlockedCells, s.PathLength)
}
