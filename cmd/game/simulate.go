package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/edge/internal/application/game"
	"github.com/younwookim/edge/internal/application/replay"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// SimulationResult is the session state after replaying every frame.
type SimulationResult struct {
	Frames   int
	State    state.GameState
	Altitude float64
	Progress float64
	Fuel     float64
	Shield   float64
	Outcome  state.Event
	Reason   string
}

func newSimulateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <replay.json>",
		Short: "Replay a recording headless and print where the run ended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			data, err := replay.Load(f)
			if err != nil {
				return err
			}

			res := simulate(cfg, data, logger)
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// simulate drives a fresh session through the recorded frames without a window.
func simulate(cfg *config.GameConfig, data *replay.ReplayData, logger *log.Logger) SimulationResult {
	replayer := replay.NewReplayer(*data)
	ctx := scene.NewContext(cfg, nil, logger, rand.New(rand.NewSource(replayer.Seed())))
	session := game.New(ctx)

	for {
		dt, raw, ok := replayer.Next()
		if !ok {
			break
		}
		session.Step(dt, raw)
	}

	res := SimulationResult{Frames: replayer.TotalFrames(), State: session.State()}
	if run := ctx.Run; run != nil {
		res.Altitude = run.Player.Pos.Y
		res.Progress = run.Level.Progress(run.Player.Pos.Y)
		res.Fuel = run.Player.Fuel
		res.Shield = run.Player.Shield
		res.Outcome = run.Outcome
		res.Reason = string(run.Reason)
	}
	return res
}

func printResult(w io.Writer, r SimulationResult) {
	fmt.Fprintf(w, "frames:   %d\n", r.Frames)
	fmt.Fprintf(w, "state:    %s\n", r.State)
	fmt.Fprintf(w, "altitude: %.1f (%.0f%%)\n", r.Altitude, r.Progress*100)
	fmt.Fprintf(w, "fuel:     %.2f\n", r.Fuel)
	fmt.Fprintf(w, "shield:   %.0f\n", r.Shield)
	if r.Outcome != state.EventNone {
		fmt.Fprintf(w, "outcome:  %s %s\n", r.Outcome, r.Reason)
	}
}
