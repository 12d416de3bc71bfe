package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/edge/internal/application/clock"
	"github.com/younwookim/edge/internal/application/game"
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/replay"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/infrastructure/platform"
)

type playOptions struct {
	*options
	seed   int64
	record string
}

func (p *playOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&p.seed, "seed", 0, "level generation seed (default: current time)")
	cmd.Flags().StringVar(&p.record, "record", "", "record input to this file (e.g. --record replay.json)")
}

func newPlayCmd(opts *options) *cobra.Command {
	p := &playOptions{options: opts}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, p)
		},
	}
	p.bindFlags(cmd)
	return cmd
}

func runPlay(cmd *cobra.Command, p *playOptions) error {
	cfg, loader, logger, err := p.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	keys, err := platform.NewKeymap(cfg.Keys)
	if err != nil {
		return err
	}

	seed := p.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	decoded := platform.Decode(ctx, loader, cfg.Assets, logger)
	assets := platform.Upload(decoded, cfg.Assets, logger)
	bank := platform.NewAudioBank(audio.NewContext(platform.SampleRate), assets, logger)

	sc := scene.NewContext(cfg, bank, logger, rand.New(rand.NewSource(seed)))
	session := game.New(sc)

	var rec *replay.Recorder
	if p.record != "" {
		rec = replay.NewRecorder(seed)
		session.Record(rec)
		logger.Info("recording enabled", "file", p.record, "seed", seed)
	}

	clk := clock.New(cfg.Timing.StallThreshold, logger)
	session.Now = clk.Now

	g := game.NewGame(session,
		platform.NewInputSource(keys),
		clk,
		func(screen *ebiten.Image) gfx.Canvas { return platform.NewCanvas(screen, assets) },
	)

	d := cfg.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	logger.Info("starting", "seed", seed)
	runErr := ebiten.RunGame(g)

	if rec != nil {
		rec.Stop()
		if err := saveRecording(p.record, rec, logger); err != nil {
			logger.Error("failed to save recording", "err", err)
		}
	}
	return runErr
}

func saveRecording(path string, rec *replay.Recorder, logger *log.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := rec.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	logger.Info("recording saved", "file", path, "frames", rec.FrameCount())
	return nil
}
