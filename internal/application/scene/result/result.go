// Package result provides the game over and victory screens.
package result

import (
	"fmt"
	"strings"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
)

// Kind selects which ending the screen shows.
type Kind int

const (
	GameOver Kind = iota
	Victory
)

func (k Kind) String() string {
	if k == Victory {
		return "victory"
	}
	return "game over"
}

const blinkPeriod = 0.5

// Result summarises the finished run and waits for a confirm.
type Result struct {
	kind    Kind
	elapsed float64
}

func New(kind Kind) *Result {
	return &Result{kind: kind}
}

func (r *Result) Update(ctx *scene.Context, dt float64) state.Event {
	r.elapsed += dt
	if ctx.Input.Confirm() {
		ctx.Audio.PlaySound(gfx.SoundConfirm)
		return state.EventConfirm
	}
	return state.EventNone
}

func (r *Result) Draw(ctx *scene.Context, c gfx.Canvas) {
	w, h := ctx.ScreenSize()

	headline, col := "GAME OVER", gfx.Red
	if r.kind == Victory {
		headline, col = "YOU REACHED THE EDGE", gfx.Green
	}

	c.Clear(gfx.Black)
	big := gfx.Font{Size: gfx.DefaultFont.Size * 2}
	scene.DrawCentered(c, headline, w/2, h/3, col, big)

	y := h / 2
	for _, line := range r.summary(ctx) {
		scene.DrawCentered(c, line, w/2, y, gfx.LightGray, gfx.DefaultFont)
		y += gfx.DefaultFont.Size * 1.5
	}

	if scene.Blink(r.elapsed, blinkPeriod) {
		scene.DrawCentered(c, "PRESS SPACE OR TAP", w/2, h*3/4, gfx.White, gfx.DefaultFont)
	}
}

func (r *Result) summary(ctx *scene.Context) []string {
	run := ctx.Run
	if run == nil {
		return nil
	}

	lines := make([]string, 0, 3)
	if r.kind == GameOver && run.Reason != "" {
		lines = append(lines, strings.ToUpper(string(run.Reason)))
	}
	progress := run.Level.Progress(run.Player.Pos.Y)
	lines = append(lines,
		fmt.Sprintf("ALTITUDE %d (%d%%)", int(run.Player.Pos.Y), int(progress*100)),
		fmt.Sprintf("TIME %.1fs", run.Elapsed),
	)
	return lines
}

func (r *Result) OnEnter(ctx *scene.Context) {
	r.elapsed = 0

	ctx.Audio.StopMusic()
	sound := gfx.SoundLose
	if r.kind == Victory {
		sound = gfx.SoundWin
	}
	ctx.Audio.PlaySound(sound)

	if run := ctx.Run; run != nil {
		ctx.Logger.Info("run over",
			"outcome", r.kind,
			"reason", run.Reason,
			"altitude", int(run.Player.Pos.Y),
			"elapsed", run.Elapsed,
		)
	}
}

func (r *Result) OnExit(*scene.Context) {}
