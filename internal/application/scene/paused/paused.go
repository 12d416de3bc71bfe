// Package paused provides the pause overlay drawn over a frozen level.
package paused

import (
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
)

const overlayAlpha = 0.6

// Drawer is the scene rendered underneath the overlay.
type Drawer interface {
	Draw(ctx *scene.Context, c gfx.Canvas)
}

// Paused freezes the run: nothing under it is updated.
type Paused struct {
	under Drawer
}

func New(under Drawer) *Paused {
	return &Paused{under: under}
}

func (p *Paused) Update(ctx *scene.Context, _ float64) state.Event {
	switch {
	case ctx.Input.Pause():
		return state.EventPause
	case ctx.Input.Confirm():
		ctx.Audio.PlaySound(gfx.SoundConfirm)
		return state.EventConfirm
	}
	return state.EventNone
}

func (p *Paused) Draw(ctx *scene.Context, c gfx.Canvas) {
	p.under.Draw(ctx, c)

	w, h := ctx.ScreenSize()
	c.FillRect(0, 0, w, h, gfx.Black.Alpha(overlayAlpha))

	big := gfx.Font{Size: gfx.DefaultFont.Size * 2}
	scene.DrawCentered(c, "PAUSED", w/2, h/2-big.Size, gfx.White, big)
	scene.DrawCentered(c, "ESC TO RESUME  SPACE TO QUIT", w/2, h/2+gfx.DefaultFont.Size, gfx.LightGray, gfx.DefaultFont)
}

func (p *Paused) OnEnter(ctx *scene.Context) {
	ctx.Audio.StopMusic()
}

func (p *Paused) OnExit(*scene.Context) {}
