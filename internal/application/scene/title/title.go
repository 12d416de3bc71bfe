// Package title provides the title screen.
package title

import (
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
)

const (
	promptText  = "PRESS SPACE OR TAP TO CLIMB"
	blinkPeriod = 0.5
)

// Title shows the logo and waits for a confirm.
type Title struct {
	elapsed float64
}

func New() *Title {
	return &Title{}
}

func (t *Title) Update(ctx *scene.Context, dt float64) state.Event {
	t.elapsed += dt
	if ctx.Input.Confirm() {
		ctx.Audio.PlaySound(gfx.SoundConfirm)
		return state.EventConfirm
	}
	return state.EventNone
}

func (t *Title) Draw(ctx *scene.Context, c gfx.Canvas) {
	w, h := ctx.ScreenSize()
	c.Clear(gfx.DarkBlue)

	c.DrawSpriteCentered(gfx.SpriteLogo, 0, w/2, h/3)
	big := gfx.Font{Size: gfx.DefaultFont.Size * 2}
	scene.DrawCentered(c, ctx.Config.Display.Title, w/2, h/2, gfx.White, big)

	if scene.Blink(t.elapsed, blinkPeriod) {
		scene.DrawCentered(c, promptText, w/2, h*3/4, gfx.LightGray, gfx.DefaultFont)
	}
}

func (t *Title) OnEnter(ctx *scene.Context) {
	t.elapsed = 0
	ctx.Audio.PlayMusic(gfx.MusicTitle, true)
}

func (t *Title) OnExit(*scene.Context) {}
