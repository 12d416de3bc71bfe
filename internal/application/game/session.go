package game

import (
	"fmt"
	"time"

	"github.com/younwookim/edge/internal/application/clock"
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/application/replay"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/scene/crawl"
	"github.com/younwookim/edge/internal/application/scene/paused"
	"github.com/younwookim/edge/internal/application/scene/playing"
	"github.com/younwookim/edge/internal/application/scene/result"
	"github.com/younwookim/edge/internal/application/scene/title"
	"github.com/younwookim/edge/internal/application/state"
)

// gridAlpha is the opacity of the debug pixel grid stripes.
const gridAlpha = 0x70 / 255.0

// Session owns the scene graph and steps it one frame at a time.
// It has no dependency on a window, so headless runs and tests drive it directly.
type Session struct {
	ctx     *scene.Context
	table   *state.Table
	scenes  map[state.GameState]scene.Scene
	current state.GameState

	recorder *replay.Recorder
	fps      clock.FPSCounter
	// Now is read once per rendered frame for the FPS counter.
	Now func() time.Time
}

// NewSession creates a session over scenes and enters start immediately.
func NewSession(ctx *scene.Context, table *state.Table, scenes map[state.GameState]scene.Scene, start state.GameState) *Session {
	s := &Session{
		ctx:     ctx,
		table:   table,
		scenes:  scenes,
		current: start,
		Now:     time.Now,
	}
	s.scene().OnEnter(ctx)
	return s
}

// New creates a session with the full game scene graph, starting at the title.
func New(ctx *scene.Context) *Session {
	play := playing.New(ctx.Config)
	scenes := map[state.GameState]scene.Scene{
		state.StateTitle:    title.New(),
		state.StateCrawl:    crawl.New(),
		state.StateLevel:    play,
		state.StatePaused:   paused.New(play),
		state.StateGameOver: result.New(result.GameOver),
		state.StateVictory:  result.New(result.Victory),
	}
	return NewSession(ctx, state.NewTable(ctx.Config.Crawl.Enabled), scenes, state.StateTitle)
}

// Record starts capturing every stepped frame into rec. A nil rec stops recording.
func (s *Session) Record(rec *replay.Recorder) {
	s.recorder = rec
}

// State returns the current scene's state.
func (s *Session) State() state.GameState {
	return s.current
}

// Context returns the shared scene context.
func (s *Session) Context() *scene.Context {
	return s.ctx
}

func (s *Session) scene() scene.Scene {
	sc, ok := s.scenes[s.current]
	if !ok {
		panic(fmt.Sprintf("no scene registered for %s", s.current))
	}
	return sc
}

// Step advances the session by dt seconds with the input sampled for this frame.
func (s *Session) Step(dt float64, raw input.Raw) {
	if s.recorder != nil {
		s.recorder.RecordFrame(dt, raw)
	}

	s.ctx.Input.Update(raw)
	s.ctx.Shake.Update(dt)

	e := s.scene().Update(s.ctx, dt)
	s.apply(e)

	s.ctx.Fade.Update(dt)
}

// apply looks e up in the transition table. Events are dropped while a fade
// is running so a held confirm cannot queue a second switch.
func (s *Session) apply(e state.Event) {
	if e == state.EventNone || s.ctx.Fade.Active() {
		return
	}
	tr, ok := s.table.Next(s.current, e)
	if !ok {
		return
	}
	if _, ok := s.scenes[tr.To]; !ok {
		s.ctx.Logger.Error("transition to unregistered scene", "from", s.current, "to", tr.To)
		return
	}

	from := s.current
	enter := func() {
		if tr.NewRun {
			s.ctx.NewRun()
		}
		s.scene().OnExit(s.ctx)
		s.current = tr.To
		s.scene().OnEnter(s.ctx)
		s.ctx.Logger.Debug("scene transition", "from", from, "to", tr.To, "event", e)
	}

	if tr.Fade {
		s.ctx.Fade.Start(enter, false)
		return
	}
	enter()
}

// Render draws the current scene shaken by the screen shake offset, then the
// fade overlay and the debug overlays on the steady canvas.
func (s *Session) Render(c gfx.Canvas) {
	dx, dy := s.ctx.Shake.Offset()
	s.scene().Draw(s.ctx, gfx.Offset(c, dx, dy))

	s.ctx.Fade.Draw(c)

	fps := s.fps.Tick(s.Now())
	dbg := s.ctx.Config.Debug
	if dbg.PixelGrid.Display {
		drawPixelGrid(c, float64(dbg.PixelGrid.Size), gfx.Color(dbg.PixelGrid.Color))
	}
	if dbg.ShowFPS {
		c.DrawText(fmt.Sprintf("FPS %d", fps), 4, 4, gfx.White, gfx.Font{Size: 8})
	}
}

// drawPixelGrid shades every other row and column of size-pixel cells.
func drawPixelGrid(c gfx.Canvas, size float64, col gfx.Color) {
	if size <= 0 {
		return
	}
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	tint := col.Alpha(gridAlpha)

	for x := 0.0; x < fw; x += 2 * size {
		c.FillRect(x, 0, size, fh, tint)
	}
	for y := 0.0; y < fh; y += 2 * size {
		c.FillRect(0, y, fw, size, tint)
	}
}
