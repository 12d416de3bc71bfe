// Package game provides the main game loop manager that handles scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/edge/internal/application/clock"
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/input"
)

// InputSource samples the level-triggered input once per frame.
type InputSource interface {
	Poll() input.Raw
}

// CanvasFunc wraps the ebiten screen into the canvas the scenes draw on.
type CanvasFunc func(screen *ebiten.Image) gfx.Canvas

// Game implements ebiten.Game on top of a Session.
type Game struct {
	session *Session
	input   InputSource
	clock   *clock.Clock
	canvas  CanvasFunc
	screenW int
	screenH int
}

// NewGame creates a Game driving session with wall-clock deltas from clk.
func NewGame(session *Session, src InputSource, clk *clock.Clock, canvas CanvasFunc) *Game {
	d := session.Context().Config.Display
	return &Game{
		session: session,
		input:   src,
		clock:   clk,
		canvas:  canvas,
		screenW: d.ScreenWidth,
		screenH: d.ScreenHeight,
	}
}

// Update steps the session once.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.session.Step(g.clock.Tick(), g.input.Poll())
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.canvas(screen))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Session exposes the driven session.
func (g *Game) Session() *Session {
	return g.session
}
