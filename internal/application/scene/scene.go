// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, crawl, playing, paused, result) implements
// the Scene interface to handle its own update logic and rendering.
// Scenes never switch themselves: they report a state.Event and the
// session looks the transition up in its table.
package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/edge/internal/application/effect"
	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/application/system"
	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// Scene represents a game screen.
//
// The session delegates Update and Draw calls to the current scene.
type Scene interface {
	// Update updates the scene state.
	// dt is the guarded frame delta in seconds.
	// Returns the event the session should act on, or state.EventNone.
	Update(ctx *Context, dt float64) state.Event

	// Draw renders the scene to the canvas.
	Draw(ctx *Context, c gfx.Canvas)

	// OnEnter is called when entering this scene.
	OnEnter(ctx *Context)

	// OnExit is called when leaving this scene.
	OnExit(ctx *Context)
}

// Run is the state of one attempt at the climb. It is rebuilt on every new game.
type Run struct {
	Player *entity.Player
	Level  *entity.Level
	Trail  *entity.Trail

	Elapsed float64

	// Outcome latches the first win or lose event of the run.
	Outcome state.Event
	Reason  system.LoseReason
}

// Finish latches the outcome. Later calls are ignored.
func (r *Run) Finish(outcome state.Event, reason system.LoseReason) {
	if r.Outcome != state.EventNone {
		return
	}
	r.Outcome = outcome
	r.Reason = reason
}

// Context is the session state shared by all scenes.
type Context struct {
	Config *config.GameConfig
	Input  *input.Input
	Audio  gfx.Audio
	Fade   *effect.Fade
	Shake  *effect.Shake
	Logger *log.Logger
	Rng    *rand.Rand

	Run *Run
}

// NewContext wires a context for cfg. rng drives every random choice of
// the session, so a fixed seed makes runs reproducible.
func NewContext(cfg *config.GameConfig, audio gfx.Audio, logger *log.Logger, rng *rand.Rand) *Context {
	if audio == nil {
		audio = gfx.Silent{}
	}
	return &Context{
		Config: cfg,
		Input:  input.New(),
		Audio:  audio,
		Fade:   effect.NewFade(cfg.Fade.Duration, gfx.Color(cfg.Fade.Color)),
		Shake:  effect.NewShake(cfg.Shake.Amplitude, cfg.Shake.Decay, rng),
		Logger: logger,
		Rng:    rng,
	}
}

// NewRun replaces the current run with a fresh player, level and trail.
func (c *Context) NewRun() *Run {
	player, level := system.NewRun(c.Config, c.Rng)
	tc := c.Config.Trail
	c.Run = &Run{
		Player: player,
		Level:  level,
		Trail: entity.NewTrail(entity.TrailSpec{
			MaxLength:           tc.MaxLength,
			SpawnPeriod:         tc.SpawnPeriod,
			FallSpeed:           tc.FallSpeed,
			MaxHorizontalOffset: tc.MaxHorizontalOffset,
		}),
	}
	return c.Run
}

// ScreenSize returns the logical screen size from the config.
func (c *Context) ScreenSize() (w, h float64) {
	return float64(c.Config.Display.ScreenWidth), float64(c.Config.Display.ScreenHeight)
}
