// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/application/system"
	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/domain/geom"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// HUD layout
const (
	hudMargin    = 8
	barWidth     = 120
	barHeight    = 8
	pipSize      = 10
	progressW    = 6
	finishStripe = 4
)

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	levelSystem *system.LevelSystem

	// Events raised by the level system during the current update
	pickups []*entity.Item
	hits    []*entity.Asteroid
	lost    bool
	reason  system.LoseReason
	won     bool
}

// New creates a new Playing scene.
func New(cfg *config.GameConfig) *Playing {
	p := &Playing{
		config:      cfg,
		levelSystem: system.NewLevelSystem(cfg),
	}

	p.levelSystem.OnPickup = func(item *entity.Item) {
		p.pickups = append(p.pickups, item)
	}
	p.levelSystem.OnHit = func(a *entity.Asteroid) {
		p.hits = append(p.hits, a)
	}
	p.levelSystem.OnLose = func(reason system.LoseReason) {
		if !p.lost {
			p.lost = true
			p.reason = reason
		}
	}
	p.levelSystem.OnWin = func() {
		p.won = true
	}

	return p
}

// Update proceeds the level by dt (implements scene.Scene).
// Once the run is decided it reports the outcome every frame until the
// session switches away.
func (p *Playing) Update(ctx *scene.Context, dt float64) state.Event {
	if ctx.Run == nil {
		ctx.NewRun()
	}
	run := ctx.Run

	if ctx.Input.Pause() {
		return state.EventPause
	}

	p.steer(ctx, run.Player)

	p.pickups, p.hits = p.pickups[:0], p.hits[:0]
	p.lost, p.won = false, false
	p.levelSystem.Update(run.Player, run.Level, dt)
	run.Elapsed += dt

	exhaust := run.Player.Pos.Sub(geom.Vec(0, run.Player.Stats.Size/2))
	run.Trail.Update(dt, exhaust, run.Player.HasFuel(), ctx.Rng)

	p.applyEvents(ctx, run)
	return run.Outcome
}

// steer turns held buttons, or a held pointer, into this frame's intent.
func (p *Playing) steer(ctx *scene.Context, player *entity.Player) {
	in := ctx.Input
	if in.Pressed(input.Left) {
		player.Steer(entity.IntentLeft)
	}
	if in.Pressed(input.Right) {
		player.Steer(entity.IntentRight)
	}
	if in.Pressed(input.Left) || in.Pressed(input.Right) {
		return
	}

	ptr := in.Pointer()
	if !ptr.Pressed {
		return
	}
	deadZone := p.config.Player.PixelSize
	switch {
	case ptr.Pos.X < player.Pos.X-deadZone:
		player.Steer(entity.IntentLeft)
	case ptr.Pos.X > player.Pos.X+deadZone:
		player.Steer(entity.IntentRight)
	}
}

func (p *Playing) applyEvents(ctx *scene.Context, run *scene.Run) {
	for range p.pickups {
		ctx.Audio.PlaySound(gfx.SoundPickup)
	}
	for _, a := range p.hits {
		ctx.Audio.PlaySound(gfx.SoundHit)
		ctx.Shake.Add(p.config.Shake.HitIntensity)
		ctx.Logger.Debug("asteroid hit", "damage", a.Class.Damage, "shield", run.Player.Shield)
	}

	if p.lost {
		run.Finish(state.EventLose, p.reason)
	}
	if p.won {
		run.Finish(state.EventWin, "")
	}
}

// Draw renders the game screen
func (p *Playing) Draw(ctx *scene.Context, c gfx.Canvas) {
	c.Clear(gfx.Black)

	run := ctx.Run
	if run == nil {
		return
	}

	cam := newCamera(p.config.Player.ScreenAnchor, run.Player.Pos.Y)
	w, h := ctx.ScreenSize()

	p.drawFinish(c, cam, run.Level, w)
	p.drawTrail(c, cam, run.Trail, h)
	p.drawItems(c, cam, run.Level, h)
	p.drawAsteroids(c, cam, run.Level, h)
	p.drawPlayer(c, cam, run.Player)
	p.drawUI(c, run, w, h)
}

func (p *Playing) drawFinish(c gfx.Canvas, cam camera, level *entity.Level, w float64) {
	y := cam.screenY(level.End)
	for x := 0.0; x < w; x += 2 * finishStripe {
		c.FillRect(x, y, finishStripe, finishStripe, gfx.White)
		c.FillRect(x+finishStripe, y+finishStripe, finishStripe, finishStripe, gfx.White)
	}
}

func (p *Playing) drawTrail(c gfx.Canvas, cam camera, trail *entity.Trail, h float64) {
	size := p.config.Trail.ParticleSize
	col := gfx.Color(p.config.Trail.Color)
	for _, pt := range trail.Particles {
		if !pt.Live {
			continue
		}
		y := cam.screenY(pt.Pos.Y)
		if !cam.visible(y, size, h) {
			continue
		}
		c.FillRect(pt.Pos.X-size/2, y, size, size, col)
	}
}

func (p *Playing) drawItems(c gfx.Canvas, cam camera, level *entity.Level, h float64) {
	for _, item := range level.Items() {
		if item.PickedUp {
			continue
		}
		y := cam.screenY(item.Pos.Y)
		if !cam.visible(y, item.Size, h) {
			continue
		}

		sprite := gfx.SpriteFuel
		if item.Kind == entity.ItemShield {
			sprite = gfx.SpriteShield
		}
		c.DrawSpriteCentered(sprite, item.Frame, item.Pos.X, y)

		if p.config.Debug.Hitboxes {
			r := item.Size
			geom.RectAt(geom.Vec(item.Pos.X-r, y-r), 2*r, 2*r).Draw(c)
		}
	}
}

func (p *Playing) drawAsteroids(c gfx.Canvas, cam camera, level *entity.Level, h float64) {
	for _, a := range level.Asteroids {
		if a.Destroyed {
			continue
		}
		size := a.Class.Size
		// Pos is the bottom-left corner in world space
		top := cam.screenY(a.Pos.Y + size)
		if !cam.visible(top, size, h) {
			continue
		}
		c.DrawSprite(gfx.SpriteAsteroid, a.SizeIndex, a.Pos.X, top)

		if p.config.Debug.Hitboxes {
			geom.RectAt(geom.Vec(a.Pos.X, top), size, size).Draw(c)
		}
	}
}

func (p *Playing) drawPlayer(c gfx.Canvas, cam camera, player *entity.Player) {
	hover := p.config.Player.Hover
	y := cam.anchor + player.HoverOffset(hover.Amplitude, hover.Speed)
	c.DrawSpriteCentered(gfx.SpritePlayer, player.Frame, player.Pos.X, y)

	if p.config.Debug.Hitboxes {
		geom.Vec(player.Pos.X, cam.anchor).Draw(c)
	}
}

// drawUI draws fuel, shield and course progress. Always on top.
func (p *Playing) drawUI(c gfx.Canvas, run *scene.Run, w, h float64) {
	player := run.Player

	// Fuel bar
	fuel := 0.0
	if player.Stats.MaxFuel > 0 {
		fuel = player.Fuel / player.Stats.MaxFuel
	}
	c.FillRect(hudMargin, hudMargin, barWidth, barHeight, gfx.DarkGray)
	c.FillRect(hudMargin, hudMargin, barWidth*fuel, barHeight, gfx.Orange)

	// Shield pips
	for i := 0; i < int(player.Stats.MaxShield); i++ {
		col := gfx.DarkGray
		if float64(i) < player.Shield {
			col = gfx.Green
		}
		x := hudMargin + float64(i)*(pipSize+2)
		c.FillRect(x, hudMargin+barHeight+4, pipSize, pipSize, col)
	}

	// Progress
	progress := run.Level.Progress(player.Pos.Y)
	barH := h - 2*hudMargin
	x := w - hudMargin - progressW
	c.FillRect(x, hudMargin, progressW, barH, gfx.DarkGray)
	c.FillRect(x, hudMargin+barH*(1-progress), progressW, barH*progress, gfx.Pink)

	alt := fmt.Sprintf("ALT %d", int(player.Pos.Y))
	c.DrawText(alt, hudMargin, h-hudMargin-gfx.DefaultFont.Size, gfx.White, gfx.DefaultFont)
}

// camera maps world altitude to screen y. The player stays at anchor.
type camera struct {
	anchor float64
	y      float64
}

func newCamera(anchor, playerY float64) camera {
	return camera{anchor: anchor, y: playerY}
}

func (cam camera) screenY(worldY float64) float64 {
	return cam.anchor - (worldY - cam.y)
}

func (cam camera) visible(y, size, h float64) bool {
	return y+size >= 0 && y-size <= h
}

func (p *Playing) OnEnter(ctx *scene.Context) {
	if ctx.Run == nil {
		ctx.NewRun()
	}
	ctx.Audio.PlayMusic(gfx.MusicLevel, true)
}

func (p *Playing) OnExit(*scene.Context) {}
