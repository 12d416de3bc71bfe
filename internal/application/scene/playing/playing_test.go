package playing

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/gfx/gfxtest"
	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/application/system"
	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/domain/geom"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

const frame = 1.0 / 60

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 512, ScreenHeight: 512},
		Player: config.PlayerConfig{
			Size:               64,
			HorizontalSpeed:    256,
			VerticalSpeed:      256,
			AccelerationFactor: 8,
			MaxFuel:            20,
			MaxShield:          3,
			PixelSize:          4,
			StallSpeed:         8,
			Margin:             32,
			ScreenAnchor:       384,
			Turn:               config.TurnConfig{Runtime: 0.4, Steps: 4, LeftFrame: 0, RightFrame: 4},
		},
		Items: config.ItemsConfig{
			Fuel:   config.ItemConfig{Amount: 8, Size: 32},
			Shield: config.ItemConfig{Amount: 1, Size: 32},
		},
		Asteroids: config.AsteroidsConfig{Sizes: []float64{32, 48, 64}},
		Level:     config.LevelConfig{End: 4000},
		Fade:      config.FadeConfig{Duration: 0.5},
		Shake:     config.ShakeConfig{Amplitude: 4, Decay: 4, HitIntensity: 2},
		Trail:     config.TrailConfig{MaxLength: 8, SpawnPeriod: 0.4, FallSpeed: 256, MaxHorizontalOffset: 16, ParticleSize: 4, Color: 8},
	}
}

func newTestScene(t *testing.T) (*Playing, *scene.Context, *gfxtest.Audio) {
	t.Helper()
	cfg := createTestConfig()
	audio := &gfxtest.Audio{}
	ctx := scene.NewContext(cfg, audio, log.New(io.Discard), rand.New(rand.NewSource(1)))
	ctx.NewRun()
	ctx.Run.Level = &entity.Level{End: cfg.Level.End}

	p := New(cfg)
	p.OnEnter(ctx)
	return p, ctx, audio
}

func hold(buttons ...input.Button) input.Raw {
	var raw input.Raw
	for _, b := range buttons {
		raw.Buttons[b] = true
	}
	return raw
}

func TestPlaying_OnEnterStartsLevelMusic(t *testing.T) {
	_, _, audio := newTestScene(t)
	assert.Equal(t, []gfx.MusicID{gfx.MusicLevel}, audio.Music)
}

func TestPlaying_OnEnterKeepsExistingRun(t *testing.T) {
	p, ctx, _ := newTestScene(t)
	run := ctx.Run

	p.OnEnter(ctx)

	assert.Same(t, run, ctx.Run, "resuming from pause keeps the run")
}

func TestPlaying_Steering(t *testing.T) {
	tests := []struct {
		name     string
		raw      input.Raw
		wantSign float64
	}{
		{"left key", hold(input.Left), -1},
		{"right key", hold(input.Right), 1},
		{"pointer left of ship", input.Raw{PointerX: 10, PointerDown: true}, -1},
		{"pointer right of ship", input.Raw{PointerX: 500, PointerDown: true}, 1},
		{"pointer inside dead zone", input.Raw{PointerX: 257, PointerDown: true}, 0},
		{"nothing held", input.Raw{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ctx, _ := newTestScene(t)

			ctx.Input.Update(tt.raw)
			p.Update(ctx, frame)

			vx := ctx.Run.Player.Vel.X
			switch {
			case tt.wantSign < 0:
				assert.Less(t, vx, 0.0)
			case tt.wantSign > 0:
				assert.Greater(t, vx, 0.0)
			default:
				assert.Equal(t, 0.0, vx)
			}
		})
	}
}

func TestPlaying_PauseFreezesRun(t *testing.T) {
	p, ctx, _ := newTestScene(t)

	ctx.Input.Update(hold(input.ConfirmSecondary))
	ev := p.Update(ctx, frame)

	assert.Equal(t, state.EventPause, ev)
	assert.Equal(t, 0.0, ctx.Run.Elapsed)
	assert.Equal(t, 0.0, ctx.Run.Player.Pos.Y)
}

func TestPlaying_PickupPlaysSound(t *testing.T) {
	p, ctx, audio := newTestScene(t)
	player := ctx.Run.Player
	player.Fuel = 2
	ctx.Run.Level.Fuels = []*entity.Item{
		entity.NewItem(entity.ItemFuel, player.Pos, entity.ItemSpec{Amount: 8, Size: 32}),
	}

	for i := 0; i < 3; i++ {
		ctx.Input.Update(input.Raw{})
		assert.Equal(t, state.EventNone, p.Update(ctx, frame))
	}

	assert.Equal(t, 1, audio.Count(gfx.SoundPickup))
	assert.InDelta(t, 10-3*frame, player.Fuel, 1e-9)
}

func TestPlaying_HitShakesAndSounds(t *testing.T) {
	p, ctx, audio := newTestScene(t)
	player := ctx.Run.Player
	classes := entity.AsteroidClasses([]float64{32, 48, 64})
	ctx.Run.Level.Asteroids = []*entity.Asteroid{
		entity.NewAsteroid(player.Pos.Sub(geom.Vec(16, 16)), 0, classes),
	}

	ctx.Input.Update(input.Raw{})
	ev := p.Update(ctx, frame)

	assert.Equal(t, state.EventNone, ev)
	assert.Equal(t, 1, audio.Count(gfx.SoundHit))
	assert.Equal(t, 2.0, ctx.Shake.Intensity)
	assert.Equal(t, 2.0, player.Shield)
}

func TestPlaying_LoseIsLatched(t *testing.T) {
	p, ctx, _ := newTestScene(t)
	ctx.Run.Player.Fuel = 0

	for i := 0; i < 5; i++ {
		ctx.Input.Update(input.Raw{})
		assert.Equal(t, state.EventLose, p.Update(ctx, frame), "frame %d", i)
	}
	assert.Equal(t, system.LoseStalled, ctx.Run.Reason)
}

func TestPlaying_Win(t *testing.T) {
	p, ctx, _ := newTestScene(t)
	ctx.Run.Player.Pos.Y = ctx.Run.Level.End + 1

	ctx.Input.Update(input.Raw{})
	ev := p.Update(ctx, frame)

	assert.Equal(t, state.EventWin, ev)
	assert.True(t, ctx.Run.Level.Complete)
}

func TestPlaying_TrailOnlyWithFuel(t *testing.T) {
	p, ctx, _ := newTestScene(t)

	for i := 0; i < 60; i++ {
		ctx.Input.Update(input.Raw{})
		p.Update(ctx, frame)
	}
	live := 0
	for _, pt := range ctx.Run.Trail.Particles {
		if pt.Live {
			live++
		}
	}
	assert.Positive(t, live)

	p2, ctx2, _ := newTestScene(t)
	ctx2.Run.Player.Fuel = 0
	for i := 0; i < 60; i++ {
		ctx2.Input.Update(input.Raw{})
		p2.Update(ctx2, frame)
	}
	for _, pt := range ctx2.Run.Trail.Particles {
		assert.False(t, pt.Live)
	}
}

func TestPlaying_DrawPlacesEntitiesRelativeToPlayer(t *testing.T) {
	p, ctx, _ := newTestScene(t)
	classes := entity.AsteroidClasses([]float64{32, 48, 64})
	near := entity.NewItem(entity.ItemShield, geom.Vec(100, 100), entity.ItemSpec{Size: 32})
	far := entity.NewItem(entity.ItemFuel, geom.Vec(100, 5000), entity.ItemSpec{Size: 32})
	taken := entity.NewItem(entity.ItemFuel, geom.Vec(200, 50), entity.ItemSpec{Size: 32})
	taken.Collect()
	ctx.Run.Level.Fuels = []*entity.Item{far, taken}
	ctx.Run.Level.Shields = []*entity.Item{near}
	ctx.Run.Level.Asteroids = []*entity.Asteroid{entity.NewAsteroid(geom.Vec(300, 200), 1, classes)}

	c := gfxtest.NewCanvas(512, 512)
	p.Draw(ctx, c)

	players := c.Sprites(gfx.SpritePlayer)
	require.Len(t, players, 1)
	assert.Equal(t, 256.0, players[0].X)
	assert.Equal(t, 384.0, players[0].Y)

	shields := c.Sprites(gfx.SpriteShield)
	require.Len(t, shields, 1)
	assert.Equal(t, 284.0, shields[0].Y, "100 above the player")
	assert.Empty(t, c.Sprites(gfx.SpriteFuel), "far and collected items are skipped")

	rocks := c.Sprites(gfx.SpriteAsteroid)
	require.Len(t, rocks, 1)
	assert.Equal(t, 384.0-248, rocks[0].Y, "top edge of a 48 px rock based at 200")
	assert.Equal(t, 1, rocks[0].Frame)

	assert.True(t, c.HasText("ALT 0"))
}

func TestPlaying_DrawHitboxesInDebug(t *testing.T) {
	p, ctx, _ := newTestScene(t)
	p.config.Debug.Hitboxes = true
	c := gfxtest.NewCanvas(512, 512)

	p.Draw(ctx, c)

	var marker []gfxtest.Call
	for _, call := range c.Filter(gfxtest.OpFillRect) {
		if call.Color == geom.DebugColor {
			marker = append(marker, call)
		}
	}
	require.Len(t, marker, 1, "player position marker")
	assert.Equal(t, 256.0, marker[0].X)
}

func TestPlaying_DrawWithoutRun(t *testing.T) {
	p := New(createTestConfig())
	ctx := scene.NewContext(createTestConfig(), nil, log.New(io.Discard), rand.New(rand.NewSource(1)))
	c := gfxtest.NewCanvas(512, 512)

	p.Draw(ctx, c)

	require.Len(t, c.Calls, 1)
	assert.Equal(t, gfxtest.OpClear, c.Calls[0].Op)
}
