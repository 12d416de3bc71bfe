package scene

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/gfx/gfxtest"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/application/system"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 512, ScreenHeight: 512},
		Player: config.PlayerConfig{
			Size: 64, HorizontalSpeed: 256, VerticalSpeed: 256, AccelerationFactor: 8,
			MaxFuel: 20, MaxShield: 3, PixelSize: 4, StallSpeed: 8, Margin: 32,
		},
		Asteroids: config.AsteroidsConfig{Sizes: []float64{32, 48, 64}},
		Level:     config.LevelConfig{End: 2000, StartClearance: 300, Fuels: 2, Shields: 1, Asteroids: 4},
		Fade:      config.FadeConfig{Duration: 0.5, Color: 1},
		Shake:     config.ShakeConfig{Amplitude: 4, Decay: 4},
		Trail:     config.TrailConfig{MaxLength: 8, SpawnPeriod: 0.4, FallSpeed: 256, MaxHorizontalOffset: 16},
	}
}

func TestNewContext(t *testing.T) {
	cfg := createTestConfig()
	ctx := NewContext(cfg, nil, log.New(io.Discard), rand.New(rand.NewSource(1)))

	assert.IsType(t, gfx.Silent{}, ctx.Audio, "nil audio falls back to silence")
	assert.Equal(t, 0.5, ctx.Fade.Duration)
	assert.Equal(t, gfx.DarkBlue, ctx.Fade.Color)
	assert.NotNil(t, ctx.Input)
	assert.Nil(t, ctx.Run)
}

func TestContext_NewRunReplacesRun(t *testing.T) {
	ctx := NewContext(createTestConfig(), &gfxtest.Audio{}, log.New(io.Discard), rand.New(rand.NewSource(1)))

	first := ctx.NewRun()
	require.NotNil(t, first.Player)
	require.Len(t, first.Level.Asteroids, 4)
	require.Len(t, first.Trail.Particles, 8)

	first.Player.Fuel = 0
	second := ctx.NewRun()

	assert.NotSame(t, first, second)
	assert.Same(t, second, ctx.Run)
	assert.Equal(t, 20.0, second.Player.Fuel)
}

func TestRun_FinishLatchesFirstOutcome(t *testing.T) {
	r := &Run{}

	r.Finish(state.EventLose, system.LoseStalled)
	r.Finish(state.EventWin, "")

	assert.Equal(t, state.EventLose, r.Outcome)
	assert.Equal(t, system.LoseStalled, r.Reason)
}

func TestBlink(t *testing.T) {
	assert.True(t, Blink(0.1, 0.5))
	assert.False(t, Blink(0.6, 0.5))
	assert.True(t, Blink(1.1, 0.5))
	assert.True(t, Blink(3, 0))
}

func TestDrawCentered(t *testing.T) {
	c := gfxtest.NewCanvas(200, 100)

	DrawCentered(c, "abcd", 100, 10, gfx.White, gfx.Font{Size: 10})

	require.Len(t, c.Calls, 1)
	assert.Equal(t, 90.0, c.Calls[0].X)
	assert.Equal(t, "abcd", c.Calls[0].Text)
}
