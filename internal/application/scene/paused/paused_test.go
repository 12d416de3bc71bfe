package paused

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/gfx/gfxtest"
	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/application/scene"
	"github.com/younwookim/edge/internal/application/state"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

type mockDrawer struct {
	drawCalled int
}

func (m *mockDrawer) Draw(*scene.Context, gfx.Canvas) {
	m.drawCalled++
}

func newContext() (*scene.Context, *gfxtest.Audio) {
	cfg := &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240},
		Fade:    config.FadeConfig{Duration: 0.5},
	}
	audio := &gfxtest.Audio{}
	return scene.NewContext(cfg, audio, log.New(io.Discard), rand.New(rand.NewSource(1))), audio
}

func TestPaused_Update(t *testing.T) {
	press := func(b input.Button) input.Raw {
		var raw input.Raw
		raw.Buttons[b] = true
		return raw
	}

	tests := []struct {
		name string
		raw  input.Raw
		want state.Event
	}{
		{"resume", press(input.ConfirmSecondary), state.EventPause},
		{"quit", press(input.ConfirmPrimary), state.EventConfirm},
		{"steering ignored", press(input.Left), state.EventNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newContext()
			ctx.Input.Update(tt.raw)

			assert.Equal(t, tt.want, New(&mockDrawer{}).Update(ctx, 1.0/60))
		})
	}
}

func TestPaused_DrawsOverFrozenScene(t *testing.T) {
	ctx, _ := newContext()
	under := &mockDrawer{}
	c := gfxtest.NewCanvas(320, 240)

	New(under).Draw(ctx, c)

	assert.Equal(t, 1, under.drawCalled)
	fills := c.Filter(gfxtest.OpFillRect)
	assert.Len(t, fills, 1)
	assert.Equal(t, 320.0, fills[0].W)
	assert.True(t, c.HasText("PAUSED"))
}

func TestPaused_OnEnterStopsMusic(t *testing.T) {
	ctx, audio := newContext()

	New(&mockDrawer{}).OnEnter(ctx)

	assert.Equal(t, 1, audio.Stops)
}
