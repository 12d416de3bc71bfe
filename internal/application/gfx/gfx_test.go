package gfx_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/application/gfx/gfxtest"
)

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := gfx.Red.RGBA()
	want := color.RGBA{0xFF, 0x00, 0x4D, 0xFF}
	wr, wg, wb, wa := want.RGBA()

	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
}

func TestColor_Alpha(t *testing.T) {
	assert.Equal(t, color.RGBA{}, gfx.White.Alpha(0))
	assert.Equal(t, gfx.Palette[gfx.White], gfx.White.Alpha(1))
	assert.Equal(t, gfx.Palette[gfx.White], gfx.White.Alpha(3), "clamped to 1")

	half := gfx.White.Alpha(0.5)
	assert.Equal(t, uint8(127), half.A)
	assert.LessOrEqual(t, half.R, half.A, "premultiplied")
}

func TestHandles_ParseRoundTrip(t *testing.T) {
	for id := gfx.SpriteID(0); id < gfx.SpriteCount; id++ {
		got, err := gfx.ParseSprite(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	for id := gfx.SoundID(0); id < gfx.SoundCount; id++ {
		got, err := gfx.ParseSound(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	for id := gfx.MusicID(0); id < gfx.MusicCount; id++ {
		got, err := gfx.ParseMusic(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := gfx.ParseSprite("heart")
	assert.Error(t, err)
	assert.Equal(t, "unknown", gfx.SoundID(42).String())
}

func TestOffset_TranslatesDraws(t *testing.T) {
	rec := gfxtest.NewCanvas(100, 100)
	c := gfx.Offset(rec, 2, -3)

	c.Clear(gfx.Black)
	c.FillRect(10, 10, 5, 5, gfx.Red)
	c.DrawSprite(gfx.SpritePlayer, 1, 0, 0)
	c.DrawSpriteCentered(gfx.SpriteFuel, 0, 50, 50)
	c.DrawText("hi", 1, 1, gfx.White, gfx.DefaultFont)

	require.Len(t, rec.Calls, 5)
	assert.Equal(t, gfxtest.OpClear, rec.Calls[0].Op)
	assert.Equal(t, 12.0, rec.Calls[1].X)
	assert.Equal(t, 7.0, rec.Calls[1].Y)
	assert.Equal(t, 5.0, rec.Calls[1].W, "size untouched")
	assert.Equal(t, 2.0, rec.Calls[2].X)
	assert.Equal(t, 47.0, rec.Calls[3].Y)
	assert.Equal(t, 3.0, rec.Calls[4].X)
}

func TestOffset_ZeroIsIdentity(t *testing.T) {
	rec := gfxtest.NewCanvas(10, 10)
	assert.Same(t, rec, gfx.Offset(rec, 0, 0).(*gfxtest.Canvas))
}
