package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/edge/internal/application/gfx"
)

// Canvas draws onto an ebiten screen image.
type Canvas struct {
	screen   *ebiten.Image
	sprites  *SpriteBank
	font     *text.GoTextFaceSource
	fontSize float64
}

// NewCanvas wraps screen for one frame. Without a loaded font, text is
// drawn with the debug font.
func NewCanvas(screen *ebiten.Image, a *Assets) *Canvas {
	return &Canvas{screen: screen, sprites: a.Sprites, font: a.Font, fontSize: a.FontSize}
}

func (c *Canvas) Size() (int, int) {
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col gfx.Color) {
	c.screen.Fill(col)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	ebitenutil.DrawRect(c.screen, x, y, w, h, col)
}

func (c *Canvas) DrawSprite(id gfx.SpriteID, frame int, x, y float64) {
	c.sprites.draw(c.screen, id, frame, x, y)
}

func (c *Canvas) DrawSpriteCentered(id gfx.SpriteID, frame int, x, y float64) {
	w, h := c.sprites.size(id)
	c.sprites.draw(c.screen, id, frame, x-w/2, y-h/2)
}

func (c *Canvas) DrawText(s string, x, y float64, col gfx.Color, f gfx.Font) {
	if c.font == nil {
		ebitenutil.DebugPrintAt(c.screen, s, int(x), int(y))
		return
	}

	size := f.Size
	if size <= 0 {
		size = c.fontSize
	}
	if size <= 0 {
		size = gfx.DefaultFont.Size
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.screen, s, &text.GoTextFace{Source: c.font, Size: size}, op)
}
