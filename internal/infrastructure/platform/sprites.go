// Package platform implements the gfx capability surface on top of ebiten.
//
// Everything that touches the window, the GPU or the audio device lives
// here. Decoding and synthesis are kept separate from the upload step so
// they can run concurrently and be tested without a display.
package platform

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// decodeSheet decodes a PNG sprite sheet.
func decodeSheet(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite sheet: %w", err)
	}
	return img, nil
}

// frameRects slices b into rows*cols equal frames, row-major.
func frameRects(b image.Rectangle, rows, cols int) []image.Rectangle {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	fw, fh := b.Dx()/cols, b.Dy()/rows
	rects := make([]image.Rectangle, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			o := b.Min.Add(image.Pt(c*fw, r*fh))
			rects = append(rects, image.Rectangle{Min: o, Max: o.Add(image.Pt(fw, fh))})
		}
	}
	return rects
}

type sheet struct {
	frames []*ebiten.Image
	scale  float64
	w, h   float64 // drawn size of one frame

	fallback    gfx.Color
	hasFallback bool
}

// SpriteBank holds the uploaded sprite sheets.
type SpriteBank struct {
	sheets [gfx.SpriteCount]sheet
}

// NewSpriteBank uploads the decoded sheets. Sheets missing from images draw
// their configured placeholder instead.
func NewSpriteBank(cfg map[string]config.SpriteSheetConfig, images [gfx.SpriteCount]image.Image, logger *log.Logger) *SpriteBank {
	bank := &SpriteBank{}
	for name, sc := range cfg {
		id, err := gfx.ParseSprite(name)
		if err != nil {
			continue
		}

		s := sheet{scale: sc.Scale, w: sc.FallbackSize, h: sc.FallbackSize}
		if s.scale <= 0 {
			s.scale = 1
		}
		if sc.FallbackColor >= 0 && sc.FallbackColor < gfx.PaletteSize {
			s.fallback, s.hasFallback = gfx.Color(sc.FallbackColor), true
		}

		if img := images[id]; img != nil {
			full := ebiten.NewImageFromImage(img)
			for _, r := range frameRects(img.Bounds(), sc.Rows, sc.Cols) {
				s.frames = append(s.frames, full.SubImage(r).(*ebiten.Image))
			}
			logger.Debug("sprite sheet ready", "name", name, "frames", len(s.frames))
			if len(s.frames) > 0 {
				b := s.frames[0].Bounds()
				s.w, s.h = float64(b.Dx())*s.scale, float64(b.Dy())*s.scale
			}
		}
		bank.sheets[id] = s
	}
	return bank
}

func (b *SpriteBank) draw(dst *ebiten.Image, id gfx.SpriteID, frame int, x, y float64) {
	s := &b.sheets[id]
	if len(s.frames) == 0 {
		if s.hasFallback && s.w > 0 {
			ebitenutil.DrawRect(dst, x, y, s.w, s.h, s.fallback)
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(s.frames[frame%len(s.frames)], op)
}

func (b *SpriteBank) size(id gfx.SpriteID) (w, h float64) {
	s := &b.sheets[id]
	return s.w, s.h
}
