// Package gfx defines the capability surface the game core draws and plays
// sound through. The platform layer implements it; tests use gfxtest.
package gfx

import "image/color"

// Color is an index into the fixed 16-entry palette.
// It satisfies color.Color so it can be passed anywhere a colour is accepted.
type Color uint8

// Named palette entries.
const (
	Black Color = iota
	DarkBlue
	DarkPurple
	DarkGreen
	Brown
	DarkGray
	LightGray
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Pink
	Peach
)

// PaletteSize is the number of entries in Palette.
const PaletteSize = 16

// Palette is the classic fantasy-console palette.
var Palette = [PaletteSize]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0x1D, 0x2B, 0x53, 0xFF},
	{0x7E, 0x25, 0x53, 0xFF},
	{0x00, 0x87, 0x51, 0xFF},
	{0xAB, 0x52, 0x36, 0xFF},
	{0x5F, 0x57, 0x4F, 0xFF},
	{0xC2, 0xC3, 0xC7, 0xFF},
	{0xFF, 0xF1, 0xE8, 0xFF},
	{0xFF, 0x00, 0x4D, 0xFF},
	{0xFF, 0xA3, 0x00, 0xFF},
	{0xFF, 0xEC, 0x27, 0xFF},
	{0x00, 0xE4, 0x36, 0xFF},
	{0x29, 0xAD, 0xFF, 0xFF},
	{0x83, 0x76, 0x9C, 0xFF},
	{0xFF, 0x77, 0xA8, 0xFF},
	{0xFF, 0xCC, 0xAA, 0xFF},
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return Palette[c].RGBA()
}

// Alpha returns the palette colour at opacity a in [0, 1], premultiplied.
func (c Color) Alpha(a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	base := Palette[c]
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(255 * a),
	}
}
