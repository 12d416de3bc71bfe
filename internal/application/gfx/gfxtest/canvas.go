// Package gfxtest provides recording fakes of the gfx capability surface.
package gfxtest

import (
	"image/color"
	"strings"

	"github.com/younwookim/edge/internal/application/gfx"
)

// Op names a recorded canvas call.
type Op string

const (
	OpClear          Op = "clear"
	OpFillRect       Op = "fillRect"
	OpSprite         Op = "sprite"
	OpSpriteCentered Op = "spriteCentered"
	OpText           Op = "text"
)

// Call is one recorded canvas call.
type Call struct {
	Op     Op
	X, Y   float64
	W, H   float64
	Color  color.Color
	Sprite gfx.SpriteID
	Frame  int
	Text   string
}

// Canvas records every draw call.
type Canvas struct {
	W, H  int
	Calls []Call
}

// NewCanvas returns an empty recording canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h}
}

func (c *Canvas) Size() (int, int) { return c.W, c.H }

func (c *Canvas) Clear(col gfx.Color) {
	c.Calls = append(c.Calls, Call{Op: OpClear, Color: col})
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.Calls = append(c.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: col})
}

func (c *Canvas) DrawSprite(id gfx.SpriteID, frame int, x, y float64) {
	c.Calls = append(c.Calls, Call{Op: OpSprite, Sprite: id, Frame: frame, X: x, Y: y})
}

func (c *Canvas) DrawSpriteCentered(id gfx.SpriteID, frame int, x, y float64) {
	c.Calls = append(c.Calls, Call{Op: OpSpriteCentered, Sprite: id, Frame: frame, X: x, Y: y})
}

func (c *Canvas) DrawText(s string, x, y float64, col gfx.Color, _ gfx.Font) {
	c.Calls = append(c.Calls, Call{Op: OpText, Text: s, X: x, Y: y, Color: col})
}

// Reset drops all recorded calls.
func (c *Canvas) Reset() {
	c.Calls = c.Calls[:0]
}

// Filter returns the recorded calls with the given op.
func (c *Canvas) Filter(op Op) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}

// Sprites returns the recorded sprite draws (plain and centred) of sheet id.
func (c *Canvas) Sprites(id gfx.SpriteID) []Call {
	var out []Call
	for _, call := range c.Calls {
		if (call.Op == OpSprite || call.Op == OpSpriteCentered) && call.Sprite == id {
			out = append(out, call)
		}
	}
	return out
}

// HasText reports whether any drawn text contains sub.
func (c *Canvas) HasText(sub string) bool {
	for _, call := range c.Filter(OpText) {
		if strings.Contains(call.Text, sub) {
			return true
		}
	}
	return false
}

// Audio records played sounds and music.
type Audio struct {
	Sounds []gfx.SoundID
	Music  []gfx.MusicID
	Stops  int
}

func (a *Audio) PlaySound(id gfx.SoundID) { a.Sounds = append(a.Sounds, id) }

func (a *Audio) PlayMusic(id gfx.MusicID, _ bool) { a.Music = append(a.Music, id) }

func (a *Audio) StopMusic() { a.Stops++ }

// Count returns how many times id was played.
func (a *Audio) Count(id gfx.SoundID) int {
	n := 0
	for _, s := range a.Sounds {
		if s == id {
			n++
		}
	}
	return n
}
