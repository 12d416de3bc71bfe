package gfx

import (
	"fmt"
	"image/color"
)

// SpriteID is a typed handle into the platform's sprite sheet table.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteAsteroid
	SpriteFuel
	SpriteShield
	SpriteLogo
	SpriteCount
)

var spriteNames = [SpriteCount]string{"player", "asteroid", "fuel", "shield", "logo"}

// String returns the asset name of the sprite sheet.
func (id SpriteID) String() string {
	if id < 0 || id >= SpriteCount {
		return "unknown"
	}
	return spriteNames[id]
}

// ParseSprite resolves a sprite sheet name from configuration.
func ParseSprite(name string) (SpriteID, error) {
	for i, n := range spriteNames {
		if n == name {
			return SpriteID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sprite %q", name)
}

// SoundID is a typed handle into the platform's sound effect table.
type SoundID int

const (
	SoundPickup SoundID = iota
	SoundHit
	SoundConfirm
	SoundLose
	SoundWin
	SoundCount
)

var soundNames = [SoundCount]string{"pickup", "hit", "confirm", "lose", "win"}

// String returns the asset name of the sound effect.
func (id SoundID) String() string {
	if id < 0 || id >= SoundCount {
		return "unknown"
	}
	return soundNames[id]
}

// ParseSound resolves a sound effect name from configuration.
func ParseSound(name string) (SoundID, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound %q", name)
}

// MusicID is a typed handle into the platform's music table.
type MusicID int

const (
	MusicTitle MusicID = iota
	MusicLevel
	MusicCount
)

var musicNames = [MusicCount]string{"title", "level"}

// String returns the asset name of the music track.
func (id MusicID) String() string {
	if id < 0 || id >= MusicCount {
		return "unknown"
	}
	return musicNames[id]
}

// ParseMusic resolves a music track name from configuration.
func ParseMusic(name string) (MusicID, error) {
	for i, n := range musicNames {
		if n == name {
			return MusicID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown music %q", name)
}

// Font selects the text size. A zero Font uses the platform default.
type Font struct {
	Size float64
}

// DefaultFont is the size used by most HUD and menu text.
var DefaultFont = Font{Size: 16}

// Canvas is the render surface handed to scenes each frame.
type Canvas interface {
	// Size returns the logical screen size in pixels.
	Size() (w, h int)
	Clear(c Color)
	FillRect(x, y, w, h float64, c color.Color)
	// DrawSprite blits frame of sheet id with its top-left corner at (x, y).
	DrawSprite(id SpriteID, frame int, x, y float64)
	// DrawSpriteCentered blits frame of sheet id centred on (x, y).
	DrawSpriteCentered(id SpriteID, frame int, x, y float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c Color, f Font)
}

// Audio plays sound effects and music.
type Audio interface {
	PlaySound(id SoundID)
	PlayMusic(id MusicID, loop bool)
	StopMusic()
}

// Offset returns a Canvas that translates every draw by (dx, dy).
func Offset(c Canvas, dx, dy float64) Canvas {
	if dx == 0 && dy == 0 {
		return c
	}
	return &offsetCanvas{Canvas: c, dx: dx, dy: dy}
}

type offsetCanvas struct {
	Canvas
	dx, dy float64
}

func (o *offsetCanvas) FillRect(x, y, w, h float64, c color.Color) {
	o.Canvas.FillRect(x+o.dx, y+o.dy, w, h, c)
}

func (o *offsetCanvas) DrawSprite(id SpriteID, frame int, x, y float64) {
	o.Canvas.DrawSprite(id, frame, x+o.dx, y+o.dy)
}

func (o *offsetCanvas) DrawSpriteCentered(id SpriteID, frame int, x, y float64) {
	o.Canvas.DrawSpriteCentered(id, frame, x+o.dx, y+o.dy)
}

func (o *offsetCanvas) DrawText(s string, x, y float64, c Color, f Font) {
	o.Canvas.DrawText(s, x+o.dx, y+o.dy, c, f)
}

// Silent is an Audio that plays nothing. Headless runs use it.
type Silent struct{}

func (Silent) PlaySound(SoundID)       {}
func (Silent) PlayMusic(MusicID, bool) {}
func (Silent) StopMusic()              {}
