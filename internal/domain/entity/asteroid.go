package entity

import (
	"math"

	"github.com/younwookim/edge/internal/domain/geom"
)

// AsteroidClass is one row of the size lookup table.
type AsteroidClass struct {
	Size   float64
	Damage float64
}

// AsteroidClasses builds the lookup table; class i deals i+1 damage.
func AsteroidClasses(sizes []float64) []AsteroidClass {
	classes := make([]AsteroidClass, len(sizes))
	for i, s := range sizes {
		classes[i] = AsteroidClass{Size: s, Damage: float64(i + 1)}
	}
	return classes
}

// Asteroid is a hazard. Pos is the minimum corner of its square hitbox.
type Asteroid struct {
	Pos    geom.Vector
	Anchor geom.Vector

	SizeIndex int
	Class     AsteroidClass
	Destroyed bool

	Oscillates bool
	Seed       float64 // entropy in [0, 1): phase and amplitude scale
}

// NewAsteroid places an asteroid of class index at anchor.
// An index outside classes panics.
func NewAsteroid(anchor geom.Vector, index int, classes []AsteroidClass) *Asteroid {
	return &Asteroid{
		Pos:       anchor,
		Anchor:    anchor,
		SizeIndex: index,
		Class:     classes[index],
	}
}

// Oscillate moves an oscillating asteroid sideways around its anchor.
func (a *Asteroid) Oscillate(elapsed, speed, amplitude float64) {
	if !a.Oscillates {
		return
	}
	phase := elapsed*speed + a.Seed*2*math.Pi
	a.Pos.X = a.Anchor.X + math.Sin(phase)*amplitude*a.Seed
}

// Bounds is the square hitbox at the current position.
func (a *Asteroid) Bounds() geom.Rect {
	return geom.Square(a.Pos, a.Class.Size)
}

// Destroy marks the asteroid destroyed. It reports false if it already was.
func (a *Asteroid) Destroy() bool {
	if a.Destroyed {
		return false
	}
	a.Destroyed = true
	return true
}
