// Package geom provides the 2D value types shared by entities and systems.
package geom

import "image/color"

// Filler is the subset of a render surface geom needs to draw its debug shapes.
type Filler interface {
	FillRect(x, y, w, h float64, c color.Color)
}

// DebugColor is the colour used by Vector.Draw and Rect.Draw (palette index 14).
var DebugColor = color.RGBA{0xFF, 0x77, 0xA8, 0xFF}

// DebugThickness is the side of a drawn point and the width of a drawn rect outline.
const DebugThickness = 4

// Vector is an immutable 2D vector. Every operation returns a new value.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mult scales v by s.
func (v Vector) Mult(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div divides v by s. Division by zero is not guarded and yields Inf/NaN components.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	return Vector{X: v.X, Y: v.Y}
}

// Draw marks the point with a small square.
func (v Vector) Draw(dst Filler) {
	dst.FillRect(v.X, v.Y, DebugThickness, DebugThickness, DebugColor)
}
