package geom

import "math"

// Rect is an axis-aligned rectangle spanned by two corners.
// The corners may be given in any order.
type Rect struct {
	Start Vector
	End   Vector
}

// RectAt returns the rectangle with its minimum corner at start and the given size.
func RectAt(start Vector, width, height float64) Rect {
	return Rect{Start: start, End: start.Add(Vec(width, height))}
}

// Square returns the square with its minimum corner at start.
func Square(start Vector, size float64) Rect {
	return RectAt(start, size, size)
}

func (r Rect) Width() float64  { return math.Abs(r.Start.X - r.End.X) }
func (r Rect) Height() float64 { return math.Abs(r.Start.Y - r.End.Y) }
func (r Rect) XMin() float64   { return math.Min(r.Start.X, r.End.X) }
func (r Rect) XMax() float64   { return math.Max(r.Start.X, r.End.X) }
func (r Rect) YMin() float64   { return math.Min(r.Start.Y, r.End.Y) }
func (r Rect) YMax() float64   { return math.Max(r.Start.Y, r.End.Y) }

// Contains reports whether v lies inside r. Bounds are inclusive on every side.
func (r Rect) Contains(v Vector) bool {
	inX := r.XMin() <= v.X && v.X <= r.XMax()
	inY := r.YMin() <= v.Y && v.Y <= r.YMax()
	return inX && inY
}

// Draw outlines the rectangle with four DebugThickness-wide strips.
func (r Rect) Draw(dst Filler) {
	x, y, w, h := r.XMin(), r.YMin(), r.Width(), r.Height()

	dst.FillRect(x, y, w, DebugThickness, DebugColor)
	dst.FillRect(x, y+h-DebugThickness, w, DebugThickness, DebugColor)
	dst.FillRect(x, y, DebugThickness, h, DebugColor)
	dst.FillRect(x+w-DebugThickness, y, DebugThickness, h, DebugColor)
}
