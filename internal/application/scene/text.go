package scene

import "github.com/younwookim/edge/internal/application/gfx"

// Approximate advance of one glyph at DefaultFont, used to centre text.
const glyphWidth = 0.5

// TextWidth estimates the drawn width of s at font f.
func TextWidth(s string, f gfx.Font) float64 {
	return float64(len([]rune(s))) * f.Size * glyphWidth
}

// DrawCentered draws s horizontally centred on cx.
func DrawCentered(c gfx.Canvas, s string, cx, y float64, col gfx.Color, f gfx.Font) {
	c.DrawText(s, cx-TextWidth(s, f)/2, y, col, f)
}

// Blink reports whether blinking text is visible at elapsed seconds.
func Blink(elapsed, period float64) bool {
	if period <= 0 {
		return true
	}
	phase := elapsed / period
	return int(phase)%2 == 0
}
