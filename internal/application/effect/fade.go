// Package effect holds the full-screen effects layered over every scene.
package effect

import (
	"math"

	"github.com/younwookim/edge/internal/application/gfx"
)

// Fade is a timed full-screen overlay. A forward fade darkens to Color,
// runs its completion callback, then fades back in on its own.
//
// Only one fade runs at a time: Start while active is dropped.
type Fade struct {
	Duration float64
	Color    gfx.Color

	elapsed    float64
	active     bool
	reverse    bool
	onComplete func()
}

func NewFade(duration float64, color gfx.Color) *Fade {
	return &Fade{Duration: duration, Color: color}
}

// Start begins a fade. It reports false when a fade is already running.
func (f *Fade) Start(onComplete func(), reverse bool) bool {
	if f.active {
		return false
	}
	f.elapsed = 0
	f.active = true
	f.reverse = reverse
	f.onComplete = onComplete
	return true
}

func (f *Fade) Active() bool  { return f.active }
func (f *Fade) Reverse() bool { return f.reverse }

// Progress is elapsed/duration capped at 1.
func (f *Fade) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return math.Min(f.elapsed/f.Duration, 1)
}

// Alpha is the overlay opacity for the current frame; 0 when idle.
func (f *Fade) Alpha() float64 {
	if !f.active {
		return 0
	}
	if f.reverse {
		return 1 - f.Progress()
	}
	return f.Progress()
}

// Update advances the fade. On reaching full progress it goes idle, runs
// the callback, and a forward fade then starts its reverse.
func (f *Fade) Update(dt float64) {
	if !f.active {
		return
	}

	f.elapsed += dt
	if f.Progress() < 1 {
		return
	}

	f.active = false
	cb, wasReverse := f.onComplete, f.reverse
	f.onComplete = nil
	if cb != nil {
		cb()
	}
	if !wasReverse {
		f.Start(nil, true)
	}
}

// Draw paints the overlay across the whole canvas.
func (f *Fade) Draw(c gfx.Canvas) {
	a := f.Alpha()
	if a <= 0 {
		return
	}
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), f.Color.Alpha(a))
}
