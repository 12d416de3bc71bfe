// Package clock measures wall-clock frame deltas.
package clock

import (
	"time"

	"github.com/charmbracelet/log"
)

// DefaultStallThreshold is used when none is configured.
const DefaultStallThreshold = 0.2

// Guard returns dt, or 0 when dt exceeds threshold. The second result
// reports whether the frame was dropped.
func Guard(dt, threshold float64) (float64, bool) {
	if dt > threshold {
		return 0, true
	}
	return dt, false
}

// Clock yields the seconds elapsed between successive Tick calls.
type Clock struct {
	StallThreshold float64

	now    func() time.Time
	last   time.Time
	logger *log.Logger
}

// New creates a Clock reading the system time.
func New(threshold float64, logger *log.Logger) *Clock {
	return NewWithSource(threshold, time.Now, logger)
}

// NewWithSource creates a Clock reading now.
func NewWithSource(threshold float64, now func() time.Time, logger *log.Logger) *Clock {
	if threshold <= 0 {
		threshold = DefaultStallThreshold
	}
	return &Clock{StallThreshold: threshold, now: now, logger: logger}
}

// Tick returns the guarded delta since the previous Tick. The first Tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}

	raw := t.Sub(c.last).Seconds()
	c.last = t

	dt, stalled := Guard(raw, c.StallThreshold)
	if stalled {
		c.logger.Warn("frame stall, skipping step", "dt", raw, "threshold", c.StallThreshold)
	}
	return dt
}

// Now exposes the clock's time source.
func (c *Clock) Now() time.Time {
	return c.now()
}

// FPSCounter counts frames drawn within the last second.
type FPSCounter struct {
	stamps []time.Time
}

// Tick records a frame at now and returns the frame count of the trailing second.
func (f *FPSCounter) Tick(now time.Time) int {
	f.stamps = append(f.stamps, now)

	keep := f.stamps[:0]
	for _, s := range f.stamps {
		if now.Sub(s) < time.Second {
			keep = append(keep, s)
		}
	}
	f.stamps = keep
	return len(f.stamps)
}
