package effect

import "math/rand"

// Shake jitters the scene draw offset after impacts.
type Shake struct {
	Amplitude float64
	Decay     float64 // intensity lost per second

	Intensity float64
	X, Y      float64

	rng *rand.Rand
}

func NewShake(amplitude, decay float64, rng *rand.Rand) *Shake {
	return &Shake{Amplitude: amplitude, Decay: decay, rng: rng}
}

// Add bumps the intensity; any shake is at least 1.
func (s *Shake) Add(intensity float64) {
	s.Intensity = max(s.Intensity+intensity, 1)
}

// Update decays the intensity and picks a fresh offset.
func (s *Shake) Update(dt float64) {
	if s.Intensity <= 0 {
		s.X, s.Y = 0, 0
		return
	}
	s.Intensity = max(s.Intensity-dt*s.Decay, 0)
	s.X = s.jitter()
	s.Y = s.jitter()
}

// Offset is the translation to draw the scene with this frame.
func (s *Shake) Offset() (dx, dy float64) {
	return s.X, s.Y
}

func (s *Shake) jitter() float64 {
	return (s.rng.Float64()*2 - 1) * s.Intensity * s.Amplitude
}
