package entity

import (
	"math"

	"github.com/younwookim/edge/internal/domain/anim"
	"github.com/younwookim/edge/internal/domain/geom"
)

// Intent is the one-frame movement command consumed by player physics.
type Intent int

const (
	IntentIdle Intent = iota
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentIdle:
		return "idle"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "unknown"
	}
}

// PlayerStats are the tuning constants of a run's ship.
type PlayerStats struct {
	Size               float64
	HorizontalSpeed    float64
	VerticalSpeed      float64
	AccelerationFactor float64
	MaxFuel            float64
	MaxShield          float64
}

// TurnSpec configures the sprite turn between the left and right facing frames.
type TurnSpec struct {
	Runtime    float64
	Steps      int
	LeftFrame  int
	RightFrame int
}

// Player is the ship. Pos is its centre in world space, Y pointing up.
type Player struct {
	Pos   geom.Vector
	Vel   geom.Vector
	Stats PlayerStats

	Fuel   float64
	Shield float64
	Intent Intent

	// Stalled is set once when the ship runs dry and stops climbing.
	Stalled bool

	Frame   int
	Turn    *anim.StepAnimation // nil unless a turn is playing
	Elapsed float64
}

// NewPlayer creates a fully fuelled, fully shielded ship at pos.
func NewPlayer(stats PlayerStats, pos geom.Vector) *Player {
	return &Player{
		Pos:    pos,
		Stats:  stats,
		Fuel:   stats.MaxFuel,
		Shield: stats.MaxShield,
	}
}

// Steer asserts this frame's movement command.
func (p *Player) Steer(i Intent) {
	p.Intent = i
}

// AddFuel refills fuel up to MaxFuel.
func (p *Player) AddFuel(amount float64) {
	p.Fuel = clamp(p.Fuel+amount, 0, p.Stats.MaxFuel)
}

// AddShield restores shield up to MaxShield.
func (p *Player) AddShield(amount float64) {
	p.Shield = clamp(p.Shield+amount, 0, p.Stats.MaxShield)
}

// BurnFuel consumes dt seconds of fuel, flooring at zero.
func (p *Player) BurnFuel(dt float64) {
	if p.Fuel <= 0 {
		return
	}
	p.Fuel = math.Max(p.Fuel-dt, 0)
}

// TakeDamage subtracts damage from the shield and reports whether the hit
// broke it: the shield was up and could not absorb the damage.
func (p *Player) TakeDamage(damage float64) bool {
	before := p.Shield
	p.Shield = math.Max(p.Shield-damage, 0)
	return before > 0 && before <= damage
}

// HasFuel reports whether the engine can still burn.
func (p *Player) HasFuel() bool {
	return p.Fuel > 0
}

// StartTurn begins a turn animation when the current intent points away from
// the facing frame. A turn already playing is left alone.
func (p *Player) StartTurn(spec TurnSpec) {
	if p.Turn != nil || spec.Steps <= 0 {
		return
	}

	var delta int
	switch {
	case p.Intent == IntentLeft && p.Frame == spec.RightFrame:
		delta = -1
	case p.Intent == IntentRight && p.Frame == spec.LeftFrame:
		delta = 1
	default:
		return
	}

	turn := anim.New(spec.Runtime, spec.Steps, func(*anim.StepAnimation, int) {
		p.Frame += delta
	})
	turn.OnComplete = func(*anim.StepAnimation) {
		p.Turn = nil
	}
	p.Turn = turn
}

// Animate advances the visual clocks: hover bob and any playing turn.
func (p *Player) Animate(dt float64) {
	p.Elapsed += dt
	if p.Turn != nil {
		p.Turn.Animate(dt)
	}
}

// HoverOffset is the purely visual vertical bob, in pixels.
func (p *Player) HoverOffset(amplitude, speed float64) float64 {
	return math.Sin(p.Elapsed*speed) * amplitude
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
