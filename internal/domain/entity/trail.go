package entity

import (
	"math"
	"math/rand"

	"github.com/younwookim/edge/internal/domain/geom"
)

// TrailSpec configures the exhaust trail.
type TrailSpec struct {
	MaxLength           int
	SpawnPeriod         float64
	FallSpeed           float64
	MaxHorizontalOffset float64
}

// Particle is one exhaust puff in world space.
type Particle struct {
	Pos  geom.Vector
	Live bool
}

// Trail is a fixed ring of particles recycled oldest first.
type Trail struct {
	Spec      TrailSpec
	Particles []Particle

	elapsed float64
	next    int
	side    float64
}

func NewTrail(spec TrailSpec) *Trail {
	return &Trail{
		Spec:      spec,
		Particles: make([]Particle, spec.MaxLength),
		side:      1,
	}
}

// Update lets every particle fall and, while emit is set, spawns the next
// one at origin once per jittered spawn period.
func (t *Trail) Update(dt float64, origin geom.Vector, emit bool, rng *rand.Rand) {
	for i := range t.Particles {
		t.Particles[i].Pos.Y -= t.Spec.FallSpeed * dt
	}

	if !emit || len(t.Particles) == 0 || t.Spec.SpawnPeriod <= 0 {
		return
	}

	t.elapsed += dt
	if t.elapsed < t.Spec.SpawnPeriod {
		return
	}
	t.elapsed = math.Mod(t.elapsed, t.Spec.SpawnPeriod)
	t.elapsed += (rng.Float64() - 0.5) / 16

	offset := (rng.Float64()*0.5 + 0.5) * t.Spec.MaxHorizontalOffset * t.side
	t.Particles[t.next] = Particle{Pos: geom.Vec(origin.X+offset, origin.Y), Live: true}

	t.side = -t.side
	t.next = (t.next + 1) % len(t.Particles)
}
