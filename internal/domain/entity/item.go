package entity

import (
	"github.com/younwookim/edge/internal/domain/anim"
	"github.com/younwookim/edge/internal/domain/geom"
)

// ItemKind tags what a pickup refills.
type ItemKind int

const (
	ItemFuel ItemKind = iota
	ItemShield
)

func (k ItemKind) String() string {
	switch k {
	case ItemFuel:
		return "fuel"
	case ItemShield:
		return "shield"
	default:
		return "unknown"
	}
}

// ItemSpec is the per-kind pickup configuration.
type ItemSpec struct {
	Amount  float64
	Size    float64
	Frames  int
	Runtime float64
}

// Item is a fuel or shield pickup. Pos is its centre in world space.
type Item struct {
	Pos      geom.Vector
	Kind     ItemKind
	Amount   float64
	Size     float64
	PickedUp bool

	Frame int
	Anim  *anim.StepAnimation
}

// NewItem creates a pickup whose idle animation loops over spec.Frames frames.
func NewItem(kind ItemKind, pos geom.Vector, spec ItemSpec) *Item {
	it := &Item{
		Pos:    pos,
		Kind:   kind,
		Amount: spec.Amount,
		Size:   spec.Size,
	}
	if spec.Frames > 1 && spec.Runtime > 0 {
		it.Anim = anim.NewLoop(spec.Runtime, spec.Frames, func(_ *anim.StepAnimation, step int) {
			it.Frame = (step + 1) % spec.Frames
		})
	}
	return it
}

// Collect marks the item picked up. It reports false if it already was.
func (it *Item) Collect() bool {
	if it.PickedUp {
		return false
	}
	it.PickedUp = true
	return true
}

// Animate advances the idle animation.
func (it *Item) Animate(dt float64) {
	if it.Anim != nil && !it.PickedUp {
		it.Anim.Animate(dt)
	}
}
