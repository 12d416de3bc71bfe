package system

import (
	"math"

	"github.com/younwookim/edge/internal/domain/entity"
)

// CollisionSystem resolves pickups and hazard hits against the player.
type CollisionSystem struct {
	// Event callbacks
	OnPickup func(item *entity.Item)
	OnHit    func(asteroid *entity.Asteroid)
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// SpriteRange is the pickup proximity threshold on each axis.
func SpriteRange(player *entity.Player, item *entity.Item) float64 {
	return player.Stats.Size/2 + item.Size
}

// Pickups collects every item within sprite range of the player. Both are
// treated as centred points: this is a box approximation, not AABB overlap.
func (s *CollisionSystem) Pickups(player *entity.Player, items []*entity.Item) int {
	collected := 0
	for _, item := range items {
		if item.PickedUp {
			continue
		}

		r := SpriteRange(player, item)
		if math.Abs(player.Pos.X-item.Pos.X) >= r || math.Abs(player.Pos.Y-item.Pos.Y) >= r {
			continue
		}
		if !item.Collect() {
			continue
		}

		switch item.Kind {
		case entity.ItemFuel:
			player.AddFuel(item.Amount)
		case entity.ItemShield:
			player.AddShield(item.Amount)
		}
		collected++

		if s.OnPickup != nil {
			s.OnPickup(item)
		}
	}
	return collected
}

// Hazards damages the player for every live asteroid whose hitbox holds the
// player's position. It reports whether a hit broke the shield.
func (s *CollisionSystem) Hazards(player *entity.Player, asteroids []*entity.Asteroid) bool {
	broken := false
	for _, a := range asteroids {
		if a.Destroyed || !a.Bounds().Contains(player.Pos) {
			continue
		}
		a.Destroy()

		if player.TakeDamage(a.Class.Damage) {
			broken = true
		}

		if s.OnHit != nil {
			s.OnHit(a)
		}
	}
	return broken
}
