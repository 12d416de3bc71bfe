package system

import (
	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// LoseReason says how a run was lost.
type LoseReason string

const (
	LoseStalled   LoseReason = "stalled"
	LoseShattered LoseReason = "shield broken"
)

// LevelSystem runs one frame of a level: physics, pickups, hazards and the
// finish line.
type LevelSystem struct {
	config    *config.GameConfig
	physics   *PhysicsSystem
	collision *CollisionSystem

	// Event callbacks
	OnLose   func(reason LoseReason)
	OnWin    func()
	OnPickup func(item *entity.Item)
	OnHit    func(asteroid *entity.Asteroid)
}

// NewLevelSystem creates a new level system
func NewLevelSystem(cfg *config.GameConfig) *LevelSystem {
	s := &LevelSystem{
		config:    cfg,
		physics:   NewPhysicsSystem(&cfg.Player, float64(cfg.Display.ScreenWidth)),
		collision: NewCollisionSystem(),
	}
	s.collision.OnPickup = func(item *entity.Item) {
		if s.OnPickup != nil {
			s.OnPickup(item)
		}
	}
	s.collision.OnHit = func(a *entity.Asteroid) {
		if s.OnHit != nil {
			s.OnHit(a)
		}
	}
	return s
}

// Update advances the level and the player by dt.
func (s *LevelSystem) Update(player *entity.Player, level *entity.Level, dt float64) {
	level.Elapsed += dt

	if s.physics.Update(player, dt) {
		s.lose(LoseStalled)
	}
	player.Animate(dt)

	for _, item := range level.Fuels {
		item.Animate(dt)
	}
	for _, item := range level.Shields {
		item.Animate(dt)
	}
	s.collision.Pickups(player, level.Fuels)
	s.collision.Pickups(player, level.Shields)

	ast := s.config.Asteroids
	for _, a := range level.Asteroids {
		if !a.Destroyed {
			a.Oscillate(level.Elapsed, ast.Speed, ast.Amplitude)
		}
	}
	if s.collision.Hazards(player, level.Asteroids) {
		s.lose(LoseShattered)
	}

	if !level.Complete && player.Pos.Y > level.End {
		level.MarkComplete()
		if s.OnWin != nil {
			s.OnWin()
		}
	}
}

func (s *LevelSystem) lose(reason LoseReason) {
	if s.OnLose != nil {
		s.OnLose(reason)
	}
}
