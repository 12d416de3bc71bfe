package system

import (
	"math"

	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// Fraction of the acceleration factor used to coast to a stop, and to
// lose lift once the tank is dry.
const (
	idleAccelScale  = 0.5
	stallAccelScale = 0.1
)

// PhysicsSystem integrates the player's motion with the Intent & Apply model:
// input sets Player.Intent, Update consumes and resets it.
type PhysicsSystem struct {
	config *config.PlayerConfig
	minX   float64
	maxX   float64
}

// NewPhysicsSystem creates a physics system for a playfield screenWidth wide.
func NewPhysicsSystem(cfg *config.PlayerConfig, screenWidth float64) *PhysicsSystem {
	half := cfg.Size / 2
	return &PhysicsSystem{
		config: cfg,
		minX:   cfg.Margin + half,
		maxX:   screenWidth - cfg.Margin - half,
	}
}

// Update advances the player by dt. It reports true on the one frame the
// ship stalls: out of fuel and climbing slower than the stall speed.
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) bool {
	player.StartTurn(TurnSpec(s.config))

	s.applyHorizontal(player, dt)
	s.applyVertical(player, dt)
	player.BurnFuel(dt)

	player.Pos = player.Pos.Add(player.Vel.Mult(dt))
	player.Pos.X = math.Max(s.minX, math.Min(player.Pos.X, s.maxX))

	stalled := false
	if !player.HasFuel() && !player.Stalled && player.Vel.Y < s.config.StallSpeed {
		player.Stalled = true
		stalled = true
	}

	// Intent is a one-frame command
	player.Intent = entity.IntentIdle
	return stalled
}

func (s *PhysicsSystem) applyHorizontal(player *entity.Player, dt float64) {
	if !player.HasFuel() {
		player.Vel.X = 0
		return
	}

	accel := player.Stats.AccelerationFactor
	target := 0.0
	switch player.Intent {
	case entity.IntentLeft:
		target = -player.Stats.HorizontalSpeed
	case entity.IntentRight:
		target = player.Stats.HorizontalSpeed
	default:
		accel *= idleAccelScale
	}

	player.Vel.X = approach(player.Vel.X, target, accel*dt)

	if player.Intent == entity.IntentIdle && math.Abs(player.Vel.X) < s.config.PixelSize {
		player.Vel.X = 0
	}
}

func (s *PhysicsSystem) applyVertical(player *entity.Player, dt float64) {
	accel := player.Stats.AccelerationFactor
	if player.HasFuel() {
		player.Vel.Y = approach(player.Vel.Y, player.Stats.VerticalSpeed, accel*dt)
		return
	}
	player.Vel.Y = approach(player.Vel.Y, 0, accel*stallAccelScale*dt)
}

// approach moves v toward target by factor of the remaining gap, landing
// exactly on target instead of overshooting it.
func approach(v, target, factor float64) float64 {
	next := v + (target-v)*factor
	if (target-v)*(target-next) <= 0 {
		return target
	}
	return next
}

// Stats maps the player config onto the entity's tuning constants.
func Stats(cfg *config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Size:               cfg.Size,
		HorizontalSpeed:    cfg.HorizontalSpeed,
		VerticalSpeed:      cfg.VerticalSpeed,
		AccelerationFactor: cfg.AccelerationFactor,
		MaxFuel:            cfg.MaxFuel,
		MaxShield:          cfg.MaxShield,
	}
}

func TurnSpec(cfg *config.PlayerConfig) entity.TurnSpec {
	return entity.TurnSpec{
		Runtime:    cfg.Turn.Runtime,
		Steps:      cfg.Turn.Steps,
		LeftFrame:  cfg.Turn.LeftFrame,
		RightFrame: cfg.Turn.RightFrame,
	}
}
