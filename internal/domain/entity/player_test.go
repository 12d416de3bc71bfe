package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/edge/internal/domain/geom"
)

func testStats() PlayerStats {
	return PlayerStats{
		Size:               64,
		HorizontalSpeed:    256,
		VerticalSpeed:      256,
		AccelerationFactor: 8,
		MaxFuel:            20,
		MaxShield:          3,
	}
}

var testTurn = TurnSpec{Runtime: 0.4, Steps: 4, LeftFrame: 0, RightFrame: 4}

func TestNewPlayer_StartsFull(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vec(10, 0))

	assert.Equal(t, 20.0, p.Fuel)
	assert.Equal(t, 3.0, p.Shield)
	assert.Equal(t, IntentIdle, p.Intent)
	assert.Equal(t, geom.Vec(10, 0), p.Pos)
}

func TestPlayer_ResourcesClamp(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vector{})

	p.AddFuel(100)
	assert.Equal(t, 20.0, p.Fuel)
	p.AddFuel(-100)
	assert.Equal(t, 0.0, p.Fuel)

	p.Shield = 1
	p.AddShield(1)
	assert.Equal(t, 2.0, p.Shield)
	p.AddShield(5)
	assert.Equal(t, 3.0, p.Shield)
}

func TestPlayer_BurnFuel(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vector{})
	p.Fuel = 0.5

	p.BurnFuel(0.2)
	assert.InDelta(t, 0.3, p.Fuel, 1e-9)
	assert.True(t, p.HasFuel())

	p.BurnFuel(1)
	assert.Equal(t, 0.0, p.Fuel)
	assert.False(t, p.HasFuel())
}

func TestPlayer_TakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		shield     float64
		damage     float64
		wantBroken bool
		wantShield float64
	}{
		{"absorbed", 3, 1, false, 2},
		{"exactly depleted", 2, 2, true, 0},
		{"underflow clamps", 1, 3, true, 0},
		{"already down", 0, 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testStats(), geom.Vector{})
			p.Shield = tt.shield

			assert.Equal(t, tt.wantBroken, p.TakeDamage(tt.damage))
			assert.Equal(t, tt.wantShield, p.Shield)
		})
	}
}

func TestPlayer_TurnStepsToOppositeFrame(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vector{})
	p.Frame = testTurn.LeftFrame

	p.Steer(IntentRight)
	p.StartTurn(testTurn)
	assert.NotNil(t, p.Turn)

	for i := 0; i < 4; i++ {
		p.Animate(0.1)
	}

	assert.Equal(t, testTurn.RightFrame, p.Frame)
	assert.Nil(t, p.Turn, "completed turn detaches")
}

func TestPlayer_TurnOnlyOneLive(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vector{})
	p.Steer(IntentRight)
	p.StartTurn(testTurn)
	first := p.Turn

	p.Steer(IntentRight)
	p.StartTurn(testTurn)

	assert.Same(t, first, p.Turn)
}

func TestPlayer_TurnIgnoredWhenAlreadyFacing(t *testing.T) {
	tests := []struct {
		name   string
		frame  int
		intent Intent
	}{
		{"left while facing left", 0, IntentLeft},
		{"right while facing right", 4, IntentRight},
		{"idle", 0, IntentIdle},
		{"mid-turn frame", 2, IntentLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testStats(), geom.Vector{})
			p.Frame = tt.frame
			p.Steer(tt.intent)

			p.StartTurn(testTurn)

			assert.Nil(t, p.Turn)
		})
	}
}

func TestPlayer_HoverOffset(t *testing.T) {
	p := NewPlayer(testStats(), geom.Vector{})
	assert.Equal(t, 0.0, p.HoverOffset(8, 5))

	p.Animate(0.1)
	assert.InDelta(t, 3.835, p.HoverOffset(8, 5), 1e-3)
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "idle", IntentIdle.String())
	assert.Equal(t, "left", IntentLeft.String())
	assert.Equal(t, "right", IntentRight.String())
	assert.Equal(t, "unknown", Intent(9).String())
}
