package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/domain/geom"
)

type levelEvents struct {
	loses   []LoseReason
	wins    int
	pickups int
	hits    int
}

func newTestLevelSystem() (*LevelSystem, *levelEvents) {
	ls := NewLevelSystem(createTestGameConfig())
	ev := &levelEvents{}
	ls.OnLose = func(r LoseReason) { ev.loses = append(ev.loses, r) }
	ls.OnWin = func() { ev.wins++ }
	ls.OnPickup = func(*entity.Item) { ev.pickups++ }
	ls.OnHit = func(*entity.Asteroid) { ev.hits++ }
	return ls, ev
}

func TestLevelSystem_WinFiresOnce(t *testing.T) {
	ls, ev := newTestLevelSystem()
	player := createTestPlayer(createTestGameConfig())
	level := &entity.Level{End: 100}

	player.Pos.Y = 99
	ls.Update(player, level, frame)
	require.False(t, level.Complete)

	player.Pos.Y = 101
	ls.Update(player, level, frame)
	ls.Update(player, level, frame)
	ls.Update(player, level, frame)

	assert.True(t, level.Complete)
	assert.Equal(t, 1, ev.wins)
}

func TestLevelSystem_PickupDuringUpdate(t *testing.T) {
	cfg := createTestGameConfig()
	ls, ev := newTestLevelSystem()
	player := createTestPlayer(cfg)
	player.Fuel = 4
	level := &entity.Level{
		End:   1000,
		Fuels: []*entity.Item{entity.NewItem(entity.ItemFuel, player.Pos, entity.ItemSpec{Amount: 8, Size: 32})},
	}

	for i := 0; i < 3; i++ {
		ls.Update(player, level, frame)
	}

	assert.Equal(t, 1, ev.pickups)
	assert.InDelta(t, 12-3*frame, player.Fuel, 1e-9)
}

func TestLevelSystem_ShieldBreakLoses(t *testing.T) {
	cfg := createTestGameConfig()
	ls, ev := newTestLevelSystem()
	player := createTestPlayer(cfg)
	player.Shield = 1
	classes := entity.AsteroidClasses(cfg.Asteroids.Sizes)
	level := &entity.Level{
		End:       1000,
		Asteroids: []*entity.Asteroid{entity.NewAsteroid(player.Pos.Sub(geom.Vec(16, 16)), 2, classes)},
	}

	ls.Update(player, level, frame)
	ls.Update(player, level, frame)

	assert.Equal(t, 1, ev.hits)
	assert.Equal(t, []LoseReason{LoseShattered}, ev.loses)
}

func TestLevelSystem_StallLoses(t *testing.T) {
	ls, ev := newTestLevelSystem()
	player := createTestPlayer(createTestGameConfig())
	player.Fuel = 0
	level := &entity.Level{End: 100000}

	for i := 0; i < 60; i++ {
		ls.Update(player, level, frame)
	}

	assert.Equal(t, []LoseReason{LoseStalled}, ev.loses)
}

func TestLevelSystem_OscillatesLiveAsteroids(t *testing.T) {
	cfg := createTestGameConfig()
	ls, _ := newTestLevelSystem()
	player := createTestPlayer(cfg)
	classes := entity.AsteroidClasses(cfg.Asteroids.Sizes)

	moving := entity.NewAsteroid(geom.Vec(100, 3000), 0, classes)
	moving.Oscillates = true
	moving.Seed = 0.3
	wreck := entity.NewAsteroid(geom.Vec(100, 3000), 0, classes)
	wreck.Oscillates = true
	wreck.Seed = 0.3
	wreck.Destroyed = true

	level := &entity.Level{End: 10000, Asteroids: []*entity.Asteroid{moving, wreck}}
	ls.Update(player, level, 0.1)

	assert.NotEqual(t, 100.0, moving.Pos.X)
	assert.Equal(t, 100.0, wreck.Pos.X)
	assert.InDelta(t, 0.1, level.Elapsed, 1e-12)
}
