package system

import (
	"math/rand"

	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/domain/geom"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

const frame = 1.0 / 60

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 512, ScreenHeight: 512},
		Player: config.PlayerConfig{
			Size:               64,
			HorizontalSpeed:    256,
			VerticalSpeed:      256,
			AccelerationFactor: 8,
			MaxFuel:            20,
			MaxShield:          3,
			PixelSize:          4,
			StallSpeed:         8,
			Margin:             32,
			Turn:               config.TurnConfig{Runtime: 0.4, Steps: 4, LeftFrame: 0, RightFrame: 4},
		},
		Items: config.ItemsConfig{
			Fuel:   config.ItemConfig{Amount: 8, Size: 32, Frames: 4, Runtime: 0.8},
			Shield: config.ItemConfig{Amount: 1, Size: 32, Frames: 4, Runtime: 0.8},
		},
		Asteroids: config.AsteroidsConfig{
			Sizes:             []float64{32, 48, 64},
			Amplitude:         64,
			Speed:             1.5,
			OscillationChance: 0.5,
		},
		Level: config.LevelConfig{
			End:            4000,
			StartClearance: 500,
			Fuels:          5,
			Shields:        3,
			Asteroids:      20,
		},
	}
}

func createTestPlayer(cfg *config.GameConfig) *entity.Player {
	return entity.NewPlayer(Stats(&cfg.Player), geom.Vec(256, 0))
}
