package system

import (
	"math/rand"

	"github.com/younwookim/edge/internal/domain/entity"
	"github.com/younwookim/edge/internal/domain/geom"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// GenerateLevel lays out a course. Entities of each kind are spread evenly
// between the start clearance and the finish, with x and asteroid traits
// drawn from rng, so a seed always produces the same course.
func GenerateLevel(cfg *config.GameConfig, rng *rand.Rand) *entity.Level {
	lc := cfg.Level
	width := float64(cfg.Display.ScreenWidth)
	margin := cfg.Player.Margin

	level := &entity.Level{End: lc.End}

	for _, y := range spread(lc.Fuels, lc.StartClearance, lc.End, rng) {
		level.Fuels = append(level.Fuels, newItem(entity.ItemFuel, cfg.Items.Fuel, y, width, margin, rng))
	}
	for _, y := range spread(lc.Shields, lc.StartClearance, lc.End, rng) {
		level.Shields = append(level.Shields, newItem(entity.ItemShield, cfg.Items.Shield, y, width, margin, rng))
	}

	classes := entity.AsteroidClasses(cfg.Asteroids.Sizes)
	for _, y := range spread(lc.Asteroids, lc.StartClearance, lc.End, rng) {
		index := rng.Intn(len(classes))
		size := classes[index].Size
		x := between(rng, margin, width-margin-size)

		a := entity.NewAsteroid(geom.Vec(x, y), index, classes)
		if rng.Float64() < cfg.Asteroids.OscillationChance {
			a.Oscillates = true
			a.Seed = rng.Float64()
		}
		level.Asteroids = append(level.Asteroids, a)
	}

	return level
}

func newItem(kind entity.ItemKind, ic config.ItemConfig, y, width, margin float64, rng *rand.Rand) *entity.Item {
	half := ic.Size / 2
	x := between(rng, margin+half, width-margin-half)
	return entity.NewItem(kind, geom.Vec(x, y), entity.ItemSpec{
		Amount:  ic.Amount,
		Size:    ic.Size,
		Frames:  ic.Frames,
		Runtime: ic.Runtime,
	})
}

// spread returns n altitudes, one per equal band of [from, to), jittered
// within the middle half of each band.
func spread(n int, from, to float64, rng *rand.Rand) []float64 {
	if n <= 0 || to <= from {
		return nil
	}
	band := (to - from) / float64(n)
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = from + band*(float64(i)+0.25+rng.Float64()*0.5)
	}
	return ys
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// NewRun creates a fresh player at the bottom centre of the course and the level above it.
func NewRun(cfg *config.GameConfig, rng *rand.Rand) (*entity.Player, *entity.Level) {
	player := entity.NewPlayer(Stats(&cfg.Player), geom.Vec(float64(cfg.Display.ScreenWidth)/2, 0))
	player.Frame = cfg.Player.Turn.LeftFrame
	return player, GenerateLevel(cfg, rng)
}
