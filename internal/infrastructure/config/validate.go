package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// Validate rejects values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"display.screenWidth", float64(c.Display.ScreenWidth)},
		{"display.screenHeight", float64(c.Display.ScreenHeight)},
		{"timing.stallThreshold", c.Timing.StallThreshold},
		{"player.size", c.Player.Size},
		{"player.horizontalSpeed", c.Player.HorizontalSpeed},
		{"player.verticalSpeed", c.Player.VerticalSpeed},
		{"player.accelerationFactor", c.Player.AccelerationFactor},
		{"player.maxFuel", c.Player.MaxFuel},
		{"player.maxShield", c.Player.MaxShield},
		{"player.pixelSize", c.Player.PixelSize},
		{"items.fuel.size", c.Items.Fuel.Size},
		{"items.shield.size", c.Items.Shield.Size},
		{"level.end", c.Level.End},
		{"fade.duration", c.Fade.Duration},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return invalid(p.field, "must be positive, got %v", p.value)
		}
	}

	if len(c.Asteroids.Sizes) == 0 {
		return invalid("asteroids.sizes", "must list at least one size class")
	}
	for i, s := range c.Asteroids.Sizes {
		if s <= 0 {
			return invalid(fmt.Sprintf("asteroids.sizes[%d]", i), "must be positive, got %v", s)
		}
	}
	if c.Asteroids.OscillationChance < 0 || c.Asteroids.OscillationChance > 1 {
		return invalid("asteroids.oscillationChance", "must be within [0, 1], got %v", c.Asteroids.OscillationChance)
	}

	if 2*c.Player.Margin >= float64(c.Display.ScreenWidth) {
		return invalid("player.margin", "leaves no playfield on a %d wide screen", c.Display.ScreenWidth)
	}

	for _, color := range []struct {
		field string
		value int
	}{
		{"fade.color", c.Fade.Color},
		{"trail.color", c.Trail.Color},
		{"debug.pixelGrid.color", c.Debug.PixelGrid.Color},
	} {
		if color.value < 0 || color.value >= paletteSize {
			return invalid(color.field, "must index the palette, got %d", color.value)
		}
	}

	bindings := map[string][]string{
		"keys.up":               c.Keys.Up,
		"keys.left":             c.Keys.Left,
		"keys.down":             c.Keys.Down,
		"keys.right":            c.Keys.Right,
		"keys.confirmPrimary":   c.Keys.ConfirmPrimary,
		"keys.confirmSecondary": c.Keys.ConfirmSecondary,
	}
	for field, keys := range bindings {
		if len(keys) == 0 {
			return invalid(field, "needs at least one key")
		}
	}

	return nil
}

// paletteSize mirrors gfx.PaletteSize; config does not import the application layer.
const paletteSize = 16
