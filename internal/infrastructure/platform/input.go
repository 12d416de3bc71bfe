package platform

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// ParseKey resolves an ebiten key name such as "ArrowUp", "W" or "Space".
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keysByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Keymap lists the keys bound to each button.
type Keymap [input.ButtonCount][]ebiten.Key

// NewKeymap resolves the configured bindings.
func NewKeymap(cfg config.KeysConfig) (Keymap, error) {
	var km Keymap
	bindings := [input.ButtonCount][]string{
		input.Up:               cfg.Up,
		input.Left:             cfg.Left,
		input.Down:             cfg.Down,
		input.Right:            cfg.Right,
		input.ConfirmPrimary:   cfg.ConfirmPrimary,
		input.ConfirmSecondary: cfg.ConfirmSecondary,
	}
	for b, names := range bindings {
		for _, name := range names {
			k, err := ParseKey(name)
			if err != nil {
				return km, fmt.Errorf("failed to bind %s: %w", input.Button(b), err)
			}
			km[b] = append(km[b], k)
		}
	}
	return km, nil
}

// InputSource polls the keyboard, mouse and touch screen.
type InputSource struct {
	keys    Keymap
	touches []ebiten.TouchID
}

func NewInputSource(keys Keymap) *InputSource {
	return &InputSource{keys: keys}
}

// Poll samples the level-triggered state of every button and the pointer.
// A touch takes precedence over the mouse.
func (s *InputSource) Poll() input.Raw {
	var raw input.Raw
	for b, keys := range s.keys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				raw.Buttons[b] = true
				break
			}
		}
	}

	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	if len(s.touches) > 0 {
		x, y := ebiten.TouchPosition(s.touches[0])
		raw.PointerX, raw.PointerY = float64(x), float64(y)
		raw.PointerDown = true
		return raw
	}

	x, y := ebiten.CursorPosition()
	raw.PointerX, raw.PointerY = float64(x), float64(y)
	raw.PointerDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return raw
}
