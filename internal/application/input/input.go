// Package input turns raw per-frame key and pointer levels into debounced
// button state.
package input

import (
	"fmt"

	"github.com/younwookim/edge/internal/domain/geom"
)

// Button is one of the fixed logical buttons.
type Button int

const (
	Up Button = iota
	Left
	Down
	Right
	ConfirmPrimary
	ConfirmSecondary
	ButtonCount
)

var buttonNames = [ButtonCount]string{"up", "left", "down", "right", "confirmPrimary", "confirmSecondary"}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// ParseButton resolves a logical button name.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Raw is the level-triggered input sampled by the platform once per frame.
type Raw struct {
	Buttons     [ButtonCount]bool
	PointerX    float64
	PointerY    float64
	PointerDown bool
}

// State is the debounced state of one button.
type State struct {
	Pressed     bool
	JustPressed bool // pressed this frame and not the previous one
}

// Pointer is the debounced mouse or touch state.
type Pointer struct {
	Pos         geom.Vector
	Pressed     bool
	JustPressed bool
}

// Input holds the debounced state for the current frame.
type Input struct {
	buttons [ButtonCount]State
	pointer Pointer
}

func New() *Input {
	return &Input{}
}

// Update derives this frame's edges from raw and the previous frame.
func (in *Input) Update(raw Raw) {
	for b := range in.buttons {
		was := in.buttons[b].Pressed
		now := raw.Buttons[b]
		in.buttons[b] = State{Pressed: now, JustPressed: now && !was}
	}

	was := in.pointer.Pressed
	in.pointer = Pointer{
		Pos:         geom.Vec(raw.PointerX, raw.PointerY),
		Pressed:     raw.PointerDown,
		JustPressed: raw.PointerDown && !was,
	}
}

// Button returns the state of b. An out-of-range b panics.
func (in *Input) Button(b Button) State {
	return in.buttons[b]
}

func (in *Input) Pressed(b Button) bool     { return in.buttons[b].Pressed }
func (in *Input) JustPressed(b Button) bool { return in.buttons[b].JustPressed }

func (in *Input) Pointer() Pointer {
	return in.pointer
}

// Confirm reports a primary confirm edge from the keyboard or the pointer.
func (in *Input) Confirm() bool {
	return in.buttons[ConfirmPrimary].JustPressed || in.pointer.JustPressed
}

// Pause reports a secondary confirm edge.
func (in *Input) Pause() bool {
	return in.buttons[ConfirmSecondary].JustPressed
}
