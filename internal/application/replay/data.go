// Package replay records per-frame input so a run can be reproduced headless.
package replay

import "github.com/younwookim/edge/internal/application/input"

// Version is written into every recording.
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Guarded frame delta
	U  bool    `json:"u,omitempty"`  // Up
	L  bool    `json:"l,omitempty"`  // Left
	D  bool    `json:"d,omitempty"`  // Down
	R  bool    `json:"r,omitempty"`  // Right
	CP bool    `json:"cp,omitempty"` // ConfirmPrimary
	CS bool    `json:"cs,omitempty"` // ConfirmSecondary
	PX float64 `json:"px,omitempty"` // PointerX
	PY float64 `json:"py,omitempty"` // PointerY
	PD bool    `json:"pd,omitempty"` // PointerDown
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromRaw(f int, dt float64, raw input.Raw) FrameInput {
	b := raw.Buttons
	return FrameInput{
		F:  f,
		DT: dt,
		U:  b[input.Up],
		L:  b[input.Left],
		D:  b[input.Down],
		R:  b[input.Right],
		CP: b[input.ConfirmPrimary],
		CS: b[input.ConfirmSecondary],
		PX: raw.PointerX,
		PY: raw.PointerY,
		PD: raw.PointerDown,
	}
}

// Raw rebuilds the sampled input of the frame.
func (fi FrameInput) Raw() input.Raw {
	var raw input.Raw
	raw.Buttons[input.Up] = fi.U
	raw.Buttons[input.Left] = fi.L
	raw.Buttons[input.Down] = fi.D
	raw.Buttons[input.Right] = fi.R
	raw.Buttons[input.ConfirmPrimary] = fi.CP
	raw.Buttons[input.ConfirmSecondary] = fi.CS
	raw.PointerX = fi.PX
	raw.PointerY = fi.PY
	raw.PointerDown = fi.PD
	return raw
}
