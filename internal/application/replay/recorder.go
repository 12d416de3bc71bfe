package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/younwookim/edge/internal/application/input"
)

// ErrEmpty is returned when saving a recording with no frames.
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder for a session seeded with seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's delta and input
func (r *Recorder) RecordFrame(dt float64, raw input.Raw) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, frameFromRaw(len(r.data.Frames), dt, raw))
}

// Save writes the recording as indented JSON.
func (r *Recorder) Save(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}
