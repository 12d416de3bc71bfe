package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/younwookim/edge/internal/application/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Load decodes a recording written by Recorder.Save.
func Load(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Next returns the delta and input of the current frame and advances.
func (r *Replayer) Next() (float64, input.Raw, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, input.Raw{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.DT, fi.Raw(), true
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}
