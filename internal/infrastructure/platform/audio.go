package platform

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/edge/internal/application/gfx"
)

// SampleRate is the rate every clip is rendered at and the audio context runs at.
const SampleRate = 44100

// bytesPerFrame is one stereo frame of 16-bit little-endian PCM.
const bytesPerFrame = 4

// decodeWAV decodes a WAV clip and resamples it to rate.
func decodeWAV(data []byte, rate beep.SampleRate) (beep.Streamer, error) {
	s, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	if format.SampleRate == rate {
		return s, nil
	}
	return beep.Resample(4, format.SampleRate, rate, s), nil
}

// renderPCM drains s into the 16-bit stereo PCM ebiten's audio players expect.
func renderPCM(s beep.Streamer) ([]byte, error) {
	var out bytes.Buffer
	buf := make([][2]float64, 512)
	frame := make([]byte, bytesPerFrame)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(smp[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(smp[1])))
			out.Write(frame)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render audio: %w", err)
	}
	return out.Bytes(), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// cue is a synthesised stand-in for a missing sound effect: a run of notes
// played back to back.
type cue struct {
	notes []float64 // Hz
	note  time.Duration
	gain  float64
}

var cues = [gfx.SoundCount]cue{
	gfx.SoundPickup:  {notes: []float64{660, 990}, note: 60 * time.Millisecond, gain: 0.3},
	gfx.SoundHit:     {notes: []float64{110, 82}, note: 90 * time.Millisecond, gain: 0.5},
	gfx.SoundConfirm: {notes: []float64{880}, note: 80 * time.Millisecond, gain: 0.3},
	gfx.SoundLose:    {notes: []float64{392, 330, 262}, note: 180 * time.Millisecond, gain: 0.4},
	gfx.SoundWin:     {notes: []float64{523, 659, 784, 1047}, note: 140 * time.Millisecond, gain: 0.4},
}

// synthesize builds the fallback cue for id.
func synthesize(id gfx.SoundID, rate beep.SampleRate) (beep.Streamer, error) {
	c := cues[id]
	notes := make([]beep.Streamer, 0, len(c.notes))
	for _, freq := range c.notes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", id, err)
		}
		notes = append(notes, beep.Take(rate.N(c.note), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   math.Log2(c.gain),
	}, nil
}

// AudioBank plays pre-rendered PCM clips through an ebiten audio context.
type AudioBank struct {
	ctx    *audio.Context
	sounds [gfx.SoundCount][]byte
	music  [gfx.MusicCount][]byte
	track  *audio.Player
	logger *log.Logger
}

// NewAudioBank creates a bank playing the clips of a through ctx.
func NewAudioBank(ctx *audio.Context, a *Assets, logger *log.Logger) *AudioBank {
	return &AudioBank{ctx: ctx, sounds: a.Sounds, music: a.Music, logger: logger}
}

// PlaySound starts a one-shot player. Overlapping calls mix.
func (b *AudioBank) PlaySound(id gfx.SoundID) {
	pcm := b.sounds[id]
	if len(pcm) == 0 {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayMusic replaces the current track.
func (b *AudioBank) PlayMusic(id gfx.MusicID, loop bool) {
	b.StopMusic()
	pcm := b.music[id]
	if len(pcm) == 0 {
		return
	}

	if !loop {
		b.track = b.ctx.NewPlayerFromBytes(pcm)
		b.track.Play()
		return
	}

	src := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := b.ctx.NewPlayer(src)
	if err != nil {
		b.logger.Error("failed to start music", "track", id, "err", err)
		return
	}
	b.track = p
	b.track.Play()
}

func (b *AudioBank) StopMusic() {
	if b.track == nil {
		return
	}
	b.track.Pause()
	if err := b.track.Close(); err != nil {
		b.logger.Warn("failed to close music player", "err", err)
	}
	b.track = nil
}
