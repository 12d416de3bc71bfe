package platform

import (
	"bytes"
	"context"
	"image"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/edge/internal/application/gfx"
	"github.com/younwookim/edge/internal/infrastructure/config"
)

// maxLoaders bounds the number of assets decoded at once.
const maxLoaders = 4

// AssetReader reads asset files by their configured path.
type AssetReader interface {
	ReadAsset(path string) ([]byte, error)
}

// Decoded is everything read from disk, before any upload to the GPU.
type Decoded struct {
	Sheets [gfx.SpriteCount]image.Image
	Sounds [gfx.SoundCount][]byte
	Music  [gfx.MusicCount][]byte
	Font   *text.GoTextFaceSource
}

// Assets is the loaded asset set the canvas and audio bank draw from.
type Assets struct {
	Sprites  *SpriteBank
	Sounds   [gfx.SoundCount][]byte
	Music    [gfx.MusicCount][]byte
	Font     *text.GoTextFaceSource
	FontSize float64
}

// Decode reads and decodes every configured asset concurrently. Loading is
// best effort: a failure is logged and leaves its slot empty. Sounds that
// are still missing afterwards get a synthesised cue.
func Decode(ctx context.Context, r AssetReader, cfg config.AssetsConfig, logger *log.Logger) *Decoded {
	d := &Decoded{}
	rate := beep.SampleRate(SampleRate)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLoaders)

	load := func(kind, name, path string, decode func([]byte) error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.ReadAsset(path)
			if err == nil {
				err = decode(data)
			}
			if err != nil {
				logger.Error("asset load failed", "kind", kind, "name", name, "err", err)
			}
			return nil
		})
	}

	for name, sc := range cfg.Sprites {
		id, err := gfx.ParseSprite(name)
		if err != nil {
			logger.Warn("ignoring sprite sheet", "name", name, "err", err)
			continue
		}
		load("sprite", name, sc.Path, func(data []byte) error {
			img, err := decodeSheet(data)
			d.Sheets[id] = img
			return err
		})
	}

	for name, path := range cfg.Sounds {
		id, err := gfx.ParseSound(name)
		if err != nil {
			logger.Warn("ignoring sound", "name", name, "err", err)
			continue
		}
		load("sound", name, path, func(data []byte) error {
			pcm, err := decodeClip(data, rate)
			d.Sounds[id] = pcm
			return err
		})
	}

	for name, path := range cfg.Music {
		id, err := gfx.ParseMusic(name)
		if err != nil {
			logger.Warn("ignoring music", "name", name, "err", err)
			continue
		}
		load("music", name, path, func(data []byte) error {
			pcm, err := decodeClip(data, rate)
			d.Music[id] = pcm
			return err
		})
	}

	if cfg.Font.Path != "" {
		load("font", "font", cfg.Font.Path, func(data []byte) error {
			src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			d.Font = src
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("asset loading interrupted", "err", err)
	}

	for id := gfx.SoundID(0); id < gfx.SoundCount; id++ {
		if d.Sounds[id] != nil {
			continue
		}
		s, err := synthesize(id, rate)
		if err == nil {
			d.Sounds[id], err = renderPCM(s)
		}
		if err != nil {
			logger.Error("fallback cue failed", "sound", id, "err", err)
		}
	}
	return d
}

func decodeClip(data []byte, rate beep.SampleRate) ([]byte, error) {
	s, err := decodeWAV(data, rate)
	if err != nil {
		return nil, err
	}
	return renderPCM(s)
}

// Upload turns decoded assets into drawable ones. Call it from the main goroutine.
func Upload(d *Decoded, cfg config.AssetsConfig, logger *log.Logger) *Assets {
	return &Assets{
		Sprites:  NewSpriteBank(cfg.Sprites, d.Sheets, logger),
		Sounds:   d.Sounds,
		Music:    d.Music,
		Font:     d.Font,
		FontSize: cfg.Font.Size,
	}
}
