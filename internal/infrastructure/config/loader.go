package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration document every loader reads.
const FileName = "game.yaml"

// Loader loads game configuration from YAML using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads, parses and validates game.yaml.
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadAsset reads an asset file relative to the loader's root.
func (l *Loader) ReadAsset(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", path, err)
	}
	return data, nil
}

// BasePath returns the path the loader was created with.
func (l *Loader) BasePath() string {
	return l.basePath
}

// Parse decodes a game.yaml document and validates it.
func Parse(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
