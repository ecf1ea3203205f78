package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"image-board/storage"
)

// Settings are the runtime options. They come from DefaultSettings, then an
// optional YAML file, then IMAGEBOARD_* environment variables.
type Settings struct {
	WindowWidth  int    `yaml:"window_width" env:"IMAGEBOARD_WINDOW_WIDTH"`
	WindowHeight int    `yaml:"window_height" env:"IMAGEBOARD_WINDOW_HEIGHT"`
	WindowTitle  string `yaml:"window_title" env:"IMAGEBOARD_WINDOW_TITLE"`

	// Backend is one of "sqlite", "file" or "memory".
	Backend          string        `yaml:"backend" env:"IMAGEBOARD_BACKEND"`
	DataDir          string        `yaml:"data_dir" env:"IMAGEBOARD_DATA_DIR"`
	StateKey         string        `yaml:"state_key" env:"IMAGEBOARD_STATE_KEY"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" env:"IMAGEBOARD_AUTOSAVE_INTERVAL"`
	MaxBlobBytes     int           `yaml:"max_blob_bytes" env:"IMAGEBOARD_MAX_BLOB_BYTES"`

	FontPath string `yaml:"font_path" env:"IMAGEBOARD_FONT_PATH"`
}

func DefaultSettings() Settings {
	dataDir := "."
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "image-board")
	}
	return Settings{
		WindowWidth:      DefaultWindowWidth,
		WindowHeight:     DefaultWindowHeight,
		WindowTitle:      DefaultWindowTitle,
		Backend:          "sqlite",
		DataDir:          dataDir,
		StateKey:         storage.DefaultKey,
		AutosaveInterval: DefaultAutosaveSeconds * time.Second,
		MaxBlobBytes:     DefaultMaxBlobBytes,
		FontPath:         "fonts/Roboto-Regular.ttf",
	}
}

// LoadSettings reads path (if it exists) over the defaults and applies
// environment overrides. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("parse settings %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	switch s.Backend {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("settings: unknown backend %q", s.Backend)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("settings: window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.AutosaveInterval < time.Second {
		return fmt.Errorf("settings: autosave interval %v is below one second", s.AutosaveInterval)
	}
	if s.MaxBlobBytes < 0 {
		return fmt.Errorf("settings: negative max_blob_bytes")
	}
	return nil
}

// OpenStore opens the configured backend, wrapped in the blob quota.
func (s Settings) OpenStore() (storage.Store, error) {
	var (
		st  storage.Store
		err error
	)
	switch s.Backend {
	case "sqlite":
		st, err = storage.NewSQLiteStore(filepath.Join(s.DataDir, "board.db"))
	case "file":
		st, err = storage.NewFileStore(s.DataDir)
	case "memory":
		st = storage.NewMemoryStore()
	default:
		err = fmt.Errorf("settings: unknown backend %q", s.Backend)
	}
	if err != nil {
		return nil, err
	}
	return &storage.QuotaStore{Store: st, Limit: s.MaxBlobBytes}, nil
}
