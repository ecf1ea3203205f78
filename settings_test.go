package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if s.AutosaveInterval != 5*time.Second || s.Backend != "sqlite" || s.StateKey != "imageCanvasState" {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image-board.yaml")
	data := "backend: file\nautosave_interval: 10s\nwindow_width: 640\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IMAGEBOARD_WINDOW_WIDTH", "900")
	t.Setenv("IMAGEBOARD_DATA_DIR", t.TempDir())

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Backend != "file" || s.AutosaveInterval != 10*time.Second {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.WindowWidth != 900 {
		t.Errorf("expected env to override width, got %d", s.WindowWidth)
	}
	if s.WindowHeight != DefaultWindowHeight {
		t.Errorf("unset values should keep defaults, got height %d", s.WindowHeight)
	}

	st, err := s.OpenStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	if err := st.Put("k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"backend":  "backend: redis\n",
		"autosave": "autosave_interval: 10ms\n",
		"yaml":     "window_width: [\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "s.yaml")
			os.WriteFile(path, []byte(data), 0644)
			if _, err := LoadSettings(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
