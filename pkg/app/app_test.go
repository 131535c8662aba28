package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/balloon/pkg/embedded"
	"github.com/decker502/balloon/pkg/game"
)

// memoryStore 不落盘的最高高度存储
type memoryStore struct{ best float64 }

func (m *memoryStore) Load() (float64, error) { return m.best, nil }
func (m *memoryStore) Save(h float64) error   { m.best = h; return nil }

var _ game.HighScoreStore = (*memoryStore)(nil)

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("fps = 30\nscreenWidth = 640\n"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if settings.FPS != 30 || settings.ScreenWidth != 640 {
		t.Errorf("overrides not applied: fps=%d width=%v", settings.FPS, settings.ScreenWidth)
	}
}

func TestLoadSettingsFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		embedded.DefaultSettingsPath: &fstest.MapFile{Data: []byte("scrollSpeed: 42\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if settings.ScrollSpeed != 42 {
		t.Errorf("ScrollSpeed: got %v, want 42", settings.ScrollSpeed)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	embedded.Init(nil)

	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if settings.FPS != 60 || settings.ScreenWidth != 1200 || settings.ScreenHeight != 800 {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing settings file")
	}
}

func TestNewAppLayout(t *testing.T) {
	embedded.Init(nil)

	a, err := NewApp(Config{Verbose: true, Seed: 1, Store: &memoryStore{best: 10}})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	w, h := a.Layout(1, 1)
	if w != 1200 || h != 800 {
		t.Errorf("Layout() = %dx%d, want 1200x800", w, h)
	}
	if a.GetSceneManager().GetCurrentScene() == nil {
		t.Error("NewApp should switch to the game scene")
	}
	if a.GetSceneManager().ShouldExit() {
		t.Error("fresh app should not request exit")
	}
	if !a.IsVerbose() {
		t.Error("IsVerbose() should reflect the config")
	}
}
