package game

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata Manager
func createTestGdataManager(t *testing.T) *gdata.Manager {
	t.Setenv("HOME", t.TempDir())
	manager, err := gdata.Open(gdata.Config{
		AppName: "balloon_" + t.Name(),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestHighScoreManagerRoundTrip(t *testing.T) {
	m := NewHighScoreManager(createTestGdataManager(t))

	best, err := m.Load()
	if err != nil {
		t.Fatalf("Load() on empty storage: %v", err)
	}
	if best != 0 {
		t.Errorf("empty storage: got %v, want 0", best)
	}

	if err := m.Save(1234.5); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	best, err = m.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if best != 1234.5 {
		t.Errorf("got %v, want 1234.5", best)
	}
}

func TestHighScoreManagerCorruptedData(t *testing.T) {
	manager := createTestGdataManager(t)
	if err := manager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("highestHeight: [oops")); err != nil {
		t.Fatalf("failed to seed corrupted data: %v", err)
	}

	m := NewHighScoreManager(manager)
	best, err := m.Load()
	if err == nil {
		t.Error("expected error for corrupted data")
	}
	if best != 0 {
		t.Errorf("corrupted data should degrade to 0, got %v", best)
	}
}

func TestHighScoreManagerNilGdata(t *testing.T) {
	m := NewHighScoreManager(nil)

	if best, err := m.Load(); err != nil || best != 0 {
		t.Fatalf("Load() = (%v, %v), want (0, nil)", best, err)
	}
	if err := m.Save(42); err != nil {
		t.Fatalf("Save() in degraded mode: %v", err)
	}
	if best, _ := m.Load(); best != 42 {
		t.Errorf("degraded mode should keep value in memory, got %v", best)
	}
}

func TestHighScoreRejectsInvalidValues(t *testing.T) {
	m := NewHighScoreManager(nil)
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := m.Save(v); err == nil {
			t.Errorf("Save(%v) should fail", v)
		}
	}
}

func TestFileHighScoreStore(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    float64
		wantErr bool
	}{
		{name: "missing file", content: nil, want: 0},
		{name: "plain number", content: ptr("812.25\n"), want: 812.25},
		{name: "garbage", content: ptr("not a number"), want: 0, wantErr: true},
		{name: "negative", content: ptr("-5"), want: 0, wantErr: true},
		{name: "empty", content: ptr(""), want: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			got, err := NewFileHighScoreStore(path).Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileHighScoreStoreSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "best.txt")
	store := NewFileHighScoreStore(path)

	if err := store.Save(99.5); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "99.50\n" {
		t.Errorf("file content: got %q, want %q", data, "99.50\n")
	}

	got, err := store.Load()
	if err != nil || got != 99.5 {
		t.Errorf("Load() = (%v, %v), want (99.5, nil)", got, err)
	}
	if store.Path() != path {
		t.Errorf("Path(): got %q", store.Path())
	}
}

func ptr(s string) *string { return &s }
