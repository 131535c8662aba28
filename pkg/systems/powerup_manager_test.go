package systems

import (
	"testing"

	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/types"
)

func TestPowerUpManagerSpawnInterval(t *testing.T) {
	s := newTestSettings()
	s.Spawn.PowerUpInterval = 1000
	m := NewPowerUpManager(s, newTestRand())

	m.Update(0.5)
	if m.Len() != 0 {
		t.Fatalf("spawned too early: %d", m.Len())
	}
	m.Update(0.5)
	if m.Len() != 1 {
		t.Fatalf("expected one power-up after 1000ms, got %d", m.Len())
	}
	if m.SpawnTimer() != 0 {
		t.Errorf("timer not reset: %v", m.SpawnTimer())
	}
}

func TestPowerUpManagerSpawnRange(t *testing.T) {
	s := newTestSettings()
	m := NewPowerUpManager(s, newTestRand())

	seen := map[types.PowerUpKind]bool{}
	for i := 0; i < 300; i++ {
		p := m.Spawn()
		if p.X < s.PowerUp.Margin || p.Right() > s.ScreenWidth {
			t.Fatalf("power-up out of range: x=%v", p.X)
		}
		if p.Y != s.Spawn.PowerUpY {
			t.Fatalf("spawn Y: got %v, want %v", p.Y, s.Spawn.PowerUpY)
		}
		seen[p.Kind] = true
	}
	for _, kind := range types.PowerUpKinds {
		if !seen[kind] {
			t.Errorf("kind %s never spawned", kind)
		}
	}
}

func TestPowerUpManagerSpawnRangeNarrowScreen(t *testing.T) {
	s := newTestSettings()
	s.ScreenWidth = 80
	s.PowerUp.Margin = 50
	m := NewPowerUpManager(s, newTestRand())

	for i := 0; i < 50; i++ {
		p := m.Spawn()
		if p.X < 0 || p.Right() > s.ScreenWidth {
			t.Fatalf("power-up out of screen: x=%v", p.X)
		}
	}
}

func TestPowerUpManagerPrune(t *testing.T) {
	s := newTestSettings()
	s.ScrollSpeed = 100
	m := NewPowerUpManager(s, newTestRand())

	p := entities.NewPowerUp(s, types.PowerUpFuel, 100, s.ScreenHeight-5)
	m.Add(p)

	m.Update(0.01) // y = H - 4
	if m.Len() != 1 {
		t.Fatal("power-up removed before leaving the screen")
	}
	m.Update(0.1) // y = H + 6
	if m.Len() != 0 {
		t.Error("power-up should be removed after scrolling past the bottom")
	}
}

func TestPowerUpManagerRemoveAndReset(t *testing.T) {
	s := newTestSettings()
	m := NewPowerUpManager(s, newTestRand())
	a := m.Spawn()
	b := m.Spawn()

	if !m.Remove(a) {
		t.Fatal("Remove should succeed")
	}
	if got := m.PowerUps(); len(got) != 1 || got[0] != b {
		t.Errorf("unexpected contents after Remove")
	}
	if len(m.DrawRequests()) != 1 {
		t.Error("DrawRequests should mirror live power-ups")
	}

	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len after Reset: %d", m.Len())
	}
}
