package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/types"
)

// fakeStore 记录保存调用的内存存储
type fakeStore struct {
	loadValue float64
	loadErr   error
	saveErr   error
	saved     []float64
}

func (f *fakeStore) Load() (float64, error) { return f.loadValue, f.loadErr }

func (f *fakeStore) Save(h float64) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, h)
	return nil
}

// quietSettings 关闭自动生成，使测试只受手动放置的实体影响
func quietSettings() *config.GameSettings {
	s := config.DefaultSettings()
	s.Spawn.ObstacleInterval = 1e12
	s.Spawn.PowerUpInterval = 1e12
	return s
}

func newTestSession(s *config.GameSettings, store HighScoreStore) *Session {
	return NewSession(s, store, rand.New(rand.NewSource(1)))
}

func TestNewSessionLoadsHighScore(t *testing.T) {
	store := &fakeStore{loadValue: 321}
	s := newTestSession(quietSettings(), store)

	if s.HighestHeight() != 321 {
		t.Errorf("HighestHeight: got %v, want 321", s.HighestHeight())
	}
	if s.State() != StateRunning {
		t.Errorf("State: got %v, want running", s.State())
	}
}

func TestNewSessionMalformedHighScoreDefaultsToZero(t *testing.T) {
	store := &fakeStore{loadValue: 999, loadErr: errors.New("corrupted")}
	s := newTestSession(quietSettings(), store)

	if s.HighestHeight() != 0 {
		t.Errorf("HighestHeight: got %v, want 0", s.HighestHeight())
	}
}

// 满燃料、每秒消耗 1、dt=1 连续 100 个 tick：第 100 个 tick 后恰好坠毁
func TestSessionFuelRunsOutAfter100Ticks(t *testing.T) {
	settings := quietSettings()
	settings.Fuel.Max = 100
	settings.Fuel.ConsumptionRate = 1
	store := &fakeStore{}
	s := newTestSession(settings, store)

	for tick := 1; tick <= 100; tick++ {
		if s.State() != StateRunning {
			t.Fatalf("tick %d: session left running state early (%v)", tick, s.State())
		}
		s.UpdateWithDelta(Input{}, 1)
	}

	if s.Balloon().Fuel != 0 {
		t.Errorf("fuel: got %v, want 0", s.Balloon().Fuel)
	}
	if !s.Balloon().Crashed {
		t.Error("balloon should be crashed after the 100th tick")
	}
	if s.State() != StateGameOver {
		t.Errorf("State: got %v, want game_over", s.State())
	}
	if want := settings.ScrollSpeed * 100; s.CurrentHeight() != want {
		t.Errorf("CurrentHeight: got %v, want %v", s.CurrentHeight(), want)
	}
	if len(store.saved) != 1 || store.saved[0] != s.HighestHeight() {
		t.Errorf("high score should be persisted once at game over, saved=%v", store.saved)
	}
	if s.Stats().Ticks != 100 {
		t.Errorf("Ticks: got %d, want 100", s.Stats().Ticks)
	}
}

func TestSessionMovementInput(t *testing.T) {
	settings := quietSettings()
	s := newTestSession(settings, nil)
	start := s.Balloon().X

	s.UpdateWithDelta(Input{MoveRight: true}, 0.5)
	if want := start + settings.Balloon.HorizontalSpeed*0.5; s.Balloon().X != want {
		t.Errorf("after MoveRight: got %v, want %v", s.Balloon().X, want)
	}

	s.UpdateWithDelta(Input{MoveLeft: true, MoveRight: true}, 0.5)
	if want := start + settings.Balloon.HorizontalSpeed*0.5; s.Balloon().X != want {
		t.Errorf("opposite inputs should cancel: got %v, want %v", s.Balloon().X, want)
	}
}

func TestSessionCrashOnObstacleAndRestart(t *testing.T) {
	settings := quietSettings()
	store := &fakeStore{}
	s := newTestSession(settings, store)

	b := s.Balloon()
	s.Obstacles().Add(entities.NewObstacle(settings, nil, types.ObstacleBird, b.X+10, b.Y+10, 1))
	s.UpdateWithDelta(Input{}, 0.01)

	if s.State() != StateGameOver {
		t.Fatalf("State: got %v, want game_over", s.State())
	}
	best := s.HighestHeight()
	if want := settings.ScrollSpeed * 0.01; best != want {
		t.Errorf("HighestHeight: got %v, want %v", best, want)
	}
	if len(store.saved) != 1 {
		t.Errorf("game over should persist once, saved=%v", store.saved)
	}

	// GameOver 状态下不推进模拟
	s.UpdateWithDelta(Input{MoveLeft: true}, 1)
	if s.CurrentHeight() != best {
		t.Error("simulation advanced while in game over")
	}

	s.UpdateWithDelta(Input{Restart: true}, 1)
	if s.State() != StateRunning {
		t.Fatalf("State after restart: got %v", s.State())
	}
	if s.Balloon() == b {
		t.Error("restart should create a new balloon")
	}
	if s.Balloon().Crashed || s.Balloon().Fuel != settings.Fuel.Max {
		t.Error("restarted balloon should be fresh")
	}
	if s.Obstacles().Len() != 0 || s.PowerUps().Len() != 0 {
		t.Error("restart should clear obstacles and power-ups")
	}
	if s.CurrentHeight() != 0 {
		t.Errorf("CurrentHeight after restart: got %v", s.CurrentHeight())
	}
	if s.HighestHeight() != best {
		t.Errorf("HighestHeight should survive restart: got %v, want %v", s.HighestHeight(), best)
	}
	if s.HUD().Run != 2 {
		t.Errorf("Run: got %d, want 2", s.HUD().Run)
	}

	// 新气球仍然参与碰撞检测
	nb := s.Balloon()
	s.Obstacles().Add(entities.NewObstacle(settings, nil, types.ObstacleCloud, nb.X, nb.Y, 1))
	s.UpdateWithDelta(Input{}, 0.01)
	if !nb.Crashed {
		t.Error("collision manager should check the restarted balloon")
	}
}

func TestSessionShieldAbsorbsAndCounts(t *testing.T) {
	settings := quietSettings()
	s := newTestSession(settings, nil)

	b := s.Balloon()
	entities.ApplyPowerUp(types.PowerUpShield, b)
	s.Obstacles().Add(entities.NewObstacle(settings, nil, types.ObstacleBird, b.X+10, b.Y+10, 1))
	s.PowerUps().Add(entities.NewPowerUp(settings, types.PowerUpFuel, b.X+10, b.Y+10))

	s.UpdateWithDelta(Input{}, 0.01)

	if s.State() != StateRunning {
		t.Fatalf("shielded balloon should keep running, state=%v", s.State())
	}
	stats := s.Stats()
	if stats.HitsAbsorbed != 1 || stats.PowerUpsCollected != 1 {
		t.Errorf("stats: got %+v", stats)
	}
}

func TestSessionQuitAndPause(t *testing.T) {
	settings := quietSettings()
	store := &fakeStore{}
	s := newTestSession(settings, store)

	s.UpdateWithDelta(Input{Pause: true}, 1)
	if !s.Paused() {
		t.Fatal("Pause should toggle paused on")
	}
	if s.CurrentHeight() != 0 {
		t.Error("paused session should not advance")
	}
	s.UpdateWithDelta(Input{}, 1)
	if s.CurrentHeight() != 0 {
		t.Error("paused session should not advance")
	}
	s.UpdateWithDelta(Input{Pause: true}, 1)
	if s.Paused() || s.CurrentHeight() != settings.ScrollSpeed {
		t.Errorf("unpause should resume in the same tick: paused=%v height=%v", s.Paused(), s.CurrentHeight())
	}

	s.UpdateWithDelta(Input{Quit: true}, 1)
	if s.State() != StateExit {
		t.Fatalf("State after quit: got %v", s.State())
	}
	if len(store.saved) != 1 {
		t.Errorf("quit while running should persist the high score, saved=%v", store.saved)
	}

	// Exit 是终态
	s.UpdateWithDelta(Input{Restart: true}, 1)
	if s.State() != StateExit {
		t.Error("exit should be terminal")
	}
}

func TestSessionQuitFromGameOver(t *testing.T) {
	settings := quietSettings()
	s := newTestSession(settings, nil)
	s.Balloon().Crash()
	s.UpdateWithDelta(Input{}, 0.1)
	if s.State() != StateGameOver {
		t.Fatalf("State: got %v", s.State())
	}

	s.UpdateWithDelta(Input{Quit: true}, 0.1)
	if s.State() != StateExit {
		t.Errorf("State: got %v, want exit", s.State())
	}
}

func TestSessionSaveOnExit(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(quietSettings(), store)
	s.UpdateWithDelta(Input{}, 1)

	if !s.SaveOnExit() {
		t.Fatal("SaveOnExit should succeed")
	}
	if len(store.saved) != 1 || store.saved[0] != s.HighestHeight() {
		t.Errorf("saved: %v", store.saved)
	}

	store.saveErr = errors.New("disk full")
	if s.SaveOnExit() {
		t.Error("SaveOnExit should report failure")
	}

	if !newTestSession(quietSettings(), nil).SaveOnExit() {
		t.Error("session without store should report success")
	}
}

func TestSessionDrawRequestsAndHUD(t *testing.T) {
	settings := quietSettings()
	s := newTestSession(settings, nil)
	s.Obstacles().Add(entities.NewObstacle(settings, nil, types.ObstacleCloud, 0, 0, 1))
	s.PowerUps().Add(entities.NewPowerUp(settings, types.PowerUpSlowdown, 500, 0))

	reqs := s.DrawRequests()
	if len(reqs) != 3 {
		t.Fatalf("DrawRequests: got %d, want 3", len(reqs))
	}
	if reqs[0].Kind != types.SpriteBalloon || reqs[1].Kind != types.SpriteCloud || reqs[2].Kind != types.SpriteSlowdown {
		t.Errorf("unexpected kinds: %v %v %v", reqs[0].Kind, reqs[1].Kind, reqs[2].Kind)
	}

	hud := s.HUD()
	if hud.Fuel != settings.Fuel.Max || hud.FuelRatio != 1 {
		t.Errorf("HUD fuel: %v ratio %v", hud.Fuel, hud.FuelRatio)
	}
	if hud.State != StateRunning || hud.Paused {
		t.Errorf("HUD state: %+v", hud)
	}
}

func TestSessionUsesFixedTick(t *testing.T) {
	settings := quietSettings()
	settings.FPS = 50
	settings.ScrollSpeed = 100
	s := newTestSession(settings, nil)

	s.Update(Input{})
	if s.CurrentHeight() != 2 {
		t.Errorf("CurrentHeight after one 1/50s tick: got %v, want 2", s.CurrentHeight())
	}
}

func TestStateString(t *testing.T) {
	if StateGameOver.String() != "game_over" || State(9).String() != "unknown" {
		t.Error("unexpected State.String() output")
	}
}
