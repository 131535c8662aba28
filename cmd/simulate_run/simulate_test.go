package main

import (
	"math/rand"
	"testing"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/game"
	"github.com/decker502/balloon/pkg/types"
)

func quietSession() *game.Session {
	s := config.DefaultSettings()
	s.Spawn.ObstacleInterval = 1e12
	s.Spawn.PowerUpInterval = 1e12
	return game.NewSession(s, nil, rand.New(rand.NewSource(3)))
}

func TestSteerDodgesObstacleAbove(t *testing.T) {
	s := quietSession()
	b := s.Balloon()
	// 障碍物在气球正上方偏右，应向左躲
	s.Obstacles().Add(entities.NewObstacle(s.Settings(), nil, types.ObstacleBird, b.X+b.Width/2+5, b.Y-100, 1))

	if in := steer(s); !in.MoveLeft || in.MoveRight {
		t.Errorf("expected to dodge left, got %+v", in)
	}

	entities.ApplyPowerUp(types.PowerUpShield, b)
	if in := steer(s); in.MoveLeft || in.MoveRight {
		t.Errorf("shielded balloon should ignore obstacles, got %+v", in)
	}
}

func TestSteerDodgeAwayFromWall(t *testing.T) {
	s := quietSession()
	b := s.Balloon()
	b.X = 0
	s.Obstacles().Add(entities.NewObstacle(s.Settings(), nil, types.ObstacleCloud, 30, b.Y-60, 1))

	if in := steer(s); !in.MoveRight {
		t.Errorf("balloon at the left wall should dodge right, got %+v", in)
	}
}

func TestSteerChasesPowerUp(t *testing.T) {
	s := quietSession()
	b := s.Balloon()
	s.PowerUps().Add(entities.NewPowerUp(s.Settings(), types.PowerUpFuel, b.X+400, b.Y-200))

	if in := steer(s); !in.MoveRight {
		t.Errorf("expected to move toward the power-up, got %+v", in)
	}

	s.PowerUps().Reset()
	if in := steer(s); in != (game.Input{}) {
		t.Errorf("no targets should mean no input, got %+v", in)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	newSession := func() *game.Session {
		return game.NewSession(config.DefaultSettings(), nil, rand.New(rand.NewSource(99)))
	}

	a := simulate(newSession(), 2, 3000)
	b := simulate(newSession(), 2, 3000)

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected 2 results, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
		if a[i].Ticks == 0 || a[i].Ticks > 3000 {
			t.Errorf("run %d ticks out of range: %d", i+1, a[i].Ticks)
		}
	}
}

func TestSimulateFuelLimit(t *testing.T) {
	s := quietSession()
	// 默认燃料 100、每秒消耗 2：约 50 秒后耗尽
	results := simulate(s, 1, 60*60)

	if results[0].Cause != "fuel" {
		t.Errorf("Cause: got %q, want fuel", results[0].Cause)
	}
	if results[0].Ticks >= 60*60 {
		t.Errorf("run should end before the tick limit, got %d ticks", results[0].Ticks)
	}
}
