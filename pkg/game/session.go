package game

import (
	"log"
	"math/rand"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/systems"
)

// State 是会话状态机的状态
type State int

const (
	StateRunning  State = iota // 模拟推进中
	StateGameOver              // 气球坠毁，等待重开或退出
	StateExit                  // 请求退出程序
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// RunStats 记录当前这一局的统计
type RunStats struct {
	Ticks             int
	HitsAbsorbed      int
	PowerUpsCollected int
}

// HUD 是渲染层绘制抬头显示所需的只读快照
type HUD struct {
	CurrentHeight     float64
	HighestHeight     float64
	Fuel              float64
	FuelRatio         float64
	ShieldActive      bool
	ShieldRemaining   float64 // 毫秒
	SlowdownActive    bool
	SlowdownRemaining float64 // 毫秒
	State             State
	Paused            bool
	Run               int
}

// Session 是一次游戏进程的聚合状态与固定步长主循环
//
// 每个 tick 的顺序固定为：
// 输入移动 → Balloon.Update → ObstacleManager.Update → PowerUpManager.Update
// → CollisionManager.CheckCollisions → 高度推进 → 结束判定。
//
// 状态机：Running → GameOver → (Restart → Running) | Exit
type Session struct {
	settings *config.GameSettings
	store    HighScoreStore

	scale      *entities.SpeedScale
	balloon    *entities.Balloon
	obstacles  *systems.ObstacleManager
	powerUps   *systems.PowerUpManager
	collisions *systems.CollisionManager

	state  State
	paused bool

	currentHeight float64
	highestHeight float64
	run           int
	stats         RunStats
}

// NewSession 创建会话并从存储中读取历史最高高度
//
// 参数：
//   - settings: 已校验的游戏设置
//   - store: 最高高度存储，可为 nil（不持久化）
//   - rng: 生成障碍物和道具使用的随机源
func NewSession(settings *config.GameSettings, store HighScoreStore, rng *rand.Rand) *Session {
	scale := entities.NewSpeedScale()
	balloon := entities.NewBalloon(settings, scale)
	obstacles := systems.NewObstacleManager(settings, scale, rng)
	powerUps := systems.NewPowerUpManager(settings, rng)

	s := &Session{
		settings:   settings,
		store:      store,
		scale:      scale,
		balloon:    balloon,
		obstacles:  obstacles,
		powerUps:   powerUps,
		collisions: systems.NewCollisionManager(balloon, obstacles, powerUps),
		state:      StateRunning,
		run:        1,
	}

	if store != nil {
		best, err := store.Load()
		if err != nil {
			log.Printf("[Session] Warning: failed to load high score: %v (using 0)", err)
			best = 0
		}
		s.highestHeight = best
	}

	log.Printf("[Session] Started, best height=%.1f", s.highestHeight)
	return s
}

// Update 以固定步长 1/FPS 推进一个 tick
func (s *Session) Update(in Input) {
	s.UpdateWithDelta(in, s.settings.TickSeconds())
}

// UpdateWithDelta 以指定步长（秒）推进一个 tick
func (s *Session) UpdateWithDelta(in Input, dt float64) {
	switch s.state {
	case StateRunning:
		if in.Quit {
			s.persistHighScore()
			s.state = StateExit
			return
		}
		if in.Pause {
			s.paused = !s.paused
			log.Printf("[Session] Paused=%v", s.paused)
		}
		if s.paused {
			return
		}
		s.tick(in, dt)

	case StateGameOver:
		if in.Quit {
			s.state = StateExit
			return
		}
		if in.Restart {
			s.Restart()
		}

	case StateExit:
	}
}

func (s *Session) tick(in Input, dt float64) {
	if in.MoveLeft {
		s.balloon.MoveLeft(dt)
	}
	if in.MoveRight {
		s.balloon.MoveRight(dt)
	}

	s.balloon.Update(dt)
	s.obstacles.Update(dt)
	s.powerUps.Update(dt)

	report := s.collisions.CheckCollisions()
	s.stats.HitsAbsorbed += report.Absorbed
	s.stats.PowerUpsCollected += len(report.Collected)
	s.stats.Ticks++

	s.currentHeight += s.settings.ScrollSpeed * dt
	if s.currentHeight > s.highestHeight {
		s.highestHeight = s.currentHeight
	}

	if s.balloon.Crashed {
		log.Printf("[Session] Game over at height %.1f (best %.1f)", s.currentHeight, s.highestHeight)
		s.state = StateGameOver
		s.persistHighScore()
	}
}

// Restart 开始新的一局：重建气球、清空障碍物和道具，保留最高高度
func (s *Session) Restart() {
	s.scale.Restore()
	s.balloon = entities.NewBalloon(s.settings, s.scale)
	s.collisions.SetBalloon(s.balloon)
	s.obstacles.Reset()
	s.powerUps.Reset()

	s.currentHeight = 0
	s.stats = RunStats{}
	s.paused = false
	s.state = StateRunning
	s.run++
	log.Printf("[Session] Restarted, run #%d", s.run)
}

// SaveOnExit 在窗口关闭时保存最高高度
// 返回 true 表示保存成功或无需保存
func (s *Session) SaveOnExit() bool {
	return s.persistHighScore()
}

func (s *Session) persistHighScore() bool {
	if s.store == nil {
		return true
	}
	if err := s.store.Save(s.highestHeight); err != nil {
		log.Printf("[Session] Warning: failed to save high score: %v", err)
		return false
	}
	return true
}

// DrawRequests 返回本帧所有实体的绘制请求（气球、障碍物、道具）
func (s *Session) DrawRequests() []entities.DrawRequest {
	reqs := make([]entities.DrawRequest, 0, 1+s.obstacles.Len()+s.powerUps.Len())
	reqs = append(reqs, s.balloon.DrawRequest())
	reqs = append(reqs, s.obstacles.DrawRequests()...)
	reqs = append(reqs, s.powerUps.DrawRequests()...)
	return reqs
}

// HUD 返回抬头显示快照
func (s *Session) HUD() HUD {
	b := s.balloon
	return HUD{
		CurrentHeight:     s.currentHeight,
		HighestHeight:     s.highestHeight,
		Fuel:              b.Fuel,
		FuelRatio:         b.FuelRatio(),
		ShieldActive:      b.ShieldActive,
		ShieldRemaining:   b.ShieldTimer,
		SlowdownActive:    b.SlowdownActive,
		SlowdownRemaining: b.SlowdownTimer,
		State:             s.state,
		Paused:            s.paused,
		Run:               s.run,
	}
}

// State 返回当前状态
func (s *Session) State() State { return s.state }

// Paused 返回是否暂停
func (s *Session) Paused() bool { return s.paused }

// Balloon 返回当前气球
func (s *Session) Balloon() *entities.Balloon { return s.balloon }

// Obstacles 返回障碍物管理器
func (s *Session) Obstacles() *systems.ObstacleManager { return s.obstacles }

// PowerUps 返回道具管理器
func (s *Session) PowerUps() *systems.PowerUpManager { return s.powerUps }

// CurrentHeight 返回本局已上升的高度
func (s *Session) CurrentHeight() float64 { return s.currentHeight }

// HighestHeight 返回历史最高高度
func (s *Session) HighestHeight() float64 { return s.highestHeight }

// Stats 返回本局统计
func (s *Session) Stats() RunStats { return s.stats }

// Settings 返回游戏设置
func (s *Session) Settings() *config.GameSettings { return s.settings }
