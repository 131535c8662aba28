package systems

import (
	"log"
	"math/rand"
	"slices"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/types"
)

// ObstacleManager 管理障碍物的定时生成、更新和移除
//
// 障碍物按插入顺序保存；移除使用稳定过滤，
// 因此给定随机种子时碰撞遍历顺序是确定的。
type ObstacleManager struct {
	settings   *config.GameSettings
	scale      *entities.SpeedScale // 会话共享的速度倍率，传给每个新障碍物
	rng        *rand.Rand
	obstacles  []*entities.Obstacle
	spawnTimer float64 // 毫秒累加器
}

// NewObstacleManager 创建障碍物管理器
//
// 参数:
//   - settings: 游戏设置
//   - scale: 会话共享的速度倍率
//   - rng: 随机源（固定种子可复现）
func NewObstacleManager(settings *config.GameSettings, scale *entities.SpeedScale, rng *rand.Rand) *ObstacleManager {
	log.Printf("[ObstacleManager] Initialized with interval=%.0fms", settings.Spawn.ObstacleInterval)
	return &ObstacleManager{
		settings:  settings,
		scale:     scale,
		rng:       rng,
		obstacles: make([]*entities.Obstacle, 0),
	}
}

// Update 推进计时器、按需生成、更新全部障碍物并移除滚出屏幕底部的障碍物
func (m *ObstacleManager) Update(dt float64) {
	m.spawnTimer += dt * 1000
	if m.spawnTimer >= m.settings.Spawn.ObstacleInterval {
		m.spawnTimer = 0
		m.Spawn()
	}

	for _, o := range m.obstacles {
		o.Update(dt)
	}

	m.obstacles = slices.DeleteFunc(m.obstacles, func(o *entities.Obstacle) bool {
		return o.Y > m.settings.ScreenHeight
	})
}

// Spawn 在屏幕上方随机 X 处生成一个随机种类的障碍物
func (m *ObstacleManager) Spawn() *entities.Obstacle {
	kind := types.ObstacleKinds[m.rng.Intn(len(types.ObstacleKinds))]
	params := entities.KindParameters(m.settings, kind)

	x := m.rng.Float64() * (m.settings.ScreenWidth - params.Width)
	direction := 1
	if m.rng.Intn(2) == 0 {
		direction = -1
	}

	o := entities.NewObstacle(m.settings, m.scale, kind, x, m.settings.Spawn.ObstacleY, direction)
	m.Add(o)
	log.Printf("[ObstacleManager] Spawned %s at x=%.1f (speed=%.0f)", kind, o.X, o.Speed)
	return o
}

// Add 追加一个障碍物
func (m *ObstacleManager) Add(o *entities.Obstacle) {
	m.obstacles = append(m.obstacles, o)
}

// Remove 按指针移除一个障碍物，保持其余障碍物顺序
// 返回是否找到并移除
func (m *ObstacleManager) Remove(o *entities.Obstacle) bool {
	i := slices.Index(m.obstacles, o)
	if i < 0 {
		return false
	}
	m.obstacles = slices.Delete(m.obstacles, i, i+1)
	return true
}

// Obstacles 返回当前存活的障碍物（只读视图，不要在遍历时修改）
func (m *ObstacleManager) Obstacles() []*entities.Obstacle {
	return m.obstacles
}

// Snapshot 返回障碍物切片的副本，可在遍历时安全地移除
func (m *ObstacleManager) Snapshot() []*entities.Obstacle {
	return slices.Clone(m.obstacles)
}

// Len 返回存活障碍物数量
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// SpawnTimer 返回当前累计的生成计时（毫秒）
func (m *ObstacleManager) SpawnTimer() float64 {
	return m.spawnTimer
}

// Reset 清空障碍物并重置计时器（重新开始一局时调用）
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
	m.spawnTimer = 0
}

// DrawRequests 返回所有障碍物的绘制请求
func (m *ObstacleManager) DrawRequests() []entities.DrawRequest {
	reqs := make([]entities.DrawRequest, 0, len(m.obstacles))
	for _, o := range m.obstacles {
		reqs = append(reqs, o.DrawRequest())
	}
	return reqs
}
