package systems

import (
	"log"
	"math/rand"
	"slices"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/types"
)

// PowerUpManager 管理道具的定时生成、更新和移除
type PowerUpManager struct {
	settings   *config.GameSettings
	rng        *rand.Rand
	powerUps   []*entities.PowerUp
	spawnTimer float64 // 毫秒累加器
}

// NewPowerUpManager 创建道具管理器
func NewPowerUpManager(settings *config.GameSettings, rng *rand.Rand) *PowerUpManager {
	log.Printf("[PowerUpManager] Initialized with interval=%.0fms", settings.Spawn.PowerUpInterval)
	return &PowerUpManager{
		settings: settings,
		rng:      rng,
		powerUps: make([]*entities.PowerUp, 0),
	}
}

// Update 推进计时器、按需生成、更新全部道具并移除滚出屏幕底部的道具
func (m *PowerUpManager) Update(dt float64) {
	m.spawnTimer += dt * 1000
	if m.spawnTimer >= m.settings.Spawn.PowerUpInterval {
		m.spawnTimer = 0
		m.Spawn()
	}

	for _, p := range m.powerUps {
		p.Update(dt)
	}

	m.powerUps = slices.DeleteFunc(m.powerUps, func(p *entities.PowerUp) bool {
		return p.Y > m.settings.ScreenHeight
	})
}

// Spawn 在屏幕上方随机 X 处生成一个随机种类的道具
//
// X 取值范围为 [Margin, ScreenWidth-Margin]，并保证道具完整落在屏幕内。
func (m *PowerUpManager) Spawn() *entities.PowerUp {
	kind := types.PowerUpKinds[m.rng.Intn(len(types.PowerUpKinds))]

	minX := m.settings.PowerUp.Margin
	maxX := min(m.settings.ScreenWidth-m.settings.PowerUp.Margin, m.settings.ScreenWidth-m.settings.PowerUp.Width)
	if maxX < minX {
		minX, maxX = 0, m.settings.ScreenWidth-m.settings.PowerUp.Width
	}
	x := minX + m.rng.Float64()*(maxX-minX)

	p := entities.NewPowerUp(m.settings, kind, x, m.settings.Spawn.PowerUpY)
	m.Add(p)
	log.Printf("[PowerUpManager] Spawned %s at x=%.1f", kind, p.X)
	return p
}

// Add 追加一个道具
func (m *PowerUpManager) Add(p *entities.PowerUp) {
	m.powerUps = append(m.powerUps, p)
}

// Remove 按指针移除一个道具，保持其余道具顺序
func (m *PowerUpManager) Remove(p *entities.PowerUp) bool {
	i := slices.Index(m.powerUps, p)
	if i < 0 {
		return false
	}
	m.powerUps = slices.Delete(m.powerUps, i, i+1)
	return true
}

// PowerUps 返回当前存活的道具（只读视图）
func (m *PowerUpManager) PowerUps() []*entities.PowerUp {
	return m.powerUps
}

// Snapshot 返回道具切片的副本
func (m *PowerUpManager) Snapshot() []*entities.PowerUp {
	return slices.Clone(m.powerUps)
}

// Len 返回存活道具数量
func (m *PowerUpManager) Len() int {
	return len(m.powerUps)
}

// SpawnTimer 返回当前累计的生成计时（毫秒）
func (m *PowerUpManager) SpawnTimer() float64 {
	return m.spawnTimer
}

// Reset 清空道具并重置计时器
func (m *PowerUpManager) Reset() {
	m.powerUps = m.powerUps[:0]
	m.spawnTimer = 0
}

// DrawRequests 返回所有道具的绘制请求
func (m *PowerUpManager) DrawRequests() []entities.DrawRequest {
	reqs := make([]entities.DrawRequest, 0, len(m.powerUps))
	for _, p := range m.powerUps {
		reqs = append(reqs, p.DrawRequest())
	}
	return reqs
}
