package systems

import (
	"log"

	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/types"
)

// CollisionReport 汇总一次碰撞检测的结果
type CollisionReport struct {
	Crashed   bool                // 本次检测中气球因碰撞坠毁
	Absorbed  int                 // 被护盾吸收（并移除）的障碍物数量
	Collected []types.PowerUpKind // 按收集顺序排列的道具种类
}

// CollisionManager 协调气球与障碍物、道具之间的碰撞处理
type CollisionManager struct {
	balloon   *entities.Balloon
	obstacles *ObstacleManager
	powerUps  *PowerUpManager
}

// NewCollisionManager 创建碰撞管理器
func NewCollisionManager(balloon *entities.Balloon, obstacles *ObstacleManager, powerUps *PowerUpManager) *CollisionManager {
	return &CollisionManager{
		balloon:   balloon,
		obstacles: obstacles,
		powerUps:  powerUps,
	}
}

// SetBalloon 替换被检测的气球（重新开始一局时调用）
func (c *CollisionManager) SetBalloon(b *entities.Balloon) {
	c.balloon = b
}

// CheckCollisions 在所有实体更新后调用一次
//
// 先处理障碍物，再处理道具：
//   - 障碍物：无护盾时气球坠毁并停止检查剩余障碍物；有护盾时移除该障碍物，护盾保持激活
//   - 道具：应用效果后移除。即使气球已在本帧坠毁，道具效果仍然生效
//
// 两个阶段都遍历快照，移除操作不影响遍历。
func (c *CollisionManager) CheckCollisions() CollisionReport {
	var report CollisionReport

	for _, o := range c.obstacles.Snapshot() {
		if !c.balloon.CollidesWith(&o.Entity) {
			continue
		}
		if !c.balloon.ShieldActive {
			if !c.balloon.Crashed {
				log.Printf("[CollisionManager] Balloon hit %s at (%.0f, %.0f)", o.Kind, o.X, o.Y)
				report.Crashed = true
			}
			c.balloon.Crash()
			break
		}
		log.Printf("[CollisionManager] Shield absorbed collision with %s", o.Kind)
		c.obstacles.Remove(o)
		report.Absorbed++
	}

	for _, p := range c.powerUps.Snapshot() {
		if !c.balloon.CollidesWith(&p.Entity) {
			continue
		}
		c.balloon.ApplyPowerUp(p)
		c.powerUps.Remove(p)
		report.Collected = append(report.Collected, p.Kind)
		log.Printf("[CollisionManager] Collected %s power-up", p.Kind)
	}

	return report
}
