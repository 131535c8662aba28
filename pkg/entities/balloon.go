package entities

import (
	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/types"
)

// Balloon 是玩家控制的热气球
//
// 气球垂直位置固定（背景滚动模拟上升），只能左右移动。
// 燃料随时间消耗；燃料耗尽或在无护盾时撞上障碍物即坠毁。
// Crashed 是单向状态：一旦置位，本局结束，重开时整体重建气球。
type Balloon struct {
	Entity

	Fuel float64 // [0, Fuel.Max]

	ShieldActive bool
	ShieldTimer  float64 // 剩余毫秒

	SlowdownActive bool
	SlowdownTimer  float64 // 剩余毫秒

	Crashed bool

	settings *config.GameSettings
	scale    *SpeedScale
}

// NewBalloon 在屏幕底部居中处创建满燃料的气球
//
// 参数:
//   - settings: 游戏设置
//   - scale: 会话共享的速度倍率，减速道具和减速结束时会修改它
func NewBalloon(settings *config.GameSettings, scale *SpeedScale) *Balloon {
	w, h := settings.Balloon.Width, settings.Balloon.Height
	return &Balloon{
		Entity: Entity{
			X:      settings.ScreenWidth/2 - w/2,
			Y:      settings.ScreenHeight - h - settings.Balloon.BottomMargin,
			Width:  w,
			Height: h,
		},
		Fuel:     settings.Fuel.Max,
		settings: settings,
		scale:    scale,
	}
}

// Update 推进气球一个时间步：燃料消耗、护盾计时、减速计时、水平边界钳制
func (b *Balloon) Update(dt float64) {
	if b.Fuel > 0 {
		b.Fuel -= b.settings.Fuel.ConsumptionRate * dt
		if b.Fuel <= 0 {
			b.Fuel = 0
			b.Crash()
		}
	} else {
		b.Crash()
	}

	if b.ShieldActive {
		b.ShieldTimer -= dt * 1000
		if b.ShieldTimer <= 0 {
			b.ShieldActive = false
			b.ShieldTimer = 0
		}
	}

	if b.SlowdownActive {
		b.SlowdownTimer -= dt * 1000
		if b.SlowdownTimer <= 0 {
			b.SlowdownActive = false
			b.SlowdownTimer = 0
			b.scale.Restore()
		}
	}

	b.clampX()
}

func (b *Balloon) clampX() {
	if b.X < 0 {
		b.X = 0
	}
	if b.Right() > b.settings.ScreenWidth {
		b.X = b.settings.ScreenWidth - b.Width
	}
}

// MoveLeft 向左移动，不消耗燃料
func (b *Balloon) MoveLeft(dt float64) {
	b.X -= b.settings.Balloon.HorizontalSpeed * dt
}

// MoveRight 向右移动，不消耗燃料
func (b *Balloon) MoveRight(dt float64) {
	b.X += b.settings.Balloon.HorizontalSpeed * dt
}

// ApplyPowerUp 将道具效果作用到气球
func (b *Balloon) ApplyPowerUp(p *PowerUp) {
	ApplyPowerUp(p.Kind, b)
}

// Crash 标记坠毁，可重复调用
func (b *Balloon) Crash() {
	b.Crashed = true
}

// FuelRatio 返回剩余燃料比例 [0, 1]，供 HUD 绘制燃料条
func (b *Balloon) FuelRatio() float64 {
	return b.Fuel / b.settings.Fuel.Max
}

// DrawRequest 返回气球的绘制请求，护盾激活时使用带护盾的外观
func (b *Balloon) DrawRequest() DrawRequest {
	if b.ShieldActive {
		return b.drawRequest(types.SpriteBalloonShielded)
	}
	return b.drawRequest(types.SpriteBalloon)
}
