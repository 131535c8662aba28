package entities

import (
	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/types"
)

// PowerUp 是随背景向下滚动、可被气球收集的道具
type PowerUp struct {
	Entity
	Kind types.PowerUpKind

	settings *config.GameSettings
}

// NewPowerUp 创建道具，尺寸取自 settings.PowerUp
func NewPowerUp(settings *config.GameSettings, kind types.PowerUpKind, x, y float64) *PowerUp {
	return &PowerUp{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  settings.PowerUp.Width,
			Height: settings.PowerUp.Height,
		},
		Kind:     kind,
		settings: settings,
	}
}

// Update 道具只做垂直滚动
func (p *PowerUp) Update(dt float64) {
	p.Y += p.settings.ScrollSpeed * dt
}

// DrawRequest 返回道具的绘制请求
func (p *PowerUp) DrawRequest() DrawRequest {
	return p.drawRequest(p.Kind.Sprite())
}

// ApplyPowerUp 将指定种类道具的效果作用到气球上
//
//   - Fuel: 燃料增加 Fuel.PowerUpAmount，不超过 Fuel.Max
//   - Shield: 激活护盾并重置计时（重复拾取不叠加）
//   - Slowdown: 激活减速并重置计时，共享速度倍率降为 Slowdown.Factor
func ApplyPowerUp(kind types.PowerUpKind, b *Balloon) {
	s := b.settings
	switch kind {
	case types.PowerUpFuel:
		b.Fuel = min(b.Fuel+s.Fuel.PowerUpAmount, s.Fuel.Max)
	case types.PowerUpShield:
		b.ShieldActive = true
		b.ShieldTimer = s.Shield.Duration
	case types.PowerUpSlowdown:
		b.SlowdownActive = true
		b.SlowdownTimer = s.Slowdown.Duration
		b.scale.Slow(s.Slowdown.Factor)
	}
}
