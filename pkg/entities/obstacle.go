package entities

import (
	"math"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/types"
)

// Obstacle 是水平往返、随背景向下滚动的障碍物（鸟或云）
type Obstacle struct {
	Entity
	Kind  types.ObstacleKind
	Speed float64 // 带符号的基础水平速度（像素/秒），有效速度 = Speed × scale

	settings *config.GameSettings
	scale    *SpeedScale
}

// KindParameters 返回指定障碍物种类的速度和尺寸
func KindParameters(settings *config.GameSettings, kind types.ObstacleKind) config.ObstacleSettings {
	switch kind {
	case types.ObstacleBird:
		return settings.Bird
	default:
		return settings.Cloud
	}
}

// NewObstacle 创建障碍物
//
// 参数:
//   - settings: 游戏设置
//   - scale: 会话共享的速度倍率，可为 nil（不受减速影响）
//   - kind: 障碍物种类
//   - x, y: 左上角坐标
//   - direction: 初始水平方向，>= 0 向右，< 0 向左
func NewObstacle(settings *config.GameSettings, scale *SpeedScale, kind types.ObstacleKind, x, y float64, direction int) *Obstacle {
	params := KindParameters(settings, kind)
	speed := math.Abs(params.Speed)
	if direction < 0 {
		speed = -speed
	}
	return &Obstacle{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  params.Width,
			Height: params.Height,
		},
		Kind:     kind,
		Speed:    speed,
		settings: settings,
		scale:    scale,
	}
}

// Update 推进障碍物一个时间步
//
// 水平移动后在屏幕左右边界反射：位置被钳制到边界内，速度只翻转符号，
// 速度大小保持不变。
func (o *Obstacle) Update(dt float64) {
	o.X += o.Speed * o.scale.Factor() * dt
	o.Y += o.settings.ScrollSpeed * dt

	if o.X <= 0 {
		o.X = 0
		o.Speed = math.Abs(o.Speed)
	} else if o.Right() >= o.settings.ScreenWidth {
		o.X = o.settings.ScreenWidth - o.Width
		o.Speed = -math.Abs(o.Speed)
	}
}

// EffectiveSpeed 返回考虑减速倍率后的水平速度
func (o *Obstacle) EffectiveSpeed() float64 {
	return o.Speed * o.scale.Factor()
}

// DrawRequest 返回障碍物的绘制请求
func (o *Obstacle) DrawRequest() DrawRequest {
	return o.drawRequest(o.Kind.Sprite())
}
