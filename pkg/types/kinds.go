// Package types 定义共享的基础类型
package types

// ObstacleKind 定义障碍物的种类
type ObstacleKind int

const (
	ObstacleBird  ObstacleKind = iota // 鸟：速度快、体型小
	ObstacleCloud                     // 云：速度慢、体型大
)

// ObstacleKinds 列出全部障碍物种类，用于均匀随机生成
var ObstacleKinds = []ObstacleKind{ObstacleBird, ObstacleCloud}

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBird:
		return "bird"
	case ObstacleCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// Sprite 返回障碍物对应的绘制种类
func (k ObstacleKind) Sprite() SpriteKind {
	switch k {
	case ObstacleBird:
		return SpriteBird
	default:
		return SpriteCloud
	}
}

// PowerUpKind 定义道具的种类
type PowerUpKind int

const (
	PowerUpFuel     PowerUpKind = iota // 燃料补充
	PowerUpShield                      // 护盾
	PowerUpSlowdown                    // 障碍物减速
)

// PowerUpKinds 列出全部道具种类，用于均匀随机生成
var PowerUpKinds = []PowerUpKind{PowerUpFuel, PowerUpShield, PowerUpSlowdown}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpFuel:
		return "fuel"
	case PowerUpShield:
		return "shield"
	case PowerUpSlowdown:
		return "slowdown"
	default:
		return "unknown"
	}
}

// Sprite 返回道具对应的绘制种类
func (k PowerUpKind) Sprite() SpriteKind {
	switch k {
	case PowerUpFuel:
		return SpriteFuel
	case PowerUpShield:
		return SpriteShield
	default:
		return SpriteSlowdown
	}
}

// SpriteKind 是渲染层看到的视觉种类
// 渲染器根据它选择颜色或字符，核心逻辑不关心具体外观
type SpriteKind int

const (
	SpriteBalloon SpriteKind = iota
	SpriteBalloonShielded
	SpriteBird
	SpriteCloud
	SpriteFuel
	SpriteShield
	SpriteSlowdown
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteBalloon:
		return "balloon"
	case SpriteBalloonShielded:
		return "balloon_shielded"
	case SpriteBird:
		return "bird"
	case SpriteCloud:
		return "cloud"
	case SpriteFuel:
		return "fuel"
	case SpriteShield:
		return "shield"
	case SpriteSlowdown:
		return "slowdown"
	default:
		return "unknown"
	}
}
