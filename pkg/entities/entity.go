// Package entities 定义模拟核心中的实体：气球、障碍物和道具
//
// 实体只包含状态和自身的更新规则，不依赖任何渲染或输入库。
// 实体的集合由 systems 包中的管理器持有。
package entities

import "github.com/decker502/balloon/pkg/types"

// Entity 是所有实体共享的位置与尺寸
// 坐标系以屏幕左上角为原点，Y 轴向下
type Entity struct {
	X      float64
	Y      float64
	Width  float64 // 始终 > 0
	Height float64 // 始终 > 0
}

// CollidesWith 使用严格的 AABB 检测判断两个矩形是否重叠
//
// 只共享一条边或一个角的矩形不算碰撞。检测满足交换律。
func (e *Entity) CollidesWith(other *Entity) bool {
	return e.X < other.X+other.Width &&
		e.X+e.Width > other.X &&
		e.Y < other.Y+other.Height &&
		e.Y+e.Height > other.Y
}

// Right 返回右边界 X 坐标
func (e *Entity) Right() float64 {
	return e.X + e.Width
}

// Bottom 返回下边界 Y 坐标
func (e *Entity) Bottom() float64 {
	return e.Y + e.Height
}

// DrawRequest 是核心交给渲染器的一次绘制请求
// 渲染器根据 Kind 选择外观，并在 (X, Y) 处绘制 Width×Height 的区域
type DrawRequest struct {
	X, Y          float64
	Width, Height float64
	Kind          types.SpriteKind
}

func (e *Entity) drawRequest(kind types.SpriteKind) DrawRequest {
	return DrawRequest{
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Kind:   kind,
	}
}
