package entities

// SpeedScale 是一局游戏内所有障碍物共享的水平速度倍率
//
// 由会话创建并以指针形式传给气球（写入方）和每个障碍物（读取方）。
// 减速生效期间倍率为配置的 Slowdown.Factor，结束后恢复为 1，
// 因此在减速期间生成的障碍物同样被减速，并在结束时精确恢复原速度。
type SpeedScale struct {
	factor float64
}

// NewSpeedScale 创建倍率为 1 的 SpeedScale
func NewSpeedScale() *SpeedScale {
	return &SpeedScale{factor: 1}
}

// Factor 返回当前倍率，nil 视为 1
func (s *SpeedScale) Factor() float64 {
	if s == nil {
		return 1
	}
	return s.factor
}

// Slow 设置减速倍率
func (s *SpeedScale) Slow(factor float64) {
	if s == nil {
		return
	}
	s.factor = factor
}

// Restore 恢复正常速度
func (s *SpeedScale) Restore() {
	if s == nil {
		return
	}
	s.factor = 1
}
