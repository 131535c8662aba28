package main

import (
	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/game"
)

// steerDeadband 道具中心与气球中心的水平差小于该值时不再移动（像素）
const steerDeadband = 8

// steer 是一个简单的自动驾驶策略
//
// 优先躲避正上方最近的障碍物（有护盾时忽略），否则朝最近的下落道具靠拢。
func steer(s *game.Session) game.Input {
	b := s.Balloon()
	center := b.X + b.Width/2

	if !b.ShieldActive {
		if threat := nearestThreat(b, s.Obstacles().Obstacles(), s.Settings().ScreenHeight/2); threat != nil {
			return dodge(b, threat, s.Settings().ScreenWidth)
		}
	}

	var target *entities.PowerUp
	for _, p := range s.PowerUps().PowerUps() {
		if p.Y > b.Bottom() {
			continue
		}
		if target == nil || p.Y > target.Y {
			target = p
		}
	}
	if target == nil {
		return game.Input{}
	}

	tc := target.X + target.Width/2
	switch {
	case tc < center-steerDeadband:
		return game.Input{MoveLeft: true}
	case tc > center+steerDeadband:
		return game.Input{MoveRight: true}
	}
	return game.Input{}
}

// nearestThreat 返回气球上方 lookahead 范围内、水平方向可能撞上的最近障碍物
func nearestThreat(b *entities.Balloon, obstacles []*entities.Obstacle, lookahead float64) *entities.Obstacle {
	margin := b.Width / 2
	var threat *entities.Obstacle
	for _, o := range obstacles {
		if o.Y > b.Bottom() || o.Bottom() < b.Y-lookahead {
			continue
		}
		if o.Right() < b.X-margin || o.X > b.Right()+margin {
			continue
		}
		if threat == nil || o.Bottom() > threat.Bottom() {
			threat = o
		}
	}
	return threat
}

// dodge 向远离障碍物中心的一侧移动，贴墙时改向另一侧
func dodge(b *entities.Balloon, o *entities.Obstacle, screenWidth float64) game.Input {
	goLeft := o.X+o.Width/2 >= b.X+b.Width/2
	if goLeft && b.X <= 0 {
		goLeft = false
	}
	if !goLeft && b.Right() >= screenWidth {
		goLeft = true
	}
	if goLeft {
		return game.Input{MoveLeft: true}
	}
	return game.Input{MoveRight: true}
}
