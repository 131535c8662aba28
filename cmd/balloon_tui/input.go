package main

import (
	"time"

	"github.com/decker502/balloon/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// 终端没有按键抬起事件，按下方向键后在 holdWindow 内视为按住，
// 依靠终端的自动重复维持移动
const holdWindow = 150 * time.Millisecond

// keyState 把 tcell 按键事件累积成每个 tick 的 game.Input
type keyState struct {
	leftUntil  time.Time
	rightUntil time.Time

	restart bool
	quit    bool
	pause   bool
}

// handle 记录一个按键事件
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.leftUntil = now.Add(holdWindow)
		return
	case tcell.KeyRight:
		k.rightUntil = now.Add(holdWindow)
		return
	case tcell.KeyEnter:
		k.restart = true
		return
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'a', 'A':
		k.leftUntil = now.Add(holdWindow)
	case 'd', 'D':
		k.rightUntil = now.Add(holdWindow)
	case ' ', 'r', 'R':
		k.restart = true
	case 'q', 'Q':
		k.quit = true
	case 'p', 'P':
		k.pause = true
	}
}

// sample 返回本 tick 的输入，边沿触发的按键只上报一次
func (k *keyState) sample(now time.Time) game.Input {
	in := game.Input{
		MoveLeft:  now.Before(k.leftUntil),
		MoveRight: now.Before(k.rightUntil),
		Restart:   k.restart,
		Quit:      k.quit,
		Pause:     k.pause,
	}
	k.restart, k.quit, k.pause = false, false, false
	return in
}
