package main

import (
	"fmt"
	"math"

	"github.com/decker502/balloon/pkg/entities"
	"github.com/decker502/balloon/pkg/game"
	"github.com/decker502/balloon/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// hudRows 屏幕顶部留给 HUD 的行数
const hudRows = 1

var (
	skyStyle = tcell.StyleDefault.Background(tcell.ColorNavy)
	hudStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	msgStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

type glyph struct {
	ch    rune
	style tcell.Style
}

var spriteGlyphs = map[types.SpriteKind]glyph{
	types.SpriteBalloon:         {'O', skyStyle.Foreground(tcell.ColorRed)},
	types.SpriteBalloonShielded: {'O', skyStyle.Foreground(tcell.ColorAqua)},
	types.SpriteBird:            {'v', skyStyle.Foreground(tcell.ColorYellow)},
	types.SpriteCloud:           {'~', skyStyle.Foreground(tcell.ColorWhite)},
	types.SpriteFuel:            {'F', skyStyle.Foreground(tcell.ColorOrange)},
	types.SpriteShield:          {'S', skyStyle.Foreground(tcell.ColorBlue)},
	types.SpriteSlowdown:        {'T', skyStyle.Foreground(tcell.ColorPurple)},
}

func spriteGlyph(kind types.SpriteKind) glyph {
	if g, ok := spriteGlyphs[kind]; ok {
		return g
	}
	return glyph{'?', skyStyle.Foreground(tcell.ColorFuchsia)}
}

// viewport 把世界坐标（像素）缩放到终端字符格
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

// cellRect 返回矩形覆盖的字符格范围 [c0,c1]x[r0,r1]，ok=false 表示完全在可见区域外
// 每个实体至少占一个字符格
func (v viewport) cellRect(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	playRows := v.rows - hudRows
	if v.cols <= 0 || playRows <= 0 {
		return 0, 0, 0, 0, false
	}
	sx := float64(v.cols) / v.worldW
	sy := float64(playRows) / v.worldH

	c0 = int(math.Floor(x * sx))
	c1 = max(c0, int(math.Ceil((x+w)*sx))-1)
	r0 = int(math.Floor(y * sy))
	r1 = max(r0, int(math.Ceil((y+h)*sy))-1)

	if c1 < 0 || r1 < 0 || c0 >= v.cols || r0 >= playRows {
		return 0, 0, 0, 0, false
	}
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, v.cols-1), min(r1, playRows-1)
	return c0, r0 + hudRows, c1, r1 + hudRows, true
}

// hudText 生成顶部状态行
func hudText(hud game.HUD) string {
	s := fmt.Sprintf(" Height %.0f  Best %.0f  Fuel %.0f", hud.CurrentHeight, hud.HighestHeight, hud.Fuel)
	if hud.ShieldActive {
		s += fmt.Sprintf("  Shield %.1fs", hud.ShieldRemaining/1000)
	}
	if hud.SlowdownActive {
		s += fmt.Sprintf("  Slow %.1fs", hud.SlowdownRemaining/1000)
	}
	if hud.Paused {
		s += "  [PAUSED]"
	}
	return s
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}

// draw 渲染一帧
func draw(s tcell.Screen, session *game.Session) {
	cols, rows := s.Size()
	s.SetStyle(skyStyle)
	s.Clear()

	settings := session.Settings()
	vp := viewport{cols: cols, rows: rows, worldW: settings.ScreenWidth, worldH: settings.ScreenHeight}
	for _, req := range session.DrawRequests() {
		drawRequest(s, vp, req)
	}

	hud := session.HUD()
	for x := 0; x < cols; x++ {
		s.SetContent(x, 0, ' ', nil, hudStyle)
	}
	drawString(s, 0, 0, hudText(hud), hudStyle)

	if hud.State == game.StateGameOver {
		msg := fmt.Sprintf(" GAME OVER  height %.0f  best %.0f  (space: restart, q: quit) ", hud.CurrentHeight, hud.HighestHeight)
		drawString(s, max(0, (cols-len(msg))/2), rows/2, msg, msgStyle)
	}

	s.Show()
}

func drawRequest(s tcell.Screen, vp viewport, req entities.DrawRequest) {
	c0, r0, c1, r1, ok := vp.cellRect(req.X, req.Y, req.Width, req.Height)
	if !ok {
		return
	}
	g := spriteGlyph(req.Kind)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			s.SetContent(x, y, g.ch, nil, g.style)
		}
	}
}
