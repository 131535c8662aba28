package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/balloon/pkg/game"
	"github.com/decker502/balloon/pkg/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// HUD 布局
	HUDMarginX     = 16
	HUDMarginY     = 12
	HUDLineHeight  = 26
	HUDFontSize    = 20.0
	TitleFontSize  = 48.0
	FuelBarWidth   = 200
	FuelBarHeight  = 14
	ShieldRingSize = 3 // 护盾描边宽度（像素）
)

// InputSource 每帧采样一次逻辑输入
type InputSource func() game.Input

// GameScene 是气球上升的主玩法场景
// 它把 ebiten 的键盘状态翻译成 game.Input，驱动 game.Session，
// 并把会话产出的绘制请求渲染成纯色矩形。
type GameScene struct {
	session *game.Session
	input   InputSource

	hudFace   *text.GoTextFace
	titleFace *text.GoTextFace

	showDebug bool // 右上角显示 TPS 和实体数量
}

// NewGameScene 创建主玩法场景
//
// 参数：
//   - session: 游戏会话
//   - input: 输入源，nil 时使用键盘
//
// 返回：
//   - *GameScene: 场景
//   - error: 字体加载失败时返回错误
func NewGameScene(session *game.Session, input InputSource) (*GameScene, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD font source: %w", err)
	}
	if input == nil {
		width := session.Settings().ScreenWidth
		input = func() game.Input {
			return mergeInput(PollKeyboard(), PollTouch(width))
		}
	}

	log.Printf("[GameScene] Created (screen %.0fx%.0f)", session.Settings().ScreenWidth, session.Settings().ScreenHeight)
	return &GameScene{
		session:   session,
		input:     input,
		hudFace:   &text.GoTextFace{Source: source, Size: HUDFontSize},
		titleFace: &text.GoTextFace{Source: source, Size: TitleFontSize},
	}, nil
}

// PollKeyboard 读取键盘状态
//
// A/← 和 D/→ 为按住移动；Space/Enter/R 重开，Esc/Q 退出，P 暂停，只在按下那一帧触发。
func PollKeyboard() game.Input {
	return game.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// PollTouch 读取触屏状态
//
// 按住屏幕左半边向左、右半边向右；任意新触点视为重开（只在游戏结束时生效）。
func PollTouch(screenWidth float64) game.Input {
	var in game.Input
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		if float64(x) < screenWidth/2 {
			in.MoveLeft = true
		} else {
			in.MoveRight = true
		}
	}
	in.Restart = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	return in
}

// mergeInput 合并多个输入源，任一为 true 即为 true
func mergeInput(inputs ...game.Input) game.Input {
	var out game.Input
	for _, in := range inputs {
		out.MoveLeft = out.MoveLeft || in.MoveLeft
		out.MoveRight = out.MoveRight || in.MoveRight
		out.Restart = out.Restart || in.Restart
		out.Quit = out.Quit || in.Quit
		out.Pause = out.Pause || in.Pause
	}
	return out
}

// Update 推进一个 tick，deltaTime 由 App 按 1/FPS 传入
func (s *GameScene) Update(deltaTime float64) {
	s.session.UpdateWithDelta(s.input(), deltaTime)
}

// Draw 绘制天空、实体和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, req := range s.session.DrawRequests() {
		x, y := float32(req.X), float32(req.Y)
		w, h := float32(req.Width), float32(req.Height)
		vector.DrawFilledRect(screen, x, y, w, h, SpriteColor(req.Kind), false)
	}

	hud := s.session.HUD()
	if hud.ShieldActive {
		b := s.session.Balloon()
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
			ShieldRingSize, shieldRingColor, false)
	}

	s.drawHUD(screen, hud)

	if s.showDebug {
		s.drawDebug(screen)
	}

	switch {
	case hud.State == game.StateGameOver:
		s.drawOverlay(screen, "GAME OVER", gameOverHint(hud))
	case hud.Paused:
		s.drawOverlay(screen, "PAUSED", "Press P to resume")
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image, hud game.HUD) {
	y := float64(HUDMarginY)
	for _, line := range hudLines(hud) {
		s.drawText(screen, s.hudFace, line, HUDMarginX, y, hudTextColor)
		y += HUDLineHeight
	}

	// 燃料条
	barY := float32(y) + 4
	vector.DrawFilledRect(screen, HUDMarginX, barY, FuelBarWidth, FuelBarHeight, fuelBarBackColor, false)
	vector.DrawFilledRect(screen, HUDMarginX, barY, float32(FuelBarWidth*hud.FuelRatio), FuelBarHeight,
		fuelColor(hud.FuelRatio), false)
}

func (s *GameScene) drawOverlay(screen *ebiten.Image, title, hint string) {
	settings := s.session.Settings()
	w, h := float32(settings.ScreenWidth), float32(settings.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	titleW, _ := text.Measure(title, s.titleFace, 0)
	s.drawText(screen, s.titleFace, title, (settings.ScreenWidth-titleW)/2, settings.ScreenHeight/2-TitleFontSize, overlayTextColor)

	hintW, _ := text.Measure(hint, s.hudFace, 0)
	s.drawText(screen, s.hudFace, hint, (settings.ScreenWidth-hintW)/2, settings.ScreenHeight/2+HUDLineHeight, overlayTextColor)
}

func (s *GameScene) drawText(screen *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

func (s *GameScene) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS %.1f\nobstacles %d\npower-ups %d\nrun %d",
		ebiten.ActualTPS(), s.session.Obstacles().Len(), s.session.PowerUps().Len(), s.session.HUD().Run)
	ebitenutil.DebugPrintAt(screen, msg, int(s.session.Settings().ScreenWidth)-120, HUDMarginY)
}

// SetDebug 开关调试信息
func (s *GameScene) SetDebug(enabled bool) {
	s.showDebug = enabled
}

// ShouldExit 会话进入 Exit 状态后请求关闭程序
func (s *GameScene) ShouldExit() bool {
	return s.session.State() == game.StateExit
}

// SaveOnExit 保存最高高度
func (s *GameScene) SaveOnExit() bool {
	return s.session.SaveOnExit()
}

// Session 返回场景驱动的会话
func (s *GameScene) Session() *game.Session {
	return s.session
}

// hudLines 生成 HUD 文本行
func hudLines(hud game.HUD) []string {
	lines := []string{
		fmt.Sprintf("Height: %.0f", hud.CurrentHeight),
		fmt.Sprintf("Best: %.0f", hud.HighestHeight),
		fmt.Sprintf("Fuel: %.0f", hud.Fuel),
	}
	if hud.ShieldActive {
		lines = append(lines, fmt.Sprintf("Shield: %.1fs", hud.ShieldRemaining/1000))
	}
	if hud.SlowdownActive {
		lines = append(lines, fmt.Sprintf("Slowdown: %.1fs", hud.SlowdownRemaining/1000))
	}
	return lines
}

func gameOverHint(hud game.HUD) string {
	action := "Space to restart, Esc to quit"
	if platform.IsMobile() {
		action = "Tap to restart"
	}
	return fmt.Sprintf("Height %.0f  Best %.0f  -  %s", hud.CurrentHeight, hud.HighestHeight, action)
}
