// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/balloon/pkg/config"
	"github.com/decker502/balloon/pkg/embedded"
	"github.com/decker502/balloon/pkg/game"
	"github.com/decker502/balloon/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName 是 gdata 存储使用的应用名
const AppName = "balloon_ascent"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SettingsPath 指定设置文件（.yaml/.yml/.toml），为空则使用内置设置
	SettingsPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Store 最高高度存储，nil 时使用 gdata
	Store game.HighScoreStore
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *config.GameSettings
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内置设置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := LoadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	store := cfg.Store
	if store == nil {
		store = game.OpenHighScoreManager(AppName)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	session := game.NewSession(settings, store, rand.New(rand.NewSource(seed)))
	gameScene, err := scenes.NewGameScene(session, nil)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	gameScene.SetDebug(cfg.Verbose)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadSettings 加载游戏设置
//
// 优先级：指定文件 > 内置 data/balloon.yaml > 代码默认值
func LoadSettings(path string) (*config.GameSettings, error) {
	if path != "" {
		log.Printf("[Config] Loading settings from %s", path)
		return config.LoadGameSettings(path)
	}

	if embedded.Exists(embedded.DefaultSettingsPath) {
		data, err := embedded.ReadFile(embedded.DefaultSettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", embedded.DefaultSettingsPath, err)
		}
		log.Printf("[Config] Using embedded %s", embedded.DefaultSettingsPath)
		return config.ParseGameSettings(data, config.FormatYAML)
	}

	log.Printf("[Config] No settings file, using defaults")
	return config.DefaultSettings(), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 FPS 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.settings.TickSeconds())

	if a.sceneManager.ShouldExit() {
		log.Printf("[App] Exit requested")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回设置中的逻辑屏幕尺寸
func (a *App) WindowSize() (int, int) {
	return int(a.settings.ScreenWidth), int(a.settings.ScreenHeight)
}

// Settings 返回当前游戏设置
func (a *App) Settings() *config.GameSettings {
	return a.settings
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高高度
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
