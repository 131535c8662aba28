package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/balloon/pkg/app"
	"github.com/decker502/balloon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
	settingsPath = flag.String("config", "", "游戏设置文件（.yaml/.toml），为空则使用内置 data/balloon.yaml")
	seed         = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		SettingsPath: *settingsPath,
		Seed:         *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Balloon Ascent")
	ebiten.SetTPS(gameApp.Settings().FPS)

	// Esc/Q 退出时 RunGame 返回 nil（ebiten.Termination）
	runErr := ebiten.RunGame(gameApp)

	// 关闭窗口或退出后保存最高高度
	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Warning: high score was not saved")
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "游戏运行出错: %v\n", runErr)
		os.Exit(1)
	}
}
