// balloon_tui 在终端中运行气球上升游戏
//
// 用法：
//
//	go run ./cmd/balloon_tui [-config data/balloon.yaml] [-seed 42] [-highscore path] [-log balloon.log]
//
// 方向键或 A/D 移动，空格/Enter/R 重开，P 暂停，Esc/Q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/balloon/pkg/app"
	"github.com/decker502/balloon/pkg/game"
	"github.com/gdamore/tcell/v2"
)

var (
	// 命令行参数
	settingsPath  = flag.String("config", "", "游戏设置文件（.yaml/.toml），为空则使用默认值")
	seed          = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	highScorePath = flag.String("highscore", defaultHighScorePath(), "最高高度文件路径")
	logPath       = flag.String("log", "", "日志文件路径，为空则不输出日志")
)

func defaultHighScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "balloon_highscore.txt"
	}
	return filepath.Join(dir, app.AppName, "highscore.txt")
}

func main() {
	flag.Parse()

	// 终端被 tcell 接管，日志只能写文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings, err := app.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[TUI] Random seed: %d, high score file: %s", *seed, *highScorePath)

	store := game.NewFileHighScoreStore(*highScorePath)
	session := game.NewSession(settings, store, rand.New(rand.NewSource(*seed)))

	if err := run(session); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	hud := session.HUD()
	fmt.Printf("Height %.0f, best %.0f\n", hud.CurrentHeight, hud.HighestHeight)
}

// run 驱动主循环直到会话进入 Exit 状态
func run(session *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	tickDuration := time.Duration(session.Settings().TickSeconds() * float64(time.Second))
	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()

	keys := &keyState{}
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handle(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.Update(keys.sample(now))
			if session.State() == game.StateExit {
				return nil
			}
			draw(screen, session)
		}
	}
}
