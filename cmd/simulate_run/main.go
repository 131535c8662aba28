// simulate_run 无窗口运行若干局自动驾驶游戏并打印统计
//
// 用法：
//
//	go run ./cmd/simulate_run -runs 10 -seed 42
//	go run ./cmd/simulate_run -config data/balloon.yaml -max-ticks 36000 -verbose
//
// 同一种子总是得到相同的结果，可用于调参前后对比。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/decker502/balloon/pkg/app"
	"github.com/decker502/balloon/pkg/game"
)

var (
	// 命令行参数
	runs          = flag.Int("runs", 5, "运行局数")
	seed          = flag.Int64("seed", 1, "随机种子")
	maxTicks      = flag.Int("max-ticks", 60*60*10, "单局最多 tick 数")
	settingsPath  = flag.String("config", "", "游戏设置文件（.yaml/.toml），为空则使用默认值")
	highScorePath = flag.String("highscore", "", "最高高度文件路径，为空则不保存")
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
)

// RunResult 是一局的统计结果
type RunResult struct {
	Run    int
	Ticks  int
	Height float64
	Cause  string
	Stats  game.RunStats
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	settings, err := app.LoadSettings(*settingsPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load settings: %v", err)
	}

	var store game.HighScoreStore
	if *highScorePath != "" {
		store = game.NewFileHighScoreStore(*highScorePath)
	}

	session := game.NewSession(settings, store, rand.New(rand.NewSource(*seed)))
	results := simulate(session, *runs, *maxTicks)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tTICKS\tHEIGHT\tCAUSE\tABSORBED\tPOWER-UPS")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%s\t%d\t%d\n",
			r.Run, r.Ticks, r.Height, r.Cause, r.Stats.HitsAbsorbed, r.Stats.PowerUpsCollected)
	}
	w.Flush()
	fmt.Printf("best height: %.1f\n", session.HighestHeight())

	if !session.SaveOnExit() {
		os.Exit(1)
	}
}

// simulate 连续运行 runs 局，每局结束后重开
func simulate(session *game.Session, runs, maxTicks int) []RunResult {
	results := make([]RunResult, 0, runs)
	for run := 1; run <= runs; run++ {
		if run > 1 {
			session.Restart()
		}

		for session.State() == game.StateRunning && session.Stats().Ticks < maxTicks {
			session.Update(steer(session))
		}

		results = append(results, RunResult{
			Run:    run,
			Ticks:  session.Stats().Ticks,
			Height: session.CurrentHeight(),
			Cause:  crashCause(session),
			Stats:  session.Stats(),
		})
		log.Printf("[Simulate] Run %d finished: %s at %.1f", run, crashCause(session), session.CurrentHeight())
	}
	return results
}

func crashCause(session *game.Session) string {
	b := session.Balloon()
	switch {
	case !b.Crashed:
		return "limit"
	case b.Fuel <= 0:
		return "fuel"
	default:
		return "collision"
	}
}
