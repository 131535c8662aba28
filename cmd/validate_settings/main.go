// validate_settings 校验游戏设置文件，并可转换为另一种格式输出
//
// 用法：
//
//	go run ./cmd/validate_settings data/balloon.yaml
//	go run ./cmd/validate_settings -to toml data/balloon.yaml > balloon.toml
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/decker502/balloon/pkg/config"
	"gopkg.in/yaml.v3"
)

var to = flag.String("to", "", "输出格式（yaml 或 toml），为空则只校验")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: validate_settings [-to yaml|toml] <settings file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	settings, err := config.LoadGameSettings(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s: %v\n", path, err)
		os.Exit(1)
	}

	if *to == "" {
		fmt.Printf("✅ %s 校验通过\n", path)
		fmt.Printf("✅ 屏幕 %.0fx%.0f @ %d FPS，上升速度 %.0f px/s\n",
			settings.ScreenWidth, settings.ScreenHeight, settings.FPS, settings.ScrollSpeed)
		return
	}

	out, err := encode(settings, config.Format(*to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

// encode 把设置编码为指定格式
func encode(settings *config.GameSettings, format config.Format) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		return yaml.Marshal(settings)
	case config.FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
