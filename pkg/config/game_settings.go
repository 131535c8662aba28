package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings 由 Validate 返回的所有错误都包装此哨兵错误
var ErrInvalidSettings = errors.New("invalid game settings")

// GameSettings holds the immutable tuning of a balloon session.
//
// Units: positions and sizes are pixels, speeds are pixels per second,
// timers and intervals are milliseconds, fuel is abstract units.
//
// 配置文件位置: data/balloon.yaml（嵌入二进制），可通过 -config 覆盖
type GameSettings struct {
	FPS          int     `yaml:"fps" toml:"fps"`
	ScreenWidth  float64 `yaml:"screenWidth" toml:"screenWidth"`
	ScreenHeight float64 `yaml:"screenHeight" toml:"screenHeight"`
	ScrollSpeed  float64 `yaml:"scrollSpeed" toml:"scrollSpeed"`

	Balloon  BalloonSettings  `yaml:"balloon" toml:"balloon"`
	Bird     ObstacleSettings `yaml:"bird" toml:"bird"`
	Cloud    ObstacleSettings `yaml:"cloud" toml:"cloud"`
	PowerUp  PowerUpSettings  `yaml:"powerUp" toml:"powerUp"`
	Fuel     FuelSettings     `yaml:"fuel" toml:"fuel"`
	Shield   ShieldSettings   `yaml:"shield" toml:"shield"`
	Slowdown SlowdownSettings `yaml:"slowdown" toml:"slowdown"`
	Spawn    SpawnSettings    `yaml:"spawn" toml:"spawn"`
}

// BalloonSettings 玩家气球的尺寸、水平速度和出生位置
type BalloonSettings struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	HorizontalSpeed float64 `yaml:"horizontalSpeed" toml:"horizontalSpeed"`
	BottomMargin    float64 `yaml:"bottomMargin" toml:"bottomMargin"`
}

// ObstacleSettings 单一障碍物种类的参数
type ObstacleSettings struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PowerUpSettings 道具尺寸与生成时的水平边距
type PowerUpSettings struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Margin float64 `yaml:"margin" toml:"margin"`
}

// FuelSettings 燃料容量、消耗速率（单位/秒）和燃料道具补充量
type FuelSettings struct {
	Max             float64 `yaml:"max" toml:"max"`
	ConsumptionRate float64 `yaml:"consumptionRate" toml:"consumptionRate"`
	PowerUpAmount   float64 `yaml:"powerUpAmount" toml:"powerUpAmount"`
}

// ShieldSettings 护盾持续时间（毫秒）
type ShieldSettings struct {
	Duration float64 `yaml:"duration" toml:"duration"`
}

// SlowdownSettings 减速持续时间（毫秒）和障碍物速度倍率
type SlowdownSettings struct {
	Duration float64 `yaml:"duration" toml:"duration"`
	Factor   float64 `yaml:"factor" toml:"factor"`
}

// SpawnSettings 生成间隔（毫秒）和屏幕上方的生成 Y 坐标
type SpawnSettings struct {
	ObstacleInterval float64 `yaml:"obstacleInterval" toml:"obstacleInterval"`
	PowerUpInterval  float64 `yaml:"powerUpInterval" toml:"powerUpInterval"`
	ObstacleY        float64 `yaml:"obstacleY" toml:"obstacleY"`
	PowerUpY         float64 `yaml:"powerUpY" toml:"powerUpY"`
}

// DefaultSettings 返回内置默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		FPS:          60,
		ScreenWidth:  1200,
		ScreenHeight: 800,
		ScrollSpeed:  20,
		Balloon: BalloonSettings{
			Width:           100,
			Height:          160,
			HorizontalSpeed: 200,
			BottomMargin:    100,
		},
		Bird:  ObstacleSettings{Speed: 500, Width: 50, Height: 50},
		Cloud: ObstacleSettings{Speed: 300, Width: 80, Height: 50},
		PowerUp: PowerUpSettings{
			Width:  30,
			Height: 30,
			Margin: 50,
		},
		Fuel: FuelSettings{
			Max:             100,
			ConsumptionRate: 2,
			PowerUpAmount:   30,
		},
		Shield:   ShieldSettings{Duration: 5000},
		Slowdown: SlowdownSettings{Duration: 5000, Factor: 0.5},
		Spawn: SpawnSettings{
			ObstacleInterval: 2000,
			PowerUpInterval:  7000,
			ObstacleY:        -50,
			PowerUpY:         -30,
		},
	}
}

// LoadGameSettings 从文件加载游戏设置
//
// 文件格式由扩展名决定：.yaml/.yml 使用 YAML，.toml 使用 TOML。
// 文件中缺失的字段保留 DefaultSettings() 的值。
//
// 参数:
//   - path: 配置文件路径（如 "data/balloon.yaml"）
//
// 返回:
//   - *GameSettings: 校验通过的设置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameSettings(path string) (*GameSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game settings: %w", err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return ParseGameSettings(data, format)
}

// Format 配置文件格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath 根据扩展名推断配置格式
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported settings format: %q", filepath.Ext(path))
	}
}

// ParseGameSettings 解析内存中的配置数据并校验
func ParseGameSettings(data []byte, format Format) (*GameSettings, error) {
	settings := DefaultSettings()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse game settings: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(settings); err != nil {
			return nil, fmt.Errorf("failed to parse game settings: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format: %q", format)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate 校验设置是否在合理范围内
//
// 所有尺寸、速度、间隔和持续时间必须为正；减速倍率必须在 (0, 1] 内；
// 实体必须能放进屏幕宽度。生成 Y 坐标允许为负（屏幕上方）。
func (s *GameSettings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"fps", float64(s.FPS)},
		{"screenWidth", s.ScreenWidth},
		{"screenHeight", s.ScreenHeight},
		{"scrollSpeed", s.ScrollSpeed},
		{"balloon.width", s.Balloon.Width},
		{"balloon.height", s.Balloon.Height},
		{"balloon.horizontalSpeed", s.Balloon.HorizontalSpeed},
		{"bird.speed", s.Bird.Speed},
		{"bird.width", s.Bird.Width},
		{"bird.height", s.Bird.Height},
		{"cloud.speed", s.Cloud.Speed},
		{"cloud.width", s.Cloud.Width},
		{"cloud.height", s.Cloud.Height},
		{"powerUp.width", s.PowerUp.Width},
		{"powerUp.height", s.PowerUp.Height},
		{"fuel.max", s.Fuel.Max},
		{"fuel.consumptionRate", s.Fuel.ConsumptionRate},
		{"fuel.powerUpAmount", s.Fuel.PowerUpAmount},
		{"shield.duration", s.Shield.Duration},
		{"slowdown.duration", s.Slowdown.Duration},
		{"spawn.obstacleInterval", s.Spawn.ObstacleInterval},
		{"spawn.powerUpInterval", s.Spawn.PowerUpInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidSettings, p.name, p.value)
		}
	}

	if s.Slowdown.Factor <= 0 || s.Slowdown.Factor > 1 {
		return fmt.Errorf("%w: slowdown.factor must be in (0, 1], got %v", ErrInvalidSettings, s.Slowdown.Factor)
	}
	if s.Balloon.BottomMargin < 0 {
		return fmt.Errorf("%w: balloon.bottomMargin must be >= 0, got %v", ErrInvalidSettings, s.Balloon.BottomMargin)
	}
	if s.PowerUp.Margin < 0 {
		return fmt.Errorf("%w: powerUp.margin must be >= 0, got %v", ErrInvalidSettings, s.PowerUp.Margin)
	}

	widest := max(s.Balloon.Width, s.Bird.Width, s.Cloud.Width, s.PowerUp.Width)
	if widest > s.ScreenWidth {
		return fmt.Errorf("%w: entity width %v exceeds screenWidth %v", ErrInvalidSettings, widest, s.ScreenWidth)
	}
	if s.Balloon.Height+s.Balloon.BottomMargin > s.ScreenHeight {
		return fmt.Errorf("%w: balloon does not fit vertically (height %v + margin %v > %v)",
			ErrInvalidSettings, s.Balloon.Height, s.Balloon.BottomMargin, s.ScreenHeight)
	}

	return nil
}

// TickSeconds 返回一个固定时间步长（秒）
func (s *GameSettings) TickSeconds() float64 {
	return 1.0 / float64(s.FPS)
}
