package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/decker502/balloon/pkg/platform"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreStore 持久化最高高度的存储
//
// Load 在数据缺失时返回 (0, nil)；数据损坏时返回 (0, err)，
// 调用方记录警告并以 0 继续（恢复策略，而不是致命错误）。
type HighScoreStore interface {
	Load() (float64, error)
	Save(height float64) error
}

// HighScoreRecord 是保存在 gdata 中的 YAML 记录
type HighScoreRecord struct {
	HighestHeight float64   `yaml:"highestHeight"`
	UpdatedAt     time.Time `yaml:"updatedAt"`
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

// HighScoreManager 基于 gdata 的最高高度存储
//
// gdataManager 为 nil 时进入降级模式：只在内存中保存，不报错。
type HighScoreManager struct {
	gdataManager *gdata.Manager
	best         float64 // 降级模式下的内存值
}

// OpenHighScoreManager 打开跨平台存储并创建 HighScoreManager
//
// 打开失败不是致命错误：记录警告并返回降级模式的管理器。
func OpenHighScoreManager(appName string) *HighScoreManager {
	if err := platform.EnsureStorageDir(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[HighScoreManager] Warning: gdata unavailable: %v (high score kept in memory)", err)
		return NewHighScoreManager(nil)
	}
	return NewHighScoreManager(manager)
}

// NewHighScoreManager 创建最高高度存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	return &HighScoreManager{gdataManager: gdataManager}
}

// Load 读取最高高度
//
// 记录不存在时返回 0；记录无法解析或数值非法时返回 0 和错误。
func (m *HighScoreManager) Load() (float64, error) {
	if m.gdataManager == nil {
		return m.best, nil
	}

	if !m.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0, nil
	}

	data, err := m.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return 0, fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if err := checkHeight(record.HighestHeight); err != nil {
		return 0, err
	}

	return record.HighestHeight, nil
}

// Save 保存最高高度
func (m *HighScoreManager) Save(height float64) error {
	if err := checkHeight(height); err != nil {
		return err
	}

	if m.gdataManager == nil {
		m.best = height
		return nil
	}

	data, err := yaml.Marshal(&HighScoreRecord{
		HighestHeight: height,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreManager] High score saved: %.1f", height)
	return nil
}

func checkHeight(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return fmt.Errorf("invalid high score value: %v", h)
	}
	return nil
}
