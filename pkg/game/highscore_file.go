package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileHighScoreStore 将最高高度以纯文本数字保存到文件
// 供终端前端和模拟工具使用
type FileHighScoreStore struct {
	path string
}

// NewFileHighScoreStore 创建基于文件的存储
func NewFileHighScoreStore(path string) *FileHighScoreStore {
	return &FileHighScoreStore{path: path}
}

// Path 返回存储文件路径
func (s *FileHighScoreStore) Path() string {
	return s.path
}

// Load 读取文件中的数字，文件不存在时返回 0
func (s *FileHighScoreStore) Load() (float64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read high score file: %w", err)
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score file: %w", err)
	}
	if err := checkHeight(h); err != nil {
		return 0, err
	}
	return h, nil
}

// Save 写入最高高度，必要时创建父目录
func (s *FileHighScoreStore) Save(height float64) error {
	if err := checkHeight(height); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create high score directory: %w", err)
		}
	}

	data := strconv.FormatFloat(height, 'f', 2, 64) + "\n"
	if err := os.WriteFile(s.path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}

	log.Printf("[FileHighScoreStore] High score saved to %s: %s", s.path, strings.TrimSpace(data))
	return nil
}
