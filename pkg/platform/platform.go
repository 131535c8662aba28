//go:build !mobile

// Package platform 隔离桌面端与移动端的差异：触屏模式检测和存储目录准备
package platform

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 BALLOON_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试触屏提示）
func IsMobile() bool {
	return os.Getenv("BALLOON_MOBILE_EMULATE") == "1"
}
