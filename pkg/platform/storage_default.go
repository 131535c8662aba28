//go:build !android

package platform

// EnsureStorageDir 非 Android 平台无需处理，gdata 会自动创建存储目录
func EnsureStorageDir() error {
	return nil
}

// StoragePath 非 Android 平台返回空字符串
func StoragePath() string {
	return ""
}
