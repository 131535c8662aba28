//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 不带 -tags mobile 时 mobile.go 和 embed.go 都被排除，
// 这里保留导出符号让 go build ./... 和 go vet ./... 能正常处理本包。
package mobile

// Dummy 与移动端构建中的同名函数保持一致
func Dummy() {}
