//go:build mobile

// embed.go - 移动端数据文件嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/balloon.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/balloon.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/balloon.yaml
var dataFS embed.FS
