// Package embedded 提供嵌入资源的统一访问接口
//
// 默认房间配置和数字点阵等数据文件嵌入在本包的 data/ 目录中，
// 桌面端和终端端共用同一份资源，无需在 main 中初始化。
// 不以 "data/" 开头的路径直接从磁盘读取，用于用户自定义配置文件。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data
var dataFS embed.FS

// dataPrefix 嵌入资源的路径前缀
const dataPrefix = "data/"

// normalize 标准化路径分隔符并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// IsEmbedded 判断路径是否指向嵌入资源
func IsEmbedded(path string) bool {
	return strings.HasPrefix(normalize(path), dataPrefix)
}

// ReadFile 读取文件内容
// 以 "data/" 开头的路径从嵌入资源读取，其余路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if IsEmbedded(path) {
		data, err := fs.ReadFile(dataFS, normalize(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if IsEmbedded(path) {
		_, err := fs.Stat(dataFS, normalize(path))
		return err == nil
	}
	_, err := os.Stat(path)
	return err == nil
}

// Glob 在嵌入资源中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !IsEmbedded(pattern) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	return fs.Glob(dataFS, normalize(pattern))
}
