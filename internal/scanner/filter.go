package scanner

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter 使用 doublestar 通配模式筛选待扫描文件。
// 模式匹配的是相对扫描根目录、以 / 分隔的路径，例如 src/**/*.c。
type Filter struct {
	Include []string
	Exclude []string
}

// Validate 检查全部模式的语法。
func (f Filter) Validate() error {
	for _, pattern := range append(append([]string(nil), f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}

// Allows 判断相对路径是否应被扫描。
// Include 为空时默认接受全部文件，Exclude 优先于 Include。
func (f Filter) Allows(relativePath string) bool {
	for _, pattern := range f.Exclude {
		if doublestar.MatchUnvalidated(pattern, relativePath) {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if doublestar.MatchUnvalidated(pattern, relativePath) {
			return true
		}
	}
	return false
}
