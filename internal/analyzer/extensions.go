package analyzer

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupportedExtension 表示文件后缀不属于任何已知方言。
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Dialect 描述一种可分析的源码方言及其文件后缀。
type Dialect struct {
	Name       string
	Extensions []string
}

// Registry 管理方言与后缀的映射。
type Registry struct {
	dialects     []Dialect
	dialectByExt map[string]string
}

// NewRegistry 创建并注册全部内置方言。
func NewRegistry() *Registry {
	dialects := []Dialect{
		{Name: "C", Extensions: []string{".c", ".h"}},
		{Name: "C++", Extensions: []string{".cc", ".cpp", ".cxx", ".c++", ".hh", ".hpp", ".hxx", ".inl"}},
	}

	registry := &Registry{
		dialects:     dialects,
		dialectByExt: make(map[string]string),
	}
	for _, dialect := range dialects {
		for _, ext := range dialect.Extensions {
			registry.dialectByExt[strings.ToLower(ext)] = dialect.Name
		}
	}
	return registry
}

// DialectForFile 根据文件后缀查找方言名称。
func (r *Registry) DialectForFile(path string) (string, bool) {
	name, ok := r.dialectByExt[strings.ToLower(filepath.Ext(path))]
	return name, ok
}

// Dialects 返回按名称排序的方言清单。
func (r *Registry) Dialects() []Dialect {
	result := make([]Dialect, 0, len(r.dialects))
	for _, dialect := range r.dialects {
		extensions := append([]string(nil), dialect.Extensions...)
		sort.Strings(extensions)
		result = append(result, Dialect{Name: dialect.Name, Extensions: extensions})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
