// Package model 定义 fnloc 的核心数据模型。
// 这些结构会被分析器、扫描器、输出层和命令层共同使用。
package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// FunctionRecord 表示一个已经闭合的函数。
//
// 注意：
// - Header 是函数签名的第一行，去掉了行尾换行符，永远非空
// - Continuation 保存缩进的续行（两行及以上的签名），多行之间用 \n 连接
// - Lines 只统计函数体内被计数的逻辑行
type FunctionRecord struct {
	Header       string `json:"header" yaml:"header"`
	Continuation string `json:"continuation,omitempty" yaml:"continuation,omitempty"`
	Lines        int    `json:"lines" yaml:"lines"`
}

// FileReport 表示单文件分析结果。
type FileReport struct {
	Path             string           `json:"path" yaml:"path"`
	Language         string           `json:"language,omitempty" yaml:"language,omitempty"`
	Bytes            int64            `json:"bytes" yaml:"bytes"`
	PhysicalLines    int              `json:"physical_lines" yaml:"physical_lines"`
	LogicalLines     int              `json:"logical_lines" yaml:"logical_lines"`
	FunctionCount    int              `json:"function_count" yaml:"function_count"`
	FunctionLines    int              `json:"function_lines" yaml:"function_lines"`
	NonFunctionLines int              `json:"non_function_lines" yaml:"non_function_lines"`
	Functions        []FunctionRecord `json:"functions" yaml:"functions"`
}

// ScanError 记录单文件扫描失败信息。
// 错误不阻断全量扫描，最终通过 ScanResult.Err 汇总。
type ScanError struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// TotalMetrics 表示项目级总计信息。
type TotalMetrics struct {
	Files            int64 `json:"files" yaml:"files"`
	Bytes            int64 `json:"bytes" yaml:"bytes"`
	LogicalLines     int64 `json:"logical_lines" yaml:"logical_lines"`
	FunctionCount    int64 `json:"function_count" yaml:"function_count"`
	FunctionLines    int64 `json:"function_lines" yaml:"function_lines"`
	NonFunctionLines int64 `json:"non_function_lines" yaml:"non_function_lines"`
}

// AddFile 累加一个文件的统计值到项目总计中。
func (m *TotalMetrics) AddFile(report FileReport) {
	m.Files++
	m.Bytes += report.Bytes
	m.LogicalLines += int64(report.LogicalLines)
	m.FunctionCount += int64(report.FunctionCount)
	m.FunctionLines += int64(report.FunctionLines)
	m.NonFunctionLines += int64(report.NonFunctionLines)
}

// ScanResult 是 scan 命令的完整输出模型。
type ScanResult struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	ScannedPath string       `json:"scanned_path" yaml:"scanned_path"`
	Files       []FileReport `json:"files" yaml:"files"`
	Total       TotalMetrics `json:"total" yaml:"total"`
	Errors      []ScanError  `json:"errors" yaml:"errors"`
}

// Err 把全部单文件错误合并成一个 error，没有错误时返回 nil。
func (r ScanResult) Err() error {
	var errs error
	for _, item := range r.Errors {
		errs = multierr.Append(errs, fmt.Errorf("%s: %s", item.Path, item.Error))
	}
	return errs
}
