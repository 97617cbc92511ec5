// Package report 提供 fnloc 的输出能力。
// 单文件命令输出固定格式的文本报告；scan 命令支持 table、JSON（含文件导出）
// 和 YAML 三种格式。
package report

import (
	"fmt"
	"io"

	"fnloc/internal/model"
)

// Banner 是文本报告顶部的标题信息。
type Banner struct {
	Title   string
	Version string
}

const licenseLine = "Licensed under the GNU General Public License, version 2"

// textWriter 记录第一次写入错误，后续写入直接跳过。
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) banner(b Banner) {
	t.printf("\n%s %s\n", b.Title, b.Version)
	t.printf("%s\n\n", licenseLine)
}

// PrintFunctions 输出按函数划分的逻辑行报告。
//
// 没有函数时只输出总逻辑行数；否则先按文件顺序列出每个函数的
// 函数头和行数，再输出汇总信息。
func PrintFunctions(writer io.Writer, banner Banner, source string, report model.FileReport) error {
	out := &textWriter{w: writer}

	out.banner(banner)
	out.printf("Lines of code data for %s\n\n", source)

	if report.FunctionCount == 0 {
		out.printf("%s does not contain function code.\n\n", source)
		out.printf("Total Program LOC:   %4d\n\n", report.LogicalLines)
		return out.err
	}

	out.printf("Functions:\n")
	for _, record := range report.Functions {
		out.printf("%s\n", record.Header)
		if record.Continuation != "" {
			out.printf("%s\n", record.Continuation)
		}
		out.printf("LOC:\t%4d\n", record.Lines)
	}

	out.printf("\nSummary:\n")
	out.printf("Number of functions: %4d\n", report.FunctionCount)
	out.printf("Function LOC:        %4d\n", report.FunctionLines)
	out.printf("Non-function LOC:    %4d\n", report.NonFunctionLines)
	out.printf("Total Program LOC:   %4d\n\n", report.LogicalLines)
	return out.err
}

// PrintLogical 输出只包含逻辑行总数的报告。
func PrintLogical(writer io.Writer, banner Banner, source string, report model.FileReport) error {
	out := &textWriter{w: writer}

	out.banner(banner)
	out.printf("Lines of code for %s:\t%d\n\n", source, report.LogicalLines)
	return out.err
}
