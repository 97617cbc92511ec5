// Package analyzer 把逻辑行状态机和函数识别状态机串联起来，
// 对单个源文件做流式分析。
package analyzer

import (
	"bufio"
	"errors"
	"io"

	"fnloc/internal/function"
	"fnloc/internal/lexer"
	"fnloc/internal/model"
)

// Analyzer 保存单个文件扫描过程中的全部状态。
// 每次分析都应使用新的 Analyzer，不同 Analyzer 之间互不影响。
type Analyzer struct {
	lines     lexer.LineCounter
	tracker   function.Tracker
	registry  function.Registry
	physical  int
	bytesRead int64
}

// New 创建一个处于初始状态的 Analyzer。
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze 使用新的 Analyzer 分析 reader 中的全部内容。
func Analyze(reader io.Reader) (model.FileReport, error) {
	return New().Run(reader)
}

// Run 逐行读取输入流并返回统计结果。
func (a *Analyzer) Run(reader io.Reader) (model.FileReport, error) {
	// 按行流式读取，避免大文件造成内存压力。
	bufferedReader := bufio.NewReader(reader)

	for {
		line, err := bufferedReader.ReadString('\n')
		// 没有残留字符的 EOF 说明读取完成。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return a.Report(), err
		}

		a.ProcessLine(line)

		// 最后一行即使没有换行，也已完成处理。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return a.Report(), nil
}

// ProcessLine 处理一个物理行，返回该行是否计为逻辑行。
func (a *Analyzer) ProcessLine(line string) bool {
	a.physical++
	a.bytesRead += int64(len(line))

	counted := a.lines.Process(line)
	if record, ok := a.tracker.Observe(line, counted); ok {
		a.registry.Append(record)
	}
	return counted
}

// Report 返回当前累计的统计结果。
func (a *Analyzer) Report() model.FileReport {
	total := a.lines.Total()
	functionLines := a.tracker.Lines()

	return model.FileReport{
		Bytes:            a.bytesRead,
		PhysicalLines:    a.physical,
		LogicalLines:     total,
		FunctionCount:    a.tracker.Count(),
		FunctionLines:    functionLines,
		NonFunctionLines: total - functionLines,
		Functions:        a.registry.Records(),
	}
}
