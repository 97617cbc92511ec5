package lexer

import "strings"

// LineCounter 驱动状态机逐行扫描，并累计逻辑行数。
//
// 零值即可使用，初始状态为 NewLine。状态在多次 Process 调用之间保留，
// 一个 LineCounter 只应服务于一个文件。
type LineCounter struct {
	state State
	total int
}

// Process 把一整行（通常包含行尾换行符）送入状态机，
// 返回该行是否计为一个逻辑行。
func (c *LineCounter) Process(line string) bool {
	for _, ch := range normalizeLine(line) {
		c.state = Next(c.state, ch)
	}

	if c.state == NewLineNoCount {
		// 不计数的行在行尾复位，下一行从 NewLine 重新开始。
		c.state = NewLine
		return false
	}

	if c.state != NewLine {
		return false
	}
	c.total++
	return true
}

// State 返回处理完最近一行后的状态。
func (c *LineCounter) State() State {
	return c.state
}

// Total 返回目前为止累计的逻辑行数。
func (c *LineCounter) Total() int {
	return c.total
}

// normalizeLine 把 Windows 的 \r\n 行尾统一成 \n。
func normalizeLine(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}
