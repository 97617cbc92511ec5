// Package function 在逻辑行分类结果之上识别函数边界，
// 并按函数累计逻辑行数。
//
// 识别规则只看物理行的首字符：以字母开头的行被视为候选函数头，
// 首列的 '{' 打开函数体，首列的 '}' 关闭函数体。首列开始的结构体
// 等数据定义会被误判为函数，这是已知限制。
package function

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fnloc/internal/model"
)

// Phase 表示函数识别状态。
type Phase int

const (
	// NotInFunction 不在函数中。
	NotInFunction Phase = iota
	// HeaderSeen 已看到候选函数头，等待函数体。
	HeaderSeen
	// InBody 位于函数体内。
	InBody
)

// String 返回阶段名称。
func (p Phase) String() string {
	switch p {
	case NotInFunction:
		return "NotInFunction"
	case HeaderSeen:
		return "HeaderSeen"
	case InBody:
		return "InBody"
	default:
		return "Phase(invalid)"
	}
}

// Tracker 是函数边界状态机。
// 零值即可使用；一个 Tracker 只应服务于一个文件。
type Tracker struct {
	phase        Phase
	header       string
	continuation []string
	bodyLines    int

	count int
	lines int
}

// Observe 在一行完成逻辑行分类之后调用。
//
// counted 为该行是否计为逻辑行。当该行关闭了一个函数体时，
// 返回完成的 FunctionRecord 与 true。
func (t *Tracker) Observe(line string, counted bool) (model.FunctionRecord, bool) {
	first, _ := utf8.DecodeRuneInString(line)

	if isIdentifierStart(first) {
		// 新的候选函数头总是重新开始采集。
		t.phase = HeaderSeen
		t.header = trimTerminator(line)
		t.continuation = t.continuation[:0]
		t.bodyLines = 0
	}

	if t.phase == HeaderSeen {
		switch first {
		case '{':
			t.phase = InBody
			t.count++
		case ' ', '\t':
			t.continuation = append(t.continuation, trimTerminator(line))
		case '}':
			t.reset()
		}
	}

	if t.phase != InBody {
		return model.FunctionRecord{}, false
	}

	if counted {
		t.bodyLines++
		t.lines++
	}

	if first != '}' {
		return model.FunctionRecord{}, false
	}

	record := model.FunctionRecord{
		Header:       t.header,
		Continuation: strings.Join(t.continuation, "\n"),
		Lines:        t.bodyLines,
	}
	t.reset()
	return record, true
}

// Phase 返回当前所处阶段。
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Count 返回已打开的函数体数量。
// 文件在函数体中途结束时，该值会比已完成的记录数多一。
func (t *Tracker) Count() int {
	return t.count
}

// Lines 返回全部函数体内的逻辑行总数。
func (t *Tracker) Lines() int {
	return t.lines
}

func (t *Tracker) reset() {
	t.phase = NotInFunction
	t.header = ""
	t.continuation = t.continuation[:0]
	t.bodyLines = 0
}

func isIdentifierStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func trimTerminator(line string) string {
	return strings.TrimRight(line, "\r\n")
}
