// Package lexer 实现逐字符的 C/C++ 逻辑行分类状态机。
//
// 状态机只关心一行最终落在哪个状态：处理完行尾换行符后落在 NewLine
// 表示该物理行计为一个逻辑行，落在 NewLineNoCount 表示不计数。
// 状态在行与行之间持续保留，用于支持跨行的块注释和跨行语句。
package lexer

// State 表示分类状态机的当前状态。
type State int

const (
	// NewLine 行首状态，也是初始状态。
	NewLine State = iota
	// NewLineNoCount 当前行已判定为不计数，吞掉剩余字符。
	NewLineNoCount
	// PossibleComment 在行首看到 '/'。
	PossibleComment
	// LineComment 位于 // 注释中。
	LineComment
	// BlockComment 位于 /* */ 注释中，可跨行。
	BlockComment
	// PossibleBlockCommentEnd 块注释中看到 '*'。
	PossibleBlockCommentEnd
	// BlockCommentEnded 刚读到块注释结束符。
	BlockCommentEnded
	// CompilerDirective 预处理指令，例如 #include。
	CompilerDirective
	// CodeToken 正在读取一条语句。
	CodeToken
	// OpenBrace 行首看到 '{'。
	OpenBrace
	// CloseBraceSeen1 行首看到 '}'。
	CloseBraceSeen1
	// CloseBraceSeen2 语句中看到 '}'。
	CloseBraceSeen2
	// PossibleStatementEnd 读到 ';' 或 '{'，语句可能在本行结束。
	PossibleStatementEnd
	// InlineCommentStart 语句结束后出现的行尾注释。
	InlineCommentStart

	stateCount
)

var stateNames = [...]string{
	NewLine:                 "NewLine",
	NewLineNoCount:          "NewLineNoCount",
	PossibleComment:         "PossibleComment",
	LineComment:             "LineComment",
	BlockComment:            "BlockComment",
	PossibleBlockCommentEnd: "PossibleBlockCommentEnd",
	BlockCommentEnded:       "BlockCommentEnded",
	CompilerDirective:       "CompilerDirective",
	CodeToken:               "CodeToken",
	OpenBrace:               "OpenBrace",
	CloseBraceSeen1:         "CloseBraceSeen1",
	CloseBraceSeen2:         "CloseBraceSeen2",
	PossibleStatementEnd:    "PossibleStatementEnd",
	InlineCommentStart:      "InlineCommentStart",
}

// String 返回状态名称，便于日志和测试输出。
func (s State) String() string {
	if !s.Valid() {
		return "State(invalid)"
	}
	return stateNames[s]
}

// Valid 判断 s 是否为已定义的状态。
func (s State) Valid() bool {
	return s >= NewLine && s < stateCount
}

// AllStates 按定义顺序返回全部状态。
func AllStates() []State {
	states := make([]State, 0, stateCount)
	for s := NewLine; s < stateCount; s++ {
		states = append(states, s)
	}
	return states
}
