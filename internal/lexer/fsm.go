package lexer

import "unicode"

// Next 根据当前状态和输入字符计算下一个状态。
//
// Next 是纯函数，对任意 (state, ch) 组合都有定义；未定义的状态值
// 会被重置为 NewLine，因此状态机不存在“卡死”的情况。
func Next(state State, ch rune) State {
	switch state {
	case NewLine:
		return nextNewLine(ch)
	case NewLineNoCount:
		// 本行已判定为不计数，等待调用方在行尾重置。
		return NewLineNoCount
	case PossibleComment:
		return nextPossibleComment(ch)
	case LineComment:
		if ch == '\n' {
			return NewLineNoCount
		}
		return LineComment
	case BlockComment:
		if ch == '*' {
			return PossibleBlockCommentEnd
		}
		return BlockComment
	case PossibleBlockCommentEnd:
		return nextPossibleBlockCommentEnd(ch)
	case BlockCommentEnded:
		return NewLineNoCount
	case CompilerDirective:
		if ch == '\n' {
			return NewLine
		}
		return CompilerDirective
	case CodeToken:
		return nextCodeToken(ch)
	case OpenBrace:
		return nextOpenBrace(ch)
	case CloseBraceSeen1:
		if ch == '\n' {
			return NewLineNoCount
		}
		return CloseBraceSeen2
	case CloseBraceSeen2:
		if ch == ';' {
			return PossibleStatementEnd
		}
		return CodeToken
	case PossibleStatementEnd:
		return nextPossibleStatementEnd(ch)
	case InlineCommentStart:
		if ch == '\n' {
			return NewLine
		}
		return InlineCommentStart
	default:
		return NewLine
	}
}

func nextNewLine(ch rune) State {
	if ch == '\n' {
		return NewLineNoCount
	}
	if isBlank(ch) {
		return NewLine
	}

	switch ch {
	case '/':
		return PossibleComment
	case '#':
		return CompilerDirective
	case '{':
		return OpenBrace
	case '}':
		return CloseBraceSeen1
	default:
		return CodeToken
	}
}

// nextPossibleComment 处理行首 '/' 之后的字符。
// 单独的 '/' 会让整行不计数，这是沿用下来的已知限制。
func nextPossibleComment(ch rune) State {
	switch ch {
	case '/':
		return LineComment
	case '*':
		return BlockComment
	default:
		return NewLineNoCount
	}
}

func nextPossibleBlockCommentEnd(ch rune) State {
	switch ch {
	case '/':
		return BlockCommentEnded
	case '*':
		return PossibleBlockCommentEnd
	default:
		return BlockComment
	}
}

func nextCodeToken(ch rune) State {
	switch ch {
	case '}':
		return CloseBraceSeen2
	case '{', ';':
		return PossibleStatementEnd
	default:
		return CodeToken
	}
}

func nextOpenBrace(ch rune) State {
	switch ch {
	case '\n':
		return NewLine
	case '}':
		return CloseBraceSeen2
	default:
		return CodeToken
	}
}

func nextPossibleStatementEnd(ch rune) State {
	switch {
	case ch == '\n':
		return NewLine
	case isBlank(ch):
		return PossibleStatementEnd
	case ch == '/':
		return InlineCommentStart
	default:
		return CodeToken
	}
}

// isBlank 判断换行符以外的空白字符。
func isBlank(ch rune) bool {
	return ch != '\n' && unicode.IsSpace(ch)
}
