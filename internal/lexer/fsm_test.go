package lexer

import "testing"

// representativeRunes 覆盖状态机区分的每一类字符。
var representativeRunes = []rune{'\n', ' ', '\t', '\r', '/', '*', '#', '{', '}', ';', 'a', '_', '0', '"', 'é'}

// TestNextIsTotal 验证任意 (状态, 字符) 组合都落到合法状态。
func TestNextIsTotal(t *testing.T) {
	for _, state := range AllStates() {
		for _, ch := range representativeRunes {
			next := Next(state, ch)
			if !next.Valid() {
				t.Fatalf("Next(%s, %q) = %d, not a defined state", state, ch, int(next))
			}
		}
	}
}

// TestNextTransitions 逐条核对转移表。
func TestNextTransitions(t *testing.T) {
	tests := []struct {
		from State
		ch   rune
		want State
	}{
		{NewLine, '\n', NewLineNoCount},
		{NewLine, ' ', NewLine},
		{NewLine, '\t', NewLine},
		{NewLine, '/', PossibleComment},
		{NewLine, '#', CompilerDirective},
		{NewLine, '{', OpenBrace},
		{NewLine, '}', CloseBraceSeen1},
		{NewLine, 'i', CodeToken},

		{NewLineNoCount, '\n', NewLineNoCount},
		{NewLineNoCount, 'x', NewLineNoCount},

		{PossibleComment, '/', LineComment},
		{PossibleComment, '*', BlockComment},
		{PossibleComment, '\n', NewLineNoCount},
		{PossibleComment, 'x', NewLineNoCount},

		{LineComment, '\n', NewLineNoCount},
		{LineComment, '*', LineComment},

		{BlockComment, '*', PossibleBlockCommentEnd},
		{BlockComment, '\n', BlockComment},
		{BlockComment, '/', BlockComment},

		{PossibleBlockCommentEnd, '/', BlockCommentEnded},
		{PossibleBlockCommentEnd, '*', PossibleBlockCommentEnd},
		{PossibleBlockCommentEnd, 'x', BlockComment},
		{PossibleBlockCommentEnd, '\n', BlockComment},

		{BlockCommentEnded, '\n', NewLineNoCount},
		{BlockCommentEnded, 'x', NewLineNoCount},

		{CompilerDirective, '\n', NewLine},
		{CompilerDirective, ';', CompilerDirective},

		{CodeToken, '}', CloseBraceSeen2},
		{CodeToken, '{', PossibleStatementEnd},
		{CodeToken, ';', PossibleStatementEnd},
		{CodeToken, '\n', CodeToken},
		{CodeToken, 'x', CodeToken},

		{OpenBrace, '\n', NewLine},
		{OpenBrace, '}', CloseBraceSeen2},
		{OpenBrace, ' ', CodeToken},

		{CloseBraceSeen1, '\n', NewLineNoCount},
		{CloseBraceSeen1, ' ', CloseBraceSeen2},

		{CloseBraceSeen2, ';', PossibleStatementEnd},
		{CloseBraceSeen2, '\n', CodeToken},

		{PossibleStatementEnd, '\n', NewLine},
		{PossibleStatementEnd, ' ', PossibleStatementEnd},
		{PossibleStatementEnd, '\t', PossibleStatementEnd},
		{PossibleStatementEnd, '/', InlineCommentStart},
		{PossibleStatementEnd, 'x', CodeToken},

		{InlineCommentStart, '\n', NewLine},
		{InlineCommentStart, '*', InlineCommentStart},
	}

	for _, tc := range tests {
		if got := Next(tc.from, tc.ch); got != tc.want {
			t.Errorf("Next(%s, %q) = %s, want %s", tc.from, tc.ch, got, tc.want)
		}
	}
}

// TestNextUnknownStateResets 验证非法状态值会被重置。
func TestNextUnknownStateResets(t *testing.T) {
	if got := Next(State(99), 'x'); got != NewLine {
		t.Fatalf("expected NewLine for unknown state, got %s", got)
	}
	if got := State(-1).String(); got != "State(invalid)" {
		t.Fatalf("unexpected name for invalid state: %s", got)
	}
}

func TestAllStates(t *testing.T) {
	states := AllStates()
	if len(states) != 14 {
		t.Fatalf("expected 14 states, got %d", len(states))
	}
	seen := make(map[string]bool)
	for _, s := range states {
		if seen[s.String()] {
			t.Fatalf("duplicate state name %s", s)
		}
		seen[s.String()] = true
	}
}
