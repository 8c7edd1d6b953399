package scanner

import "bytes"

var (
	expressionOpen  = []byte("{{")
	expressionClose = []byte("}}")
	statementOpen   = []byte("{%")
	trimOpen        = []byte("{%-")
	statementClose  = []byte("%}")
	trimClose       = []byte("-%}")
)

// Every matcher tests src at offset i only and returns the length of the
// match, or 0 when there is none. No delimiter is empty, so 0 is unambiguous.

func matchExpressionOpen(src []byte, i int) int {
	if bytes.HasPrefix(src[i:], expressionOpen) {
		return len(expressionOpen)
	}
	return 0
}

func matchExpressionClose(src []byte, i int) int {
	if bytes.HasPrefix(src[i:], expressionClose) {
		return len(expressionClose)
	}
	return 0
}

// matchStatementOpen matches "{%" or "{%-", or a trimmed opener: a newline
// followed by blanks and "{%-". At the very start of the input the newline is
// implied, so leading blanks before "{%-" are eaten as well.
func matchStatementOpen(src []byte, i int) int {
	rest := src[i:]
	if bytes.HasPrefix(rest, trimOpen) {
		return len(trimOpen)
	}
	if bytes.HasPrefix(rest, statementOpen) {
		return len(statementOpen)
	}

	j := 0
	switch {
	case len(rest) > 0 && rest[0] == '\n':
		j = 1
	case i != 0:
		return 0
	}
	for j < len(rest) && isBlank(rest[j]) {
		j++
	}
	if bytes.HasPrefix(rest[j:], trimOpen) {
		return j + len(trimOpen)
	}
	return 0
}

// matchStatementClose matches "-%}" plus trailing blanks and one line break,
// falling back to a bare "-%}" or "%}". The newline-eating form wins.
func matchStatementClose(src []byte, i int) int {
	rest := src[i:]
	if bytes.HasPrefix(rest, trimClose) {
		j := len(trimClose)
		for j < len(rest) && isBlank(rest[j]) {
			j++
		}
		if bytes.HasPrefix(rest[j:], []byte("\r\n")) {
			return j + 2
		}
		if j < len(rest) && rest[j] == '\n' {
			return j + 1
		}
		return len(trimClose)
	}
	if bytes.HasPrefix(rest, statementClose) {
		return len(statementClose)
	}
	return 0
}

// opensBlock reports whether an expression or statement starts at offset i.
func opensBlock(src []byte, i int) bool {
	return matchExpressionOpen(src, i) > 0 || matchStatementOpen(src, i) > 0
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
