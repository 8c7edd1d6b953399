package scanner

import "bytes"

// Fragments emitted around pass-through text. Callers must not modify them.
var (
	markExpression    = []byte("_e(")
	markExpressionEnd = []byte(")")
	markStatement     = []byte(" ")
	markStatementEnd  = []byte(" ")
	markText          = []byte("_s([[")
	markTextEnd       = []byte("]])")
)

// Option configures a Scanner.
type Option func(*Scanner)

// WithStrict makes the scanner record unterminated expressions, statements and
// strings as errors. The emitted fragments are the same either way.
func WithStrict() Option {
	return func(s *Scanner) {
		s.strict = true
	}
}

// Scanner converts template source into Lua source fragments.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	name string
	src  []byte // full input, never modified
	pos  int    // cursor into src; only moves forward

	mode  Mode
	from  Mode // mode to resume when the current String ends
	quote byte // quote character that opened the current String
	open  int  // offset of the marker that opened the current block

	strict bool
	errors *ErrorList
}

// New creates a Scanner over src. The name is only used in error positions.
// Fragments returned by Next borrow from src, which must outlive them.
func New(name string, src []byte, opts ...Option) *Scanner {
	s := &Scanner{
		name:   name,
		src:    src,
		mode:   Begin,
		errors: NewErrorList(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the mode the next call to Next will run in.
func (s *Scanner) Mode() Mode {
	return s.mode
}

// ReturnMode returns the mode a String resumes once it ends. It is only
// meaningful while Mode is String.
func (s *Scanner) ReturnMode() Mode {
	return s.from
}

// Offset returns the number of input bytes consumed so far.
func (s *Scanner) Offset() int {
	return s.pos
}

// Err returns the errors recorded by a strict scanner, or nil.
func (s *Scanner) Err() error {
	return s.errors.Err()
}

// Next returns the next fragment of Lua source. It returns false once the input
// is exhausted, and keeps returning false on every later call. A returned
// fragment is never empty.
func (s *Scanner) Next() ([]byte, bool) {
	switch s.mode {
	case Begin:
		return s.begin()
	case Text:
		return s.text()
	case TextEnd:
		s.mode = Begin
		return markTextEnd, true
	case Expression, Statement:
		return s.block()
	case ExpressionEnd, StatementEnd:
		return s.closeBlock()
	case String:
		return s.str()
	}
	return nil, false
}

func (s *Scanner) begin() ([]byte, bool) {
	if n := matchExpressionOpen(s.src, s.pos); n > 0 {
		s.open = s.pos
		s.pos += n
		s.mode = Expression
		return markExpression, true
	}
	if n := matchStatementOpen(s.src, s.pos); n > 0 {
		s.open = s.pos + bytes.Index(s.src[s.pos:s.pos+n], statementOpen)
		s.pos += n
		s.mode = Statement
		return markStatement, true
	}
	if s.pos < len(s.src) {
		s.mode = Text
		return markText, true
	}
	return nil, false
}

// text passes literal text through up to the next block. A backslash hides
// the byte after it from delimiter matching.
func (s *Scanner) text() ([]byte, bool) {
	rest := s.src[s.pos:]
	n := 0
	for ; n < len(rest) && !opensBlock(s.src, s.pos+n); n++ {
		if rest[n] == '\\' && n+1 < len(rest) {
			n++
		}
	}
	s.mode = TextEnd
	return s.consume(n), true
}

// block passes an expression or statement body through up to its close
// marker or the first quote, whichever comes first.
func (s *Scanner) block() ([]byte, bool) {
	closes, end := matchExpressionClose, ExpressionEnd
	if s.mode == Statement {
		closes, end = matchStatementClose, StatementEnd
	}

	rest := s.src[s.pos:]
	n := 0
	for ; n < len(rest) && closes(s.src, s.pos+n) == 0; n++ {
		if isQuote(rest[n]) {
			s.quote = rest[n]
			s.from = s.mode
			s.mode = String
			if n == 0 {
				return s.str()
			}
			return s.consume(n), true
		}
	}

	s.mode = end
	if n == 0 {
		// Nothing to pass through: close the block in the same step.
		return s.closeBlock()
	}
	return s.consume(n), true
}

// closeBlock consumes the close marker of the current block. The marker is
// missing only when the input ran out.
func (s *Scanner) closeBlock() ([]byte, bool) {
	closes, mark, kind := matchExpressionClose, markExpressionEnd, UnterminatedExpression
	if s.mode == StatementEnd {
		closes, mark, kind = matchStatementClose, markStatementEnd, UnterminatedStatement
	}

	if n := closes(s.src, s.pos); n > 0 {
		s.pos += n
	} else {
		s.fail(kind, s.open)
	}
	s.mode = Begin
	return mark, true
}

// str passes a quoted string through, quotes included. The cursor sits on the
// opening quote.
func (s *Scanner) str() ([]byte, bool) {
	rest := s.src[s.pos:]
	s.mode = s.from
	for n := 1; n < len(rest); n++ {
		switch rest[n] {
		case s.quote:
			return s.consume(n + 1), true
		case '\\':
			n++
		}
	}
	s.fail(UnterminatedString, s.pos)
	return s.consume(len(rest)), true
}

func (s *Scanner) consume(n int) []byte {
	frag := s.src[s.pos : s.pos+n : s.pos+n]
	s.pos += n
	return frag
}

func (s *Scanner) fail(kind Kind, offset int) {
	if !s.strict {
		return
	}
	s.errors.Add(&Error{
		Pos:     positionOf(s.name, s.src, offset),
		Kind:    kind,
		Message: kind.String(),
		Hint:    kind.hint(),
	})
}
