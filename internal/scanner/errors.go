package scanner

import (
	"bytes"
	"fmt"
	"strings"
)

// Position is a location in template source.
type Position struct {
	File   string
	Line   int // 1-based
	Column int // 1-based, in bytes
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// positionOf converts a byte offset in src into a Position.
func positionOf(file string, src []byte, offset int) Position {
	head := src[:offset]
	return Position{
		File:   file,
		Line:   bytes.Count(head, []byte{'\n'}) + 1,
		Column: offset - bytes.LastIndexByte(head, '\n'),
	}
}

// Kind classifies a strict-mode error.
type Kind int

const (
	UnterminatedExpression Kind = iota + 1
	UnterminatedStatement
	UnterminatedString
)

// String returns the message used for errors of this kind.
func (k Kind) String() string {
	switch k {
	case UnterminatedExpression:
		return "unterminated expression"
	case UnterminatedStatement:
		return "unterminated statement"
	case UnterminatedString:
		return "unterminated string literal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) hint() string {
	switch k {
	case UnterminatedExpression:
		return "missing }}"
	case UnterminatedStatement:
		return "missing %}"
	default:
		return "missing closing quote"
	}
}

// Error is an unterminated construct reported by a strict Scanner.
type Error struct {
	Pos     Position // where the construct was opened
	Kind    Kind
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// ErrorList collects the errors of one scan.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 1 {
		return el.errors[0].Error()
	}
	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}
