package scanner

import "fmt"

// Mode is the state of a Scanner between two calls to Next.
type Mode int

const (
	Begin         Mode = iota // between blocks, nothing pending
	Text                      // inside literal text
	TextEnd                   // literal text emitted, raw string not yet closed
	Expression                // inside {{ }}
	ExpressionEnd             // expression body emitted, call not yet closed
	Statement                 // inside {% %}
	StatementEnd              // statement body emitted, close marker pending
	String                    // inside a quoted string within a block
)

var modeNames = map[Mode]string{
	Begin:         "Begin",
	Text:          "Text",
	TextEnd:       "TextEnd",
	Expression:    "Expression",
	ExpressionEnd: "ExpressionEnd",
	Statement:     "Statement",
	StatementEnd:  "StatementEnd",
	String:        "String",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
