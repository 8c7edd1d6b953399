package scanner

import "testing"

func TestMatchStatementOpen(t *testing.T) {
	type tc struct {
		src    string
		offset int
		want   int
	}

	tests := map[string]tc{
		"plain":                   {src: "{% x", want: 2},
		"trim":                    {src: "{%- x", want: 3},
		"expression":              {src: "{{ x", want: 0},
		"text":                    {src: "abc", want: 0},
		"empty":                   {src: "", want: 0},
		"newline trim":            {src: "\n{%- x", want: 4},
		"newline blanks trim":     {src: "\n \t {%- x", want: 7},
		"newline plain":           {src: "\n  {% x", want: 0},
		"newline text":            {src: "\n  x", want: 0},
		"leading blanks at start": {src: "   {%- x", want: 6},
		"leading blanks plain":    {src: "   {% x", want: 0},
		"blanks mid input":        {src: "a  {%- x", offset: 1, want: 0},
		"at offset":               {src: "ab{% x", offset: 2, want: 2},
		"newline at offset":       {src: "ab\n {%-", offset: 2, want: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := matchStatementOpen([]byte(tt.src), tt.offset); got != tt.want {
				t.Errorf("matchStatementOpen(%q, %d) = %d, want %d", tt.src, tt.offset, got, tt.want)
			}
		})
	}
}

func TestMatchStatementClose(t *testing.T) {
	type tc struct {
		src  string
		want int
	}

	tests := map[string]tc{
		"plain":                {src: "%} x", want: 2},
		"trim":                 {src: "-%}x", want: 3},
		"trim newline":         {src: "-%}\nx", want: 4},
		"trim blanks newline":  {src: "-%}  \t\nx", want: 7},
		"trim crlf":            {src: "-%}\r\nx", want: 5},
		"trim blanks no break": {src: "-%}   x", want: 3},
		"trim lone cr":         {src: "-%}\rx", want: 3},
		"trim at end":          {src: "-%}", want: 3},
		"dash only":            {src: "-%", want: 0},
		"expression close":     {src: "}}", want: 0},
		"empty":                {src: "", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := matchStatementClose([]byte(tt.src), 0); got != tt.want {
				t.Errorf("matchStatementClose(%q) = %d, want %d", tt.src, got, tt.want)
			}
		})
	}
}

func TestMatchExpression(t *testing.T) {
	src := []byte("a{{b}}")
	if got := matchExpressionOpen(src, 1); got != 2 {
		t.Errorf("matchExpressionOpen at 1 = %d, want 2", got)
	}
	if got := matchExpressionOpen(src, 0); got != 0 {
		t.Errorf("matchExpressionOpen at 0 = %d, want 0", got)
	}
	if got := matchExpressionClose(src, 4); got != 2 {
		t.Errorf("matchExpressionClose at 4 = %d, want 2", got)
	}
	if got := matchExpressionClose(src, 5); got != 0 {
		t.Errorf("matchExpressionClose at 5 = %d, want 0", got)
	}
	if got := matchExpressionClose(src, len(src)); got != 0 {
		t.Errorf("matchExpressionClose at end = %d, want 0", got)
	}
}
