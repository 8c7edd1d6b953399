// Package scanner translates template source into Lua source, one fragment at a time.
//
// A template mixes literal text with two kinds of blocks:
//
//	{{ expr }}    an expression whose value is written to the output
//	{% stmt %}    a Lua statement copied through as-is
//
// Statement markers accept a trim marker. "{%-" at the start of a line eats the
// line's indentation and the newline before it; "-%}" eats trailing blanks and
// the newline after it.
//
// The [Scanner] is pull based. Each call to [Scanner.Next] performs one mode
// transition and returns either a static marker (such as "_s([[" or "_e("), or a
// slice borrowed from the input. Concatenating every fragment yields a Lua chunk
// that calls _s for literal text and _e for expression values. [Reader] adapts a
// Scanner to io.Reader so the chunk can be streamed straight into a Lua compiler.
//
// The scanner never fails. Unterminated blocks and strings run to the end of the
// input and are left for the Lua compiler to reject. [WithStrict] records them as
// [Error] values instead, available from [Scanner.Err].
package scanner
