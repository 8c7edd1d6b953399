package scanner

import (
	"bytes"
	"io"
)

// Fragments is a pull source of output fragments. *Scanner implements it.
type Fragments interface {
	Next() ([]byte, bool)
}

// Reader streams fragments as an io.Reader, the shape Lua compilers pull
// chunk source through.
type Reader struct {
	s    Fragments
	frag []byte // unread remainder of the current fragment
}

// NewReader returns a Reader draining s.
func NewReader(s Fragments) *Reader {
	return &Reader{s: s}
}

// Read implements io.Reader. It fills p across fragment boundaries and returns
// io.EOF once the scanner is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.frag) == 0 {
			frag, ok := r.s.Next()
			if !ok {
				if n == 0 {
					return 0, io.EOF
				}
				break
			}
			r.frag = frag
		}
		c := copy(p[n:], r.frag)
		r.frag = r.frag[c:]
		n += c
	}
	return n, nil
}

// WriteTo implements io.WriterTo, writing each fragment without buffering.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		if len(r.frag) == 0 {
			frag, ok := r.s.Next()
			if !ok {
				return total, nil
			}
			r.frag = frag
		}
		n, err := w.Write(r.frag)
		total += int64(n)
		r.frag = r.frag[n:]
		if err != nil {
			return total, err
		}
	}
}

// Translate returns the complete Lua source for a template. The error is
// non-nil only for strict scans that found unterminated constructs; the
// source is returned regardless.
func Translate(name string, src []byte, opts ...Option) ([]byte, error) {
	s := New(name, src, opts...)
	var buf bytes.Buffer
	buf.Grow(len(src) + len(src)/4 + 16)
	NewReader(s).WriteTo(&buf)
	return buf.Bytes(), s.Err()
}
