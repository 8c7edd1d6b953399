package ltemplate

import (
	"bytes"
	"context"
	"fmt"
	"io"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/grindlemire/ltemplate/internal/debug"
	"github.com/grindlemire/ltemplate/internal/scanner"
)

// Names of the runtime functions the generated chunk calls.
const (
	writeText  = "_s"
	writeValue = "_e"
)

// Translate returns the Lua chunk generated for src.
func Translate(src []byte) []byte {
	out, _ := scanner.Translate("", src)
	return out
}

// Template is a compiled template. It is safe for concurrent use.
type Template struct {
	name   string
	source []byte
	proto  *lua.FunctionProto
	cfg    config
}

// Compile translates and compiles a template. The name appears in error
// messages. src is not retained.
func Compile(name string, src []byte, opts ...Option) (*Template, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var scanOpts []scanner.Option
	if cfg.strict {
		scanOpts = append(scanOpts, scanner.WithStrict())
	}
	s := scanner.New(name, src, scanOpts...)

	var generated bytes.Buffer
	r := io.TeeReader(scanner.NewReader(&keepNewline{s: s}), &generated)
	chunk, parseErr := parse.Parse(r, name)
	// The parser stops at its first error; finish the scan so strict errors
	// and the generated source are complete.
	io.Copy(io.Discard, r)

	if err := s.Err(); err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, parseErr)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}

	debug.Log("compiled %s: %d template bytes -> %d lua bytes", name, len(src), generated.Len())
	return &Template{
		name:   name,
		source: generated.Bytes(),
		proto:  proto,
		cfg:    cfg,
	}, nil
}

// Name returns the name the template was compiled with.
func (t *Template) Name() string {
	return t.name
}

// Source returns the Lua chunk as compiled. It differs from [Translate] only
// by the newline after every "_s([[" opener. The caller must not modify it.
func (t *Template) Source() []byte {
	return t.source
}

// Execute runs the template, writing its output to w. Each entry of vars
// becomes a Lua global; see [Value] for the supported types. Cancelling ctx
// aborts a running template.
func (t *Template) Execute(ctx context.Context, w io.Writer, vars map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for name := range vars {
		if name == writeText || name == writeValue {
			return fmt.Errorf("variable %q collides with a template runtime function", name)
		}
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: !t.cfg.openLibs})
	defer L.Close()
	L.SetContext(ctx)

	for name, v := range vars {
		lv, err := Value(L, v)
		if err != nil {
			return fmt.Errorf("variable %q: %w", name, err)
		}
		L.SetGlobal(name, lv)
	}

	out := &output{w: w}
	L.SetGlobal(writeText, L.NewFunction(out.text))
	L.SetGlobal(writeValue, L.NewFunction(out.value))

	L.Push(L.NewFunctionFromProto(t.proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if out.err != nil {
			return fmt.Errorf("writing %s: %w", t.name, out.err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("executing %s: %w", t.name, ctxErr)
		}
		return fmt.Errorf("executing %s: %w", t.name, err)
	}
	return nil
}

// keepNewline inserts a newline after every raw string opener. Lua drops the
// first newline of a long bracket string, so text starting with a line break
// would otherwise lose it.
type keepNewline struct {
	s       *scanner.Scanner
	pending bool
}

var longStringNewline = []byte("\n")

func (k *keepNewline) Next() ([]byte, bool) {
	if k.pending {
		k.pending = false
		return longStringNewline, true
	}
	frag, ok := k.s.Next()
	// A raw string was just opened iff the scanner now scans text.
	k.pending = ok && k.s.Mode() == scanner.Text
	return frag, ok
}

// output implements the runtime functions over a writer.
type output struct {
	w   io.Writer
	err error // first write error
}

// text implements _s(str).
func (o *output) text(L *lua.LState) int {
	o.write(L, L.CheckString(1))
	return 0
}

// value implements _e(v): tostring(v), with nil writing nothing.
func (o *output) value(L *lua.LState) int {
	v := L.Get(1)
	if v == lua.LNil {
		return 0
	}
	o.write(L, L.ToStringMeta(v).String())
	return 0
}

func (o *output) write(L *lua.LState, s string) {
	if _, err := io.WriteString(o.w, s); err != nil {
		o.err = err
		L.RaiseError("write failed: %v", err)
	}
}
