package ltemplate

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestValue(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	type tc struct {
		in   any
		want string
	}

	tests := map[string]tc{
		"nil":     {in: nil, want: "nil"},
		"int8":    {in: int8(-3), want: "-3"},
		"uint64":  {in: uint64(7), want: "7"},
		"float32": {in: float32(0.5), want: "0.5"},
		"string":  {in: "s", want: "s"},
		"bool":    {in: false, want: "false"},
		"lua":     {in: lua.LString("raw"), want: "raw"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lv, err := Value(L, tt.in)
			if err != nil {
				t.Fatalf("Value: %v", err)
			}
			if lv.String() != tt.want {
				t.Errorf("Value(%v) = %s, want %s", tt.in, lv.String(), tt.want)
			}
		})
	}
}

func TestValue_Tables(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	lv, err := Value(L, map[string]any{"list": []any{1, "two"}})
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		t.Fatalf("Value returned %T, want *lua.LTable", lv)
	}
	list, ok := tbl.RawGetString("list").(*lua.LTable)
	if !ok {
		t.Fatal("list is not a table")
	}
	if list.Len() != 2 || list.RawGetInt(2).String() != "two" {
		t.Errorf("list = %v", list)
	}

	if _, err := Value(L, map[string]any{"bad": []any{make(chan int)}}); err == nil {
		t.Error("nested unsupported value returned nil error")
	}
}
