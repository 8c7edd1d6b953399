package ltemplate

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Value converts a Go value into a Lua value owned by L.
//
// Supported: nil, bool, string, all integer and float types, []string, []any,
// map[string]string, map[string]any (nested values converted recursively),
// lua.LValue (passed through) and fmt.Stringer (as its string).
func Value(L *lua.LState, v any) (lua.LValue, error) {
	switch v := v.(type) {
	case nil:
		return lua.LNil, nil
	case lua.LValue:
		return v, nil
	case bool:
		return lua.LBool(v), nil
	case string:
		return lua.LString(v), nil
	case int:
		return lua.LNumber(v), nil
	case int8:
		return lua.LNumber(v), nil
	case int16:
		return lua.LNumber(v), nil
	case int32:
		return lua.LNumber(v), nil
	case int64:
		return lua.LNumber(v), nil
	case uint:
		return lua.LNumber(v), nil
	case uint8:
		return lua.LNumber(v), nil
	case uint16:
		return lua.LNumber(v), nil
	case uint32:
		return lua.LNumber(v), nil
	case uint64:
		return lua.LNumber(v), nil
	case float32:
		return lua.LNumber(v), nil
	case float64:
		return lua.LNumber(v), nil
	case []string:
		tbl := L.CreateTable(len(v), 0)
		for _, s := range v {
			tbl.Append(lua.LString(s))
		}
		return tbl, nil
	case []any:
		tbl := L.CreateTable(len(v), 0)
		for i, item := range v {
			lv, err := Value(L, item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			tbl.RawSetInt(i+1, lv)
		}
		return tbl, nil
	case map[string]string:
		tbl := L.CreateTable(0, len(v))
		for k, s := range v {
			tbl.RawSetString(k, lua.LString(s))
		}
		return tbl, nil
	case map[string]any:
		tbl := L.CreateTable(0, len(v))
		for k, item := range v {
			lv, err := Value(L, item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			tbl.RawSetString(k, lv)
		}
		return tbl, nil
	case fmt.Stringer:
		return lua.LString(v.String()), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
