package script

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ustring/internal/ustr"
)

// openModule is the loader for require("ustr").
func (s *State) openModule(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"len":       s.luaLen,
		"bytelen":   s.luaByteLen,
		"hash":      s.luaHash,
		"width":     s.luaWidth,
		"upper":     s.mapper(ustr.String.ToUpper),
		"lower":     s.mapper(ustr.String.ToLower),
		"trim":      s.mapper(ustr.String.Trim),
		"reverse":   s.mapper(ustr.String.Reverse),
		"repeat":    s.luaRepeat,
		"split":     s.luaSplit,
		"join":      s.luaJoin,
		"replace":   s.luaReplace,
		"find":      s.luaFind,
		"rfind":     s.luaRFind,
		"sub":       s.luaSub,
		"equals_ic": s.luaEqualsIC,
		"int":       s.luaInt,
		"float":     s.luaFloat,
		"match":     s.luaMatch,
	})
	L.Push(mod)
	return 1
}

// str reads argument n as a String and charges for its bytes.
func (s *State) str(L *lua.LState, n int) ustr.String {
	v := L.CheckString(n)
	s.charge(L, len(v))
	return ustr.New(v)
}

func (s *State) optStr(L *lua.LState, n int) ustr.String {
	v := L.OptString(n, "")
	s.charge(L, len(v))
	return ustr.New(v)
}

func push(L *lua.LState, v ustr.String) {
	L.Push(lua.LString(v.String()))
}

func (s *State) mapper(fn func(ustr.String) ustr.String) lua.LGFunction {
	return func(L *lua.LState) int {
		push(L, fn(s.str(L, 1)))
		return 1
	}
}

func (s *State) luaLen(L *lua.LState) int {
	L.Push(lua.LNumber(s.str(L, 1).Len()))
	return 1
}

func (s *State) luaByteLen(L *lua.LState) int {
	L.Push(lua.LNumber(s.str(L, 1).ByteLen()))
	return 1
}

// luaHash returns the hash as 16 hex digits; a Lua number cannot hold
// 64 bits exactly.
func (s *State) luaHash(L *lua.LState) int {
	L.Push(lua.LString(fmt.Sprintf("%016x", s.str(L, 1).Hash())))
	return 1
}

func (s *State) luaWidth(L *lua.LState) int {
	L.Push(lua.LNumber(s.str(L, 1).DisplayWidth()))
	return 1
}

// repeat(s, count [, sep])
func (s *State) luaRepeat(L *lua.LState) int {
	v := s.str(L, 1)
	count := L.CheckInt(2)
	sep := s.optStr(L, 3)
	if count > 0 {
		size := v.ByteLen() + sep.ByteLen()
		if size > 0 && count > math.MaxInt/size {
			L.ArgError(2, "repeat count too large")
		}
		// Reject before charging so that count*size cannot wrap.
		if s.instructionLimit > 0 && int64(count) > (s.instructionLimit-s.instructions.Load())/int64(size+1) {
			s.exhaust(L)
		}
		s.charge(L, count*size)
	}
	push(L, v.Multiply(count, sep))
	return 1
}

// split(s, sep [, remove_empty]) returns an array.
func (s *State) luaSplit(L *lua.LState) int {
	v := s.str(L, 1)
	sep := s.str(L, 2)
	removeEmpty := L.OptBool(3, false)

	parts := v.Split(sep, removeEmpty)
	tbl := L.CreateTable(len(parts), 0)
	for _, p := range parts {
		tbl.Append(lua.LString(p.String()))
	}
	L.Push(tbl)
	return 1
}

// join(array [, sep])
func (s *State) luaJoin(L *lua.LState) int {
	tbl := L.CheckTable(1)
	sep := s.optStr(L, 2)

	parts := make([]ustr.String, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		v := tbl.RawGetInt(i)
		if v.Type() != lua.LTString && v.Type() != lua.LTNumber {
			L.ArgError(1, fmt.Sprintf("element %d is a %s, not a string", i, v.Type()))
			return 0
		}
		part := lua.LVAsString(v)
		s.charge(L, len(part))
		parts = append(parts, ustr.New(part))
	}
	push(L, ustr.Join(parts, sep))
	return 1
}

// replace(s, needle, replacement)
func (s *State) luaReplace(L *lua.LState) int {
	v := s.str(L, 1)
	needle := s.str(L, 2)
	repl := s.str(L, 3)
	out, err := v.Replace(needle, repl)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	push(L, out)
	return 1
}

// find(s, needle [, init]) returns the 1-based codepoint position or nil.
func (s *State) luaFind(L *lua.LState) int {
	v := s.str(L, 1)
	needle := s.str(L, 2)
	init := L.OptInt(3, 1)
	if init < 1 {
		init = 1
	}
	return pushPosition(L, v, v.FindFirst(needle, init-1))
}

// rfind(s, needle [, init]) returns the last occurrence starting at or
// after init.
func (s *State) luaRFind(L *lua.LState) int {
	v := s.str(L, 1)
	needle := s.str(L, 2)
	init := L.OptInt(3, 1)
	if init < 1 {
		init = 1
	}
	return pushPosition(L, v, v.FindLast(needle, init-1))
}

func pushPosition(L *lua.LState, v ustr.String, it ustr.Iterator) int {
	if it.Equal(v.End()) {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(it.Position() + 1))
	return 1
}

// sub(s, i [, j]) returns codepoints i through j inclusive. Negative
// indices count from the end and out of range indices are clamped, as in
// string.sub.
func (s *State) luaSub(L *lua.LState) int {
	v := s.str(L, 1)
	n := v.Len()
	i := clampIndex(L.CheckInt(2), n)
	j := clampIndex(L.OptInt(3, -1), n)
	if i < 1 {
		i = 1
	}
	if j > n {
		j = n
	}
	if i > j {
		L.Push(lua.LString(""))
		return 1
	}
	out, err := v.SubstrN(i-1, j-i+1)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	push(L, out)
	return 1
}

func clampIndex(i, n int) int {
	if i < 0 {
		return n + i + 1
	}
	return i
}

func (s *State) luaEqualsIC(L *lua.LState) int {
	L.Push(lua.LBool(s.str(L, 1).EqualsIgnoreCase(s.str(L, 2))))
	return 1
}

// int(s) returns the integer or nil and an error message.
func (s *State) luaInt(L *lua.LState) int {
	i, err := s.str(L, 1).ToInt()
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(i))
	return 1
}

// float(s) returns the number or nil and an error message.
func (s *State) luaFloat(L *lua.LState) int {
	f, err := s.str(L, 1).ToFloat()
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(f))
	return 1
}

// match(s, pattern) returns an array of the whole match and its groups,
// or nil. The pattern uses ECMAScript syntax.
func (s *State) luaMatch(L *lua.LState) int {
	v := s.str(L, 1)
	re, err := ustr.CompileRegex(s.str(L, 2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	m, ok, err := v.RegexMatch(re)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	tbl := L.CreateTable(len(m.Groups), 1)
	for _, g := range m.Groups {
		tbl.Append(lua.LString(g.String()))
	}
	tbl.RawSetString("index", lua.LNumber(m.Index+1))
	L.Push(tbl)
	return 1
}
