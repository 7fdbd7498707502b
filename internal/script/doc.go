// Package script runs Lua scripts against the ustr string API.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table, string
// and math libraries are opened, file loading functions are removed, and
// require resolves nothing but those libraries and the ustr module.
//
//	local ustr = require("ustr")
//	for _, word in ipairs(ustr.split("a,b,,c", ",", true)) do
//	    print(ustr.upper(word))
//	end
//
// The ustr module is also available as a global.
//
// # Limits
//
// Every ustr call charges the instruction budget with the number of input
// bytes it processes. A script that exhausts the budget fails with
// ErrInstructionLimit. Pure Lua loops are bounded by the execution timeout,
// which fails with ErrExecutionTimeout.
//
// # Positions
//
// Positions are 1-based codepoint indices, as in Lua's own string library
// but counted in codepoints rather than bytes.
package script
