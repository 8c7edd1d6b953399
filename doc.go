// Package ltemplate renders text templates whose logic is written in Lua.
//
// A template is literal text mixed with expressions and statements:
//
//	<ul>
//	  {%- for _, item in ipairs(items) do -%}
//	  <li>{{ item.name }}</li>
//	  {%- end -%}
//	</ul>
//
// [Compile] translates the template into a Lua chunk and compiles it once.
// [Template.Execute] runs the chunk in a fresh Lua state with the given
// variables as globals, writing literal text and expression values to an
// io.Writer. A [Loader] compiles templates from a directory and caches them.
//
// The generated chunk calls two runtime functions, _s for literal text and _e
// for expression values, so variables may not use those names.
package ltemplate
