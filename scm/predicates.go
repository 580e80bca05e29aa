/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

// boolSymbol converts a host bool into the language's #t/#f symbol.
func boolSymbol(b bool) *Value {
	if b {
		return heap.NewSymbol("#t")
	}
	return heap.NewSymbol("#f")
}

func declareBooleansAndPredicates(env *Value) {
	DeclareTitle("Booleans & predicates")

	envDefine(env, "#t", heap.NewSymbol("#t"))
	envDefine(env, "#f", heap.NewSymbol("#f"))

	DeclareProc(env, &Declaration{
		Name: "not", Desc: "Returns #t if the argument is false, else #f.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(!isTrue(a[0])) },
	})
	DeclareProc(env, &Declaration{
		Name: "null?", Desc: "Returns #t if the argument is the empty list.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(a[0] == nil) },
	})
	DeclareProc(env, &Declaration{
		Name: "pair?", Desc: "Returns #t if the argument is a Cell.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(a[0] != nil && a[0].kind == KindCell) },
	})
	DeclareProc(env, &Declaration{
		Name: "list?", Desc: "Returns #t if the argument is () or a proper list.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(isProperList(a[0])) },
	})
	DeclareProc(env, &Declaration{
		Name: "number?", Desc: "Returns #t if the argument is a Number.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(a[0] != nil && a[0].kind == KindNumber) },
	})
	DeclareProc(env, &Declaration{
		Name: "symbol?", Desc: "Returns #t if the argument is a Symbol.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value { return boolSymbol(a[0] != nil && a[0].kind == KindSymbol) },
	})
	DeclareProc(env, &Declaration{
		Name: "boolean?", Desc: "Returns #t if the argument is the symbol #t or #f.",
		MinParameter: 1, MaxParameter: 1, Returns: "bool",
		Fn: func(a []*Value) *Value {
			v := a[0]
			return boolSymbol(v != nil && v.kind == KindSymbol && (v.symbol == "#t" || v.symbol == "#f"))
		},
	})
}
