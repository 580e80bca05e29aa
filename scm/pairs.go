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

func mustCell(v *Value) *Value {
	if v == nil || v.kind != KindCell {
		throwRuntime("expected a pair, got " + String(v))
	}
	return v
}

func declarePairsAndLists(env *Value) {
	DeclareTitle("Pair & list")

	DeclareProc(env, &Declaration{
		Name: "cons", Desc: "Constructs a new pair.",
		MinParameter: 2, MaxParameter: 2, Returns: "pair",
		Fn: func(a []*Value) *Value { return heap.NewCell(a[0], a[1]) },
	})
	DeclareProc(env, &Declaration{
		Name: "car", Desc: "Returns the first element of a pair.",
		MinParameter: 1, MaxParameter: 1, Returns: "any",
		Fn: func(a []*Value) *Value { return mustCell(a[0]).first },
	})
	DeclareProc(env, &Declaration{
		Name: "cdr", Desc: "Returns the second element of a pair.",
		MinParameter: 1, MaxParameter: 1, Returns: "any",
		Fn: func(a []*Value) *Value { return mustCell(a[0]).second },
	})
	DeclareProc(env, &Declaration{
		Name: "list", Desc: "Builds a right-nested cell chain of its arguments.",
		MinParameter: 0, MaxParameter: -1, Returns: "list",
		Fn: func(a []*Value) *Value {
			var out *Value
			for i := len(a) - 1; i >= 0; i-- {
				out = heap.NewCell(a[i], out)
			}
			return out
		},
	})
	DeclareProc(env, &Declaration{
		Name: "set-car!", Desc: "Mutates the first element of a pair in place; returns ().",
		MinParameter: 2, MaxParameter: 2, Returns: "nil",
		Fn: func(a []*Value) *Value {
			mustCell(a[0]).first = a[1]
			return nil
		},
	})
	DeclareProc(env, &Declaration{
		Name: "set-cdr!", Desc: "Mutates the second element of a pair in place; returns ().",
		MinParameter: 2, MaxParameter: 2, Returns: "nil",
		Fn: func(a []*Value) *Value {
			mustCell(a[0]).second = a[1]
			return nil
		},
	})

	DeclareTitle("List access")

	// list-ref and list-tail are syntax, not procedures, because the
	// original walks their raw (unevaluated) argument cell with an
	// ArgList rather than the ordinary evaluate-every-argument path —
	// grounded on original_source/scheme/src/scheme.cpp.
	DeclareSyntax(env, "list-ref", "(list-ref lst k): the k-th element of lst (0-indexed).",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSize(2)
			lst := a.eval(0)
			k := mustNumber(a.eval(1))
			for i := int64(0); i < k; i++ {
				lst = mustCell(lst).second
			}
			return mustCell(lst).first
		})
	DeclareSyntax(env, "list-tail", "(list-tail lst k): drops k elements, returning the rest.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSize(2)
			lst := a.eval(0)
			k := mustNumber(a.eval(1))
			// k=0 still performs one cdr, matching the original's loop
			// shape (while (--value) ...; return list->GetSecond();).
			if k == 0 {
				return mustCell(lst).second
			}
			for i := int64(0); i < k; i++ {
				lst = mustCell(lst).second
			}
			return lst
		})
}
