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

// emptyQuote is the canonical (quote ()) form, returned by a false `if`
// with no alternative so printing the result yields "()".
func emptyQuote() *Value {
	return heap.NewCell(heap.NewSymbol("quote"), heap.NewCell(nil, nil))
}

func declareControl(env *Value) {
	DeclareTitle("Control")

	DeclareSyntax(env, "quote", "Returns its argument unevaluated.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSize(1)
			return a.at(0)
		})

	DeclareTailSyntax(env, "if", "(if pred conseq [alt]): evaluates pred, returns conseq or alt unevaluated.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSizeAtLeast(2)
			if len(a.items) > 3 {
				throwSyntax("if: expected 2 or 3 arguments")
			}
			if isTrue(a.eval(0)) {
				return a.at(1)
			}
			if len(a.items) == 3 {
				return a.at(2)
			}
			return emptyQuote()
		})

	DeclareTailSyntax(env, "begin", "(begin e1 e2 ...): evaluates all but the last, returns the last unevaluated.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSizeAtLeast(1)
			for i := 0; i < len(a.items)-1; i++ {
				a.eval(i)
			}
			return a.at(len(a.items) - 1)
		})

	// and/or return the short-circuiting value directly, already
	// evaluated, just like the last (unevaluated) argument in the
	// non-short-circuit case — both paths flow through the same
	// call_until_tail -> Eval re-entry. Since #t/#f are bound to
	// themselves in the root environment, re-evaluating a returned
	// boolean symbol is a no-op; returning some other already-evaluated
	// datum (say a pair produced upstream) and having it re-enter Eval
	// is an inherited quirk of the original, not introduced here.
	DeclareTailSyntax(env, "and", "(and e1 ...): #t with no args; else left-to-right, short-circuits on first false.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			if len(a.items) == 0 {
				return heap.NewSymbol("#t")
			}
			for i := 0; i < len(a.items)-1; i++ {
				v := a.eval(i)
				if !isTrue(v) {
					return v
				}
			}
			return a.at(len(a.items) - 1)
		})

	DeclareTailSyntax(env, "or", "(or e1 ...): #f with no args; else left-to-right, short-circuits on first true.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			if len(a.items) == 0 {
				return heap.NewSymbol("#f")
			}
			for i := 0; i < len(a.items)-1; i++ {
				v := a.eval(i)
				if isTrue(v) {
					return v
				}
			}
			return a.at(len(a.items) - 1)
		})
}
