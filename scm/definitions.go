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

func mustSymbolValue(v *Value) *Value {
	if v == nil || v.kind != KindSymbol {
		throwSyntax("expected a symbol")
	}
	return v
}

// canonicalizeBody wraps a body sequence in a synthetic (begin ...)
// call so lambda/define share one evaluation path and inherit begin's
// tail-recursiveness. The returned cell shares structure with rest —
// it is never mutated afterwards, only read, so this is safe per
// spec's documented design note on shared AST storage.
func canonicalizeBody(rest *Value) *Value {
	return heap.NewCell(heap.NewSymbol("begin"), rest)
}

// buildLambda turns a formals list cell and a body-sequence cell into a
// Lambda value, the shared core of `lambda` and the procedural form of
// `define`.
func buildLambda(formalsList *Value, bodyRest *Value, closureEnv *Value) *Value {
	var formals []*Value
	for formalsList != nil {
		c := mustCell(formalsList)
		formals = append(formals, mustSymbolValue(c.first))
		formalsList = c.second
	}
	return heap.newLambda(formals, canonicalizeBody(bodyRest), closureEnv)
}

func declareDefinitions(env *Value) {
	DeclareTitle("Definitions & assignment")

	DeclareSyntax(env, "define", "(define name expr) or (define (name formals...) body...).",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSizeAtLeast(2)
			head := a.at(0)
			if head != nil && head.kind == KindCell {
				// (define (name formals...) body...)
				name := mustSymbolValue(head.first)
				lambda := buildLambda(head.second, cdrCell(rest), callEnv)
				envDefine(callEnv, name.symbol, lambda)
				return nil
			}
			name := mustSymbolValue(head)
			if len(a.items) != 2 {
				throwSyntax("define: expected exactly one value expression")
			}
			envDefine(callEnv, name.symbol, a.eval(1))
			return nil
		})

	DeclareSyntax(env, "set!", "(set! name expr): chain-assigns name to expr's value.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSize(2)
			name := mustSymbolValue(a.at(0))
			envAssign(callEnv, name.symbol, a.eval(1))
			return nil
		})

	DeclareSyntax(env, "lambda", "(lambda (formals...) body...): constructs a closure over the current environment.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSizeAtLeast(2)
			return buildLambda(a.at(0), cdrCell(rest), callEnv)
		})
}

// cdrCell returns rest's second field — used where newArgList has
// already validated rest is a proper-enough cell chain and we need the
// tail past the first element (the formals list) for canonicalizeBody.
func cdrCell(rest *Value) *Value {
	return mustCell(rest).second
}
