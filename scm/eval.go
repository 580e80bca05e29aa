/*
Copyright (C) 2023  Carl-Philip Hänsch

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

// heap is pointed at the active session's heap by the session driver
// (in NewSession and at the start of every Step) before evaluation.
// Routing every allocation through a package-level pointer rather than
// threading it as an explicit parameter mirrors the teacher's own
// package-global Globalenv/heap usage; see session.go for the session
// that owns it.
var heap *Heap

// Eval implements the evaluator's top-level dispatch (C5): the AST-shape
// table in §4.3.
func Eval(expr *Value, env *Value) *Value {
	if expr == nil {
		throwRuntime("() cannot be evaluated")
	}
	switch expr.kind {
	case KindNumber:
		return expr
	case KindSymbol:
		return envLookup(env, expr.symbol)
	case KindCell:
		callee := Eval(expr.first, env)
		if !isCallable(callee) {
			throwRuntime("cannot apply a non-callable value: " + String(callee))
		}
		return Call(callee, expr.second, env)
	case KindBuiltinSyntax, KindBuiltinProcedure, KindLambda, KindEnvironment:
		throwSyntax("cannot evaluate a " + expr.kind.String() + " directly")
	}
	panic("unreachable")
}

// Call dispatches a resolved callee against its unevaluated argument
// cell and the caller's environment (C6).
func Call(callee *Value, rest *Value, callerEnv *Value) *Value {
	switch callee.kind {
	case KindBuiltinProcedure:
		return callee.proc(evalArgs(rest, callerEnv))
	case KindBuiltinSyntax:
		return callee.syntaxCall(rest, callerEnv)
	case KindLambda:
		return lambdaCall(callee, rest, callerEnv)
	default:
		throwRuntime("cannot apply a non-callable value: " + String(callee))
		panic("unreachable")
	}
}

// evalArgs evaluates a call's argument list left to right in env,
// producing the ordered sequence a Built-in Procedure receives. An
// improper tail (a non-Cell, non-absent final second) is appended as
// its evaluated self, matching spec's "the resulting sequence includes
// that tail element" note; most primitives reject the resulting arity
// via their own size checks.
func evalArgs(rest *Value, env *Value) []*Value {
	var args []*Value
	for rest != nil {
		if rest.kind != KindCell {
			args = append(args, Eval(rest, env))
			break
		}
		args = append(args, Eval(rest.first, env))
		rest = rest.second
	}
	return args
}

// argList walks a call's unevaluated tail into a slice once, tracking
// properness, so syntaxes built on raw argument access (list-ref,
// list-tail, if, begin, and, or, define, set!, lambda) share one
// traversal and one set of arity checks. Grounded on the original's
// ArgList (scheme.cpp).
type argList struct {
	items    []*Value
	improper bool // true if the final cdr was neither a Cell nor absent
	env      *Value
}

func newArgList(rest *Value, env *Value) *argList {
	a := &argList{env: env}
	for rest != nil {
		if rest.kind != KindCell {
			a.items = append(a.items, rest)
			a.improper = true
			break
		}
		a.items = append(a.items, rest.first)
		rest = rest.second
	}
	return a
}

func (a *argList) expectSize(n int) {
	if len(a.items) != n || a.improper {
		throwSyntax("expected exactly " + itoa(n) + " argument(s)")
	}
}

func (a *argList) expectSizeAtLeast(n int) {
	if len(a.items) < n || a.improper {
		throwSyntax("expected at least " + itoa(n) + " argument(s)")
	}
}

func (a *argList) at(i int) *Value {
	return a.items[i]
}

func (a *argList) eval(i int) *Value {
	return Eval(a.items[i], a.env)
}

func (a *argList) evalAs(i int, kind Kind) *Value {
	v := Eval(a.items[i], a.env)
	if v == nil || v.kind != kind {
		throwRuntime("expected a " + kind.String())
	}
	return v
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// resolvedHead evaluates form's head symbol against env without
// triggering a full Eval of the form, returning nil if form is not a
// Cell whose head is currently bound to a callable. Used by the
// trampoline to detect self-calls and tail-recursive-syntax wrappers
// without duplicating evaluation of the head.
func resolvedHead(form *Value, env *Value) (head *Value, cell *Value, ok bool) {
	if form == nil || form.kind != KindCell {
		return nil, nil, false
	}
	if form.first == nil || form.first.kind != KindSymbol {
		return nil, nil, false
	}
	v, found := lookupOk(env, form.first.symbol)
	if !found || !isCallable(v) {
		return nil, nil, false
	}
	return v, form, true
}

// lookupOk is envLookup without the NameError panic, for speculative
// head resolution inside the trampoline where an unbound head just
// means "not a tail call, fall through to ordinary Eval."
func lookupOk(env *Value, name string) (*Value, bool) {
	e := mustEnv(env)
	for {
		if v, ok := e.env.bindings.get(name); ok {
			return v, true
		}
		if e.env.parent == nil {
			return nil, false
		}
		e = e.env.parent
	}
}

// lambdaCall invokes a Lambda against an unevaluated argument cell,
// implementing the tail-call trampoline of §4.3 step 3 as an explicit
// loop rather than relying on any host tail call (per §9 Design Notes).
//
// The literal self-call check in the original only unwraps one
// tail-recursive-syntax layer before falling back to a plain Eval,
// which works in the original only because the surrounding C++ calls
// happen to be compiler-optimized tail calls themselves. Go gives no
// such guarantee, so this loop keeps draining successive
// call_until_tail results — held at a constant local environment,
// since none of if/begin/and/or introduce a new scope — until it
// either finds a self-call (outer loop continues, zero stack added) or
// bottoms out at a form that needs a genuine (bounded) Eval.
func lambdaCall(lambda *Value, rest *Value, callerEnv *Value) *Value {
	for {
		args := evalArgs(rest, callerEnv)
		if len(args) != len(lambda.formals) {
			throwRuntime("wrong number of arguments to lambda")
		}
		localEnv := heap.newEnvironment(lambda.closureEnv, "")
		for i, formal := range lambda.formals {
			envDefine(localEnv, formal.symbol, args[i])
		}

		form := lambda.body
		env := localEnv

		for {
			head, cell, ok := resolvedHead(form, env)
			if !ok {
				return Eval(form, env)
			}
			if head == lambda {
				rest = cell.second
				callerEnv = env
				break
			}
			if head.kind == KindBuiltinSyntax && head.tailRecursive {
				form = head.syntaxCallUntilTail(cell.second, env)
				continue
			}
			return Eval(form, env)
		}
	}
}
