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

// Heap owns every Value allocated during a session. It is a tracing
// mark-sweep collector over an arena of owned handles (design option (b)
// in the spec's design notes): Go's own GC would happily collect these
// structs on its own, but the language semantics call for collection to
// run exactly once, between top-level inputs, rooted at the global
// environment — so the heap keeps its own live set and marks.
type Heap struct {
	objects []*Value
}

// NewHeap returns an empty heap. A session owns exactly one for its
// lifetime; nothing about it is safe to share between sessions.
func NewHeap() *Heap {
	return &Heap{objects: make([]*Value, 0, 1024)}
}

// allocate records v as live and returns it. Allocation never fails
// short of host memory exhaustion.
func (h *Heap) allocate(v *Value) *Value {
	h.objects = append(h.objects, v)
	return v
}

// Len reports the number of values currently tracked as live, used by
// the heap-stats diagnostic primitive.
func (h *Heap) Len() int {
	return len(h.objects)
}

// Mark marks root and, transitively, everything reachable from it. The
// absent reference is a safe no-op.
func (h *Heap) Mark(root *Value) {
	if root == nil || root.marked {
		return
	}
	root.marked = true
	switch root.kind {
	case KindCell:
		h.Mark(root.first)
		h.Mark(root.second)
	case KindLambda:
		h.Mark(root.body)
		h.Mark(root.closureEnv)
		for _, f := range root.formals {
			h.Mark(f)
		}
	case KindEnvironment:
		root.env.bindings.ascend(func(_ string, v *Value) bool {
			h.Mark(v)
			return true
		})
		h.Mark(root.env.parent)
	case KindNumber, KindSymbol, KindBuiltinSyntax, KindBuiltinProcedure:
		// no outgoing references
	}
}

// Sweep deallocates every value not currently marked and clears the mark
// bit on survivors, readying the heap for the next collection cycle.
func (h *Heap) Sweep() {
	survivors := h.objects[:0]
	for _, v := range h.objects {
		if v.marked {
			v.marked = false
			survivors = append(survivors, v)
		}
	}
	h.objects = survivors
}

// Collect runs one full mark-sweep pass rooted at root. The session
// driver calls this exactly once per top-level input.
func (h *Heap) Collect(root *Value) {
	h.Mark(root)
	h.Sweep()
}

// --- constructors ---------------------------------------------------

func (h *Heap) NewNumber(n int64) *Value {
	return h.allocate(&Value{kind: KindNumber, number: n})
}

func (h *Heap) NewSymbol(name string) *Value {
	return h.allocate(&Value{kind: KindSymbol, symbol: name})
}

func (h *Heap) NewCell(first, second *Value) *Value {
	return h.allocate(&Value{kind: KindCell, first: first, second: second})
}

func (h *Heap) newBuiltinSyntax(name string, fn syntaxFn) *Value {
	return h.allocate(&Value{kind: KindBuiltinSyntax, syntaxName: name, syntaxCall: fn})
}

func (h *Heap) newTailRecursiveSyntax(name string, callUntilTail syntaxFn) *Value {
	v := &Value{
		kind:                KindBuiltinSyntax,
		syntaxName:          name,
		tailRecursive:       true,
		syntaxCallUntilTail: callUntilTail,
	}
	v.syntaxCall = func(rest, env *Value) *Value {
		return Eval(callUntilTail(rest, env), env)
	}
	return h.allocate(v)
}

func (h *Heap) newBuiltinProcedure(name string, fn procFn) *Value {
	return h.allocate(&Value{kind: KindBuiltinProcedure, procName: name, proc: fn})
}

func (h *Heap) newLambda(formals []*Value, body *Value, closureEnv *Value) *Value {
	return h.allocate(&Value{kind: KindLambda, formals: formals, body: body, closureEnv: closureEnv})
}

func (h *Heap) newEnvironment(parent *Value, id string) *Value {
	return h.allocate(&Value{kind: KindEnvironment, env: &environment{
		bindings: newOrderedBindings(),
		parent:   parent,
		id:       id,
	}})
}
