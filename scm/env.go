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

import "github.com/google/btree"

// binding is a single name/value pair stored in an environment's btree.
// Ordering is by name only; two bindings with the same name are the same
// btree item, so ReplaceOrInsert naturally implements rebinding.
type binding struct {
	name  string
	value *Value
}

func bindingLess(a, b binding) bool {
	return a.name < b.name
}

// orderedBindings wraps a btree.BTreeG[binding] so env.go never spells
// out the degree/less-function boilerplate more than once. Chosen over a
// bare map so the printer's "Environment { ... }" form enumerates names
// in a stable (alphabetical) order, generalizing the teacher's map-based
// Env.Vars the way an index generalizes a lookup table.
type orderedBindings struct {
	tree *btree.BTreeG[binding]
}

func newOrderedBindings() *orderedBindings {
	return &orderedBindings{tree: btree.NewG(32, bindingLess)}
}

func (b *orderedBindings) get(name string) (*Value, bool) {
	item, ok := b.tree.Get(binding{name: name})
	if !ok {
		return nil, false
	}
	return item.value, true
}

func (b *orderedBindings) set(name string, v *Value) {
	b.tree.ReplaceOrInsert(binding{name: name, value: v})
}

func (b *orderedBindings) ascend(fn func(name string, v *Value) bool) {
	b.tree.Ascend(func(item binding) bool {
		return fn(item.name, item.value)
	})
}

// --- Environment operations (C3) ------------------------------------
//
// define is local-only: it never walks the parent chain. assign walks
// the chain like lookup but mutates the first binding it finds. This
// asymmetry is what distinguishes (define x ...) from (set! x ...).

func mustEnv(v *Value) *Value {
	if v == nil || v.kind != KindEnvironment {
		throwRuntime("expected an environment")
	}
	return v
}

func envLookup(env *Value, name string) *Value {
	e := mustEnv(env)
	for {
		if v, ok := e.env.bindings.get(name); ok {
			return v
		}
		if e.env.parent == nil {
			throwName("Invalid name: " + name)
		}
		e = e.env.parent
	}
}

func envDefine(env *Value, name string, v *Value) {
	e := mustEnv(env)
	e.env.bindings.set(name, v)
}

func envAssign(env *Value, name string, v *Value) {
	e := mustEnv(env)
	for {
		if _, ok := e.env.bindings.get(name); ok {
			e.env.bindings.set(name, v)
			return
		}
		if e.env.parent == nil {
			throwName("Trying to set! undefined variable.")
		}
		e = e.env.parent
	}
}

func envSetParent(env *Value, parent *Value) {
	if parent != nil {
		mustEnv(parent)
	}
	mustEnv(env).env.parent = parent
}
