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

import "testing"

func TestCollectSweepsUnreachableValues(t *testing.T) {
	h := NewHeap()
	heap = h
	root := h.newEnvironment(nil, "root")

	h.NewNumber(1) // unreachable from root
	h.NewCell(h.NewNumber(2), h.NewNumber(3))

	envDefine(root, "kept", h.NewNumber(99))

	before := h.Len()
	h.Collect(root)
	after := h.Len()

	if after >= before {
		t.Errorf("Collect did not shrink the heap: before=%d after=%d", before, after)
	}
	if v := envLookup(root, "kept"); v.number != 99 {
		t.Errorf("reachable value was swept: got %v", v)
	}
}

func TestCollectKeepsClosureEnvironment(t *testing.T) {
	h := NewHeap()
	heap = h
	root := h.newEnvironment(nil, "root")

	lambda := h.newLambda(nil, h.NewNumber(0), root)
	envDefine(root, "f", lambda)

	h.Collect(root)

	if v := envLookup(root, "f"); v != lambda {
		t.Errorf("lambda binding was swept")
	}
}

func TestCollectIsIdempotentWhenNothingChanges(t *testing.T) {
	h := NewHeap()
	heap = h
	root := h.newEnvironment(nil, "root")
	envDefine(root, "x", h.NewNumber(1))

	h.Collect(root)
	n1 := h.Len()
	h.Collect(root)
	n2 := h.Len()
	if n1 != n2 {
		t.Errorf("repeated collection changed live count: %d then %d", n1, n2)
	}
}
