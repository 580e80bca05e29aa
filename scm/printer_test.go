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

func TestStringOfEmptyListIsParens(t *testing.T) {
	if got := String(nil); got != "()" {
		t.Errorf("String(nil) = %q, want ()", got)
	}
}

func TestStringOfCallables(t *testing.T) {
	h := NewHeap()
	heap = h

	if got := String(h.newBuiltinProcedure("p", nil)); got != "BuiltInProcedure" {
		t.Errorf("procedure = %q", got)
	}
	if got := String(h.newBuiltinSyntax("s", nil)); got != "BuiltInSyntax" {
		t.Errorf("syntax = %q", got)
	}
	if got := String(h.newLambda(nil, nil, nil)); got != "Lambda" {
		t.Errorf("lambda = %q", got)
	}
}

func TestStringOfDottedPair(t *testing.T) {
	h := NewHeap()
	heap = h
	v := h.NewCell(h.NewNumber(1), h.NewNumber(2))
	if got := String(v); got != "(1 . 2)" {
		t.Errorf("String = %q, want (1 . 2)", got)
	}
}

func TestStringOfEnvironmentListsNamesInOrder(t *testing.T) {
	h := NewHeap()
	heap = h
	env := h.newEnvironment(nil, "e")
	envDefine(env, "b", h.NewNumber(1))
	envDefine(env, "a", h.NewNumber(2))
	if got, want := String(env), "Environment { a b }"; got != want {
		t.Errorf("String(env) = %q, want %q", got, want)
	}
}
