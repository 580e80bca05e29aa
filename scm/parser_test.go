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

func mustParse(t *testing.T, s string) *Value {
	t.Helper()
	h := NewHeap()
	heap = h
	return ParseOne(s)
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"(+ 1 2 3)",
		"42",
		"-7",
		"foo",
		"(a b . c)",
		"'(1 2 3)",
		"()",
	}
	for _, c := range cases {
		v := mustParse(t, c)
		got := String(v)
		want := c
		if c == "'(1 2 3)" {
			want = "(quote (1 2 3))"
		}
		if got != want {
			t.Errorf("print(parse(%q)) = %q, want %q", c, got, want)
		}
	}
}

func TestParseBareCloseParenIsSyntaxError(t *testing.T) {
	h := NewHeap()
	heap = h
	var err error
	func() {
		defer recoverError(&err)
		ParseOne(")")
	}()
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
}

func TestParseUnterminatedListIsSyntaxError(t *testing.T) {
	h := NewHeap()
	heap = h
	var err error
	func() {
		defer recoverError(&err)
		ParseOne("(a b")
	}()
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
}

func TestParseBareMinusIsSymbol(t *testing.T) {
	v := mustParse(t, "-")
	if v == nil || v.kind != KindSymbol || v.symbol != "-" {
		t.Fatalf("expected symbol '-', got %v", v)
	}
}

func TestParseDottedPair(t *testing.T) {
	v := mustParse(t, "(1 . 2)")
	c := mustCell(v)
	if c.first.number != 1 || c.second.number != 2 {
		t.Fatalf("expected (1 . 2), got %s", String(v))
	}
}
