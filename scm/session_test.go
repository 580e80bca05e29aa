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

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

func mustStep(t *testing.T, s *Session, input string) string {
	t.Helper()
	result, err := s.Step(input)
	if err != nil {
		t.Fatalf("Step(%q): unexpected error: %v", input, err)
	}
	return result
}

func TestScenariosFromSpec(t *testing.T) {
	s := NewSession(io.Discard)

	cases := []struct {
		input string
		want  string
	}{
		{"(+ 1 2 3)", "6"},
		{"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))", "()"},
		{"(fact 5)", "120"},
		{"(define (loop n) (if (= n 0) 'done (loop (- n 1))))", "()"},
		{"(loop 100000)", "done"},
		{"(define x 1)", "()"},
		{"(set! x (+ x 10))", "()"},
		{"x", "11"},
		{"(cons 1 (cons 2 (cons 3 '())))", "(1 2 3)"},
		{"(car (cdr '(a b c)))", "b"},
		{"(list? '(1 2 . 3))", "#f"},
		{"(list? '(1 2 3))", "#t"},
		{"(pair? '())", "#f"},
	}

	for _, c := range cases {
		got := mustStep(t, s, c.input)
		if got != c.want {
			t.Errorf("Step(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDefinitionsPersistAcrossSteps(t *testing.T) {
	s := NewSession(io.Discard)
	mustStep(t, s, "(define y 41)")
	mustStep(t, s, "(set! y (+ y 1))")
	if got := mustStep(t, s, "y"); got != "42" {
		t.Errorf("y = %q, want 42", got)
	}
}

func TestNegativeScenarios(t *testing.T) {
	s := NewSession(io.Discard)

	cases := []struct {
		input   string
		errType error
	}{
		{"()", &RuntimeError{}},
		{"(foo)", &NameError{}},
		{"(+ 1 'a)", &RuntimeError{}},
		{"(set! yy 1)", &NameError{}},
	}

	for _, c := range cases {
		_, err := s.Step(c.input)
		if err == nil {
			t.Fatalf("Step(%q): expected error, got none", c.input)
		}
		switch c.errType.(type) {
		case *RuntimeError:
			if _, ok := err.(*RuntimeError); !ok {
				t.Errorf("Step(%q): want *RuntimeError, got %T (%v)", c.input, err, err)
			}
		case *NameError:
			if _, ok := err.(*NameError); !ok {
				t.Errorf("Step(%q): want *NameError, got %T (%v)", c.input, err, err)
			}
		}
	}
}

func TestErrorLeavesPriorDefinitionsIntact(t *testing.T) {
	s := NewSession(io.Discard)
	mustStep(t, s, "(define z 7)")
	if _, err := s.Step("(+ z 'a)"); err == nil {
		t.Fatal("expected an error")
	}
	if got := mustStep(t, s, "z"); got != "7" {
		t.Errorf("z = %q, want 7 (prior definition should survive an error)", got)
	}
}

func TestTailCallDoesNotOverflowStack(t *testing.T) {
	s := NewSession(io.Discard)
	mustStep(t, s, "(define (count n acc) (if (= n 0) acc (count (- n 1) (+ acc 1))))")
	got := mustStep(t, s, "(count 200000 0)")
	if got != "200000" {
		t.Errorf("(count 200000 0) = %q, want 200000", got)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	s := NewSession(io.Discard)
	if got := mustStep(t, s, "(and)"); got != "#t" {
		t.Errorf("(and) = %q, want #t", got)
	}
	if got := mustStep(t, s, "(or)"); got != "#f" {
		t.Errorf("(or) = %q, want #f", got)
	}
	if got := mustStep(t, s, "(and 1 2 3)"); got != "3" {
		t.Errorf("(and 1 2 3) = %q, want 3", got)
	}
	if got := mustStep(t, s, "(and 1 #f 3)"); got != "#f" {
		t.Errorf("(and 1 #f 3) = %q, want #f", got)
	}
	if got := mustStep(t, s, "(or #f #f 5)"); got != "5" {
		t.Errorf("(or #f #f 5) = %q, want 5", got)
	}
}

func TestListTailOffByOne(t *testing.T) {
	s := NewSession(io.Discard)
	// Preserved quirk (see SPEC_FULL.md §4): k=0 still performs one cdr.
	if got := mustStep(t, s, "(list-tail '(a b c) 0)"); got != "(b c)" {
		t.Errorf("(list-tail '(a b c) 0) = %q, want (b c)", got)
	}
	if got := mustStep(t, s, "(list-tail '(a b c) 1)"); got != "(b c)" {
		t.Errorf("(list-tail '(a b c) 1) = %q, want (b c)", got)
	}
	if got := mustStep(t, s, "(list-tail '(a b c) 2)"); got != "(c)" {
		t.Errorf("(list-tail '(a b c) 2) = %q, want (c)", got)
	}
}

func TestHelpPrintsToSessionOutput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(&out)
	mustStep(t, s, "(help)")
	if !strings.Contains(out.String(), "cons:") {
		t.Errorf("(help) output = %q, want it to mention cons", out.String())
	}
	out.Reset()
	mustStep(t, s, "(help car)")
	if !strings.Contains(out.String(), "Help for: car") {
		t.Errorf("(help car) output = %q, want it to mention car", out.String())
	}
}

func TestConcurrentSessionsDoNotInterfere(t *testing.T) {
	// t.Fatalf/t.FailNow are only safe from the test's own goroutine, so
	// each worker reports through a channel instead of calling mustStep.
	const sessions = 8
	errs := make(chan string, sessions)
	var wg sync.WaitGroup
	wg.Add(sessions)
	for i := 0; i < sessions; i++ {
		i := i
		go func() {
			defer wg.Done()
			var out bytes.Buffer
			s := NewSession(&out)
			if _, err := s.Step(fmt.Sprintf("(define n %d)", i)); err != nil {
				errs <- fmt.Sprintf("session %d: define failed: %v", i, err)
				return
			}
			if _, err := s.Step("(display n)"); err != nil {
				errs <- fmt.Sprintf("session %d: display failed: %v", i, err)
				return
			}
			if got, want := strings.TrimSpace(out.String()), fmt.Sprintf("%d", i); got != want {
				errs <- fmt.Sprintf("session %d: display output = %q, want %q", i, got, want)
				return
			}
			result, err := s.Step("n")
			if err != nil {
				errs <- fmt.Sprintf("session %d: n failed: %v", i, err)
				return
			}
			if want := fmt.Sprintf("%d", i); result != want {
				errs <- fmt.Sprintf("session %d: n = %q, want %q", i, result, want)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestHeapCollectsUnreachableValues(t *testing.T) {
	s := NewSession(io.Discard)
	mustStep(t, s, "(cons 1 2)")
	before := s.Heap.Len()
	mustStep(t, s, "(+ 1 1)")
	after := s.Heap.Len()
	if after > before {
		t.Errorf("heap grew after collecting an unreachable cons: before=%d after=%d", before, after)
	}
}
