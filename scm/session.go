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
	"io"
	"sync"

	"github.com/google/uuid"
)

// Session owns one heap, one global environment, and the output sink
// `display` writes to (C8). Each stdin REPL run, WebSocket connection,
// and file-watch reload gets its own Session.
//
// Allocation and `display` are implemented against the package-level
// heap/stdout (eval.go, io.go) rather than parameters threaded through
// every evaluation call, the way the teacher's own single-process
// interpreter core does it. That means two Sessions must never run a
// Step concurrently — sessionMu below serializes NewSession/Step
// process-wide, so concurrent WebSocket connections (netrepl.go) still
// get per-connection isolation (own heap, own global env, own output
// buffer) without racing on which Session's heap/stdout the globals
// currently point at.
type Session struct {
	ID     string
	Heap   *Heap
	Global *Value
	out    io.Writer
}

var sessionMu sync.Mutex

// NewSession allocates a fresh heap and global environment with every
// primitive installed. Safe to call from any goroutine; the returned
// Session's Step serializes with every other Session's NewSession/Step
// in the process.
func NewSession(out io.Writer) *Session {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	h := NewHeap()
	heap = h
	stdout = out

	global := h.newEnvironment(nil, uuid.NewString()[:8])

	declareBooleansAndPredicates(global)
	declareArithmetic(global)
	declarePairsAndLists(global)
	declareControl(global)
	declareDefinitions(global)
	declareIO(global)
	declareDiagnostics(global, h)

	return &Session{ID: uuid.NewString(), Heap: h, Global: global, out: out}
}

// Step runs one full top-level input through the session (C8):
// parse exactly one form, evaluate it against the persistent global
// environment, print the result, then collect. A typed error aborts
// evaluation of this input only; the global environment (including any
// partial definitions already installed) persists into the next Step.
// Safe to call from any goroutine, serialized against every other
// Session's Step/NewSession (see sessionMu above).
func (s *Session) Step(input string) (result string, err error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	defer recoverError(&err)
	defer s.Heap.Collect(s.Global)

	heap = s.Heap
	stdout = s.out
	expr := ParseOne(input)
	value := Eval(expr, s.Global)
	return String(value), nil
}

// HeapSummary reports the session's live-object count for the
// process-exit hook.
func (s *Session) HeapSummary() string {
	return heapSummary(s.Heap)
}
