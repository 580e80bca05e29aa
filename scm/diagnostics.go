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
	"fmt"
	"unsafe"

	"github.com/docker/go-units"
)

// approxValueSize estimates the footprint of one heap-owned Value,
// used only for the (heap-stats) introspection primitive's human
// readable byte count — never for allocation or collection decisions.
const approxValueSize = unsafe.Sizeof(Value{})

func declareDiagnostics(env *Value, h *Heap) {
	DeclareTitle("Diagnostics")

	DeclareProc(env, &Declaration{
		Name: "heap-stats", Desc: "Reports the number of live heap values and their approximate footprint.",
		MinParameter: 0, MaxParameter: 0, Returns: "any",
		Fn: func(_ []*Value) *Value {
			n := h.Len()
			size := units.HumanSize(float64(n) * float64(approxValueSize))
			fmt.Fprintf(stdout, "%d live values, ~%s\n", n, size)
			return nil
		},
	})

	// env-id is a syntax, not a procedure, because it reports on the
	// calling environment itself rather than on an evaluated argument —
	// there is no primitive that reifies "the current environment" as a
	// first-class value to pass to an ordinary procedure.
	DeclareSyntax(env, "env-id", "(env-id): the diagnostic id of the calling environment, as a symbol.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			a.expectSize(0)
			return heap.NewSymbol(mustEnv(callEnv).env.id)
		})

	// help is a syntax, not a procedure, because its argument (when
	// given) names a primitive and must not be evaluated as a call.
	DeclareSyntax(env, "help", "(help) lists every primitive; (help name) prints the entry for one.",
		func(rest, callEnv *Value) *Value {
			a := newArgList(rest, callEnv)
			if len(a.items) == 0 {
				fmt.Fprint(stdout, Help(""))
				return nil
			}
			a.expectSize(1)
			fmt.Fprint(stdout, Help(mustSymbolValue(a.at(0)).symbol))
			return nil
		})
}

// heapSummary formats a one-line live-object summary for the process
// exit hook.
func heapSummary(h *Heap) string {
	n := h.Len()
	return fmt.Sprintf("%d live values, ~%s", n, units.HumanSize(float64(n)*float64(approxValueSize)))
}
