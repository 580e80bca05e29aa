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
	"io"
)

// stdout is the sink display writes to; the session driver may redirect
// it per-connection (network REPL) so concurrent sessions never
// interleave onto the process's real stdout.
var stdout io.Writer

func declareIO(env *Value) {
	DeclareTitle("I/O")

	DeclareProc(env, &Declaration{
		Name: "display", Desc: "Prints the canonical form of its argument followed by a newline; returns ().",
		MinParameter: 1, MaxParameter: 1, Returns: "nil",
		Fn: func(a []*Value) *Value {
			fmt.Fprintln(stdout, String(a[0]))
			return nil
		},
	})
}
