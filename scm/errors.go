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

// SyntaxError reports malformed input: either the reader could not parse a
// form, or a syntax keyword (if, define, lambda, set!, ...) was handed a
// structurally invalid argument list.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// RuntimeError reports a type mismatch, an arity mismatch, applying a
// non-callable, or evaluating the empty list.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// NameError reports an unbound symbol lookup, or set! of an unbound name.
type NameError struct {
	Message string
}

func (e *NameError) Error() string { return e.Message }

func throwSyntax(msg string) {
	panic(&SyntaxError{msg})
}

func throwRuntime(msg string) {
	panic(&RuntimeError{msg})
}

func throwName(msg string) {
	panic(&NameError{msg})
}

// recoverError turns a panic raised by throwSyntax/throwRuntime/throwName
// (or any of the three error types panicking directly) into an error
// return, the way the session driver is required to catch all three kinds
// and continue with the next input. Any other panic value is re-raised:
// it indicates a bug in the interpreter, not a guest-program fault.
func recoverError(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *SyntaxError:
		*errp = e
	case *RuntimeError:
		*errp = e
	case *NameError:
		*errp = e
	default:
		panic(r)
	}
}
