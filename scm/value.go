/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// Kind discriminates the handful of value shapes the interpreter knows
// about. There is exactly one Go type, Value, for all of them; Kind
// selects which fields are meaningful, the way a tagged union would in a
// language with sum types.
type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
	KindCell
	KindBuiltinSyntax
	KindBuiltinProcedure
	KindLambda
	KindEnvironment
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindCell:
		return "pair"
	case KindBuiltinSyntax:
		return "syntax"
	case KindBuiltinProcedure:
		return "procedure"
	case KindLambda:
		return "lambda"
	case KindEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// syntaxFn is the shape of a built-in syntax's full call: it receives the
// unevaluated tail of the call cell and the caller's environment, and
// returns a value directly.
type syntaxFn func(rest *Value, env *Value) *Value

// procFn is the shape of a built-in procedure: it receives the already
// evaluated argument sequence and returns a value.
type procFn func(args []*Value) *Value

// Value is the single heap-owned node kind every AST, every runtime
// datum, and every environment is built from. A nil *Value denotes the
// absent reference, i.e. the empty list ().
type Value struct {
	kind   Kind
	marked bool // GC mark bit; toggled by Heap.Mark/Sweep

	// KindNumber
	number int64

	// KindSymbol
	symbol string

	// KindCell
	first  *Value
	second *Value

	// KindBuiltinSyntax
	syntaxName          string
	syntaxCall          syntaxFn
	tailRecursive        bool
	syntaxCallUntilTail syntaxFn // non-nil iff tailRecursive

	// KindBuiltinProcedure
	procName string
	proc     procFn

	// KindLambda
	formals     []*Value // Symbol values, positional
	body        *Value   // always a (begin ...) cell, see canonicalizeBody
	closureEnv  *Value   // KindEnvironment

	// KindEnvironment
	env *environment
}

// environment is the payload of a KindEnvironment value: an
// ordered-insertion-irrelevant name->value map plus an optional parent.
// Bindings are kept in a btree instead of a bare Go map so that the
// printer's "Environment { name1 name2 ... }" form is alphabetically
// stable across runs, which keeps golden-output tests deterministic.
type environment struct {
	bindings *orderedBindings
	parent   *Value // KindEnvironment, or nil for the root
	id       string // short diagnostic id, never used in language semantics
}

// isAbsent reports whether v denotes the empty list ().
func isAbsent(v *Value) bool {
	return v == nil
}

// isCallable reports whether v may legally appear as the head of a call.
func isCallable(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.kind {
	case KindBuiltinSyntax, KindBuiltinProcedure, KindLambda:
		return true
	default:
		return false
	}
}

// isTrue implements the language's notion of truthiness: every value is
// true except the symbol named "#f".
func isTrue(v *Value) bool {
	if v != nil && v.kind == KindSymbol && v.symbol == "#f" {
		return false
	}
	return true
}

// isProperList reports whether v is () or a chain of cells whose final
// second is ().
func isProperList(v *Value) bool {
	for {
		if v == nil {
			return true
		}
		if v.kind != KindCell {
			return false
		}
		v = v.second
	}
}
