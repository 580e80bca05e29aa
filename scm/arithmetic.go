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

// mustNumber extracts the int64 payload of v, or raises a RuntimeError.
// Every arithmetic and comparison primitive is Number-only per spec.
func mustNumber(v *Value) int64 {
	if v == nil || v.kind != KindNumber {
		throwRuntime("expected a number, got " + String(v))
	}
	return v.number
}

func declareArithmetic(env *Value) {
	DeclareTitle("Arithmetic")

	DeclareProc(env, &Declaration{
		Name: "+", Desc: "Sums its arguments; identity 0.",
		MinParameter: 0, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			var sum int64
			for _, v := range a {
				sum += mustNumber(v)
			}
			return heap.NewNumber(sum)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "*", Desc: "Multiplies its arguments; identity 1.",
		MinParameter: 0, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			prod := int64(1)
			for _, v := range a {
				prod *= mustNumber(v)
			}
			return heap.NewNumber(prod)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "-", Desc: "Unary negation, or left-fold subtraction over 2+ arguments.",
		MinParameter: 1, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			if len(a) == 1 {
				return heap.NewNumber(-mustNumber(a[0]))
			}
			result := mustNumber(a[0])
			for _, v := range a[1:] {
				result -= mustNumber(v)
			}
			return heap.NewNumber(result)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "/", Desc: "Unary integer reciprocal, or left-fold integer division over 2+ arguments.",
		MinParameter: 1, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			if len(a) == 1 {
				return heap.NewNumber(1 / mustNumber(a[0]))
			}
			result := mustNumber(a[0])
			for _, v := range a[1:] {
				result /= mustNumber(v)
			}
			return heap.NewNumber(result)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "abs", Desc: "Absolute value.",
		MinParameter: 1, MaxParameter: 1, Returns: "number",
		Fn: func(a []*Value) *Value {
			n := mustNumber(a[0])
			if n < 0 {
				n = -n
			}
			return heap.NewNumber(n)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "max", Desc: "Largest of its arguments.",
		MinParameter: 1, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			best := mustNumber(a[0])
			for _, v := range a[1:] {
				if n := mustNumber(v); n > best {
					best = n
				}
			}
			return heap.NewNumber(best)
		},
	})
	DeclareProc(env, &Declaration{
		Name: "min", Desc: "Smallest of its arguments.",
		MinParameter: 1, MaxParameter: -1, Returns: "number",
		Fn: func(a []*Value) *Value {
			best := mustNumber(a[0])
			for _, v := range a[1:] {
				if n := mustNumber(v); n < best {
					best = n
				}
			}
			return heap.NewNumber(best)
		},
	})

	DeclareTitle("Numeric comparison")
	declareComparison(env, "=", func(a, b int64) bool { return a == b })
	declareComparison(env, "<", func(a, b int64) bool { return a < b })
	declareComparison(env, ">", func(a, b int64) bool { return a > b })
	declareComparison(env, "<=", func(a, b int64) bool { return a <= b })
	declareComparison(env, ">=", func(a, b int64) bool { return a >= b })
}

// declareComparison installs a pairwise-adjacent numeric relation:
// #t iff rel holds between every adjacent pair of arguments, and #t
// with fewer than two arguments.
func declareComparison(env *Value, name string, rel func(a, b int64) bool) {
	DeclareProc(env, &Declaration{
		Name: name, Desc: "Pairwise-adjacent numeric comparison.",
		MinParameter: 0, MaxParameter: -1, Returns: "bool",
		Fn: func(a []*Value) *Value {
			for i := 1; i < len(a); i++ {
				if !rel(mustNumber(a[i-1]), mustNumber(a[i])) {
					return boolSymbol(false)
				}
			}
			return boolSymbol(true)
		},
	})
}
