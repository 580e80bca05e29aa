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

import (
	"strconv"
	"strings"
)

// String renders v in its canonical textual form (C4).
func String(v *Value) string {
	if v == nil {
		return "()"
	}
	switch v.kind {
	case KindNumber:
		return strconv.FormatInt(v.number, 10)
	case KindSymbol:
		return v.symbol
	case KindCell:
		return cellString(v)
	case KindLambda:
		return "Lambda"
	case KindBuiltinSyntax:
		return "BuiltInSyntax"
	case KindBuiltinProcedure:
		return "BuiltInProcedure"
	case KindEnvironment:
		return environmentString(v)
	default:
		return "?"
	}
}

func cellString(v *Value) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(String(v.first))
		switch {
		case v.second == nil:
			b.WriteByte(')')
			return b.String()
		case v.second.kind == KindCell:
			v = v.second
			continue
		default:
			b.WriteString(" . ")
			b.WriteString(String(v.second))
			b.WriteByte(')')
			return b.String()
		}
	}
}

// environmentString lists bound names in btree (alphabetical) order,
// satisfying the printer's "any stable order" contract deterministically.
func environmentString(v *Value) string {
	var b strings.Builder
	b.WriteString("Environment { ")
	v.env.bindings.ascend(func(name string, _ *Value) bool {
		b.WriteString(name)
		b.WriteByte(' ')
		return true
	})
	b.WriteByte('}')
	return b.String()
}
