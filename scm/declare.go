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
	"strings"
)

// Declaration documents one primitive procedure installed in the root
// environment; DeclareProc both registers the binding and records the
// doc entry, the way the teacher's scm/declare.go ties registration to
// documentation in a single call.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 means unbounded
	Params       []DeclarationParameter
	Returns      string
	Fn           procFn
}

type DeclarationParameter struct {
	Name string
	Type string
	Desc string
}

var declarationTitles []string
var declarations = make(map[string]*Declaration)

// DeclareTitle groups the following DeclareProc calls under a chapter
// heading, purely for Help output.
func DeclareTitle(title string) {
	declarationTitles = append(declarationTitles, "#"+title)
}

// DeclareProc registers def.Fn as a KindBuiltinProcedure named def.Name
// in env, wrapping it with an arity check derived from
// Min/MaxParameter so every primitive gets consistent RuntimeError
// messages without repeating the check in each primitive body.
func DeclareProc(env *Value, def *Declaration) {
	declarationTitles = append(declarationTitles, def.Name)
	declarations[def.Name] = def
	fn := def.Fn
	wrapped := func(args []*Value) *Value {
		if len(args) < def.MinParameter || (def.MaxParameter >= 0 && len(args) > def.MaxParameter) {
			throwRuntime(fmt.Sprintf("%s: wrong number of arguments (%d)", def.Name, len(args)))
		}
		return fn(args)
	}
	envDefine(env, def.Name, heap.newBuiltinProcedure(def.Name, wrapped))
}

// DeclareSyntax registers a non-tail-recursive built-in syntax.
func DeclareSyntax(env *Value, name, desc string, fn syntaxFn) {
	declarationTitles = append(declarationTitles, name)
	declarations[name] = &Declaration{Name: name, Desc: desc, Returns: "any"}
	envDefine(env, name, heap.newBuiltinSyntax(name, fn))
}

// DeclareTailSyntax registers a tail-recursive built-in syntax (§4.3):
// fn performs the syntax's reductions up to its tail expression and
// returns that expression unevaluated.
func DeclareTailSyntax(env *Value, name, desc string, fn syntaxFn) {
	declarationTitles = append(declarationTitles, name)
	declarations[name] = &Declaration{Name: name, Desc: desc, Returns: "any"}
	envDefine(env, name, heap.newTailRecursiveSyntax(name, fn))
}

// Help returns a one-line summary of every declared primitive, or (with
// a name) the full entry for one, mirroring the teacher's (help) REPL
// convenience. The (help) primitive prints the returned text.
func Help(name string) string {
	var b strings.Builder
	if name == "" {
		b.WriteString("Available primitives:\n")
		for _, t := range declarationTitles {
			if strings.HasPrefix(t, "#") {
				b.WriteString("\n-- " + t[1:] + " --\n")
				continue
			}
			b.WriteString("  " + t + ": " + firstLine(declarations[t].Desc) + "\n")
		}
		return b.String()
	}
	def, ok := declarations[name]
	if !ok {
		throwRuntime("no such primitive: " + name)
	}
	b.WriteString("Help for: " + def.Name + "\n\n" + def.Desc + "\n")
	for _, p := range def.Params {
		b.WriteString(" - " + p.Name + " (" + p.Type + "): " + p.Desc + "\n")
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
