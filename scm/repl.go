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
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

const newPrompt = "\033[32m>\033[0m "
const contPrompt = "\033[32m.\033[0m "
const resultPrompt = "\033[31m=\033[0m "
const errorPrompt = "\033[31m!\033[0m "

// Repl runs the spec's §6 CLI contract — one line in, one printed
// result or error out, exit on EOF — over an interactive readline
// session with history and multi-line continuation on an unterminated
// "(". Grounded on the teacher's scm/prompt.go.
func Repl(sess *Session) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".tinyscheme-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		if !formIsComplete(line) {
			pending = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}

		result, evalErr := sess.Step(line)
		if evalErr != nil {
			fmt.Fprint(os.Stderr, errorPrompt)
			fmt.Fprintln(os.Stderr, evalErr.Error())
		} else {
			fmt.Print(resultPrompt)
			fmt.Println(result)
		}
		pending = ""
		l.SetPrompt(newPrompt)
	}
}

// formIsComplete reports whether line has balanced parentheses, so the
// REPL can prompt for continuation instead of handing the parser a
// truncated form (which would otherwise surface as a confusing
// "expecting matching )" SyntaxError on every multi-line input).
func formIsComplete(line string) bool {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth <= 0
}
