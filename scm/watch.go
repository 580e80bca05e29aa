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
	"bufio"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// WatchFile loads path's top-level forms through a fresh Session once,
// then re-loads (against a brand new global environment) every time the
// file changes, until the watcher or the process is stopped. This is a
// developer convenience layered next to the stdin REPL, not a
// replacement for it: each (re)load still gets its own serial,
// single-threaded session exactly like Repl does.
func WatchFile(path string) error {
	if err := loadFile(path); err != nil {
		fmt.Fprintln(os.Stderr, errorPrompt, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stdout, "reloading %s\n", path)
			if err := loadFile(path); err != nil {
				fmt.Fprintln(os.Stderr, errorPrompt, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, errorPrompt, err)
		}
	}
}

// loadFile runs every top-level form in path through a fresh Session.
// A form that fails has its error printed and loading continues with the
// next form; only open and read errors are returned.
func loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sess := NewSession(os.Stdout)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var form string
	depth := 0
	for scanner.Scan() {
		line := scanner.Text()
		form += line + "\n"
		depth += balance(line)
		if depth > 0 {
			continue
		}
		if trimmed := trimSpaceASCII(form); trimmed != "" {
			if _, err := sess.Step(trimmed); err != nil {
				fmt.Fprintln(os.Stderr, errorPrompt, err)
			}
		}
		form = ""
		depth = 0
	}
	return scanner.Err()
}

func balance(line string) int {
	d := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			d++
		case ')':
			d--
		}
	}
	return d
}

func trimSpaceASCII(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
