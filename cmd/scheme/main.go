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
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dc0d/onexit"

	"github.com/cph-hansch/tinyscheme/scm"
)

func main() {
	watch := flag.String("watch", "", "load and hot-reload definitions from a file")
	listen := flag.String("listen", "", "serve the interpreter over WebSocket at the given address")
	flag.Parse()

	sess := scm.NewSession(os.Stdout)
	onexit.Register(func() {
		fmt.Fprintln(os.Stderr, sess.HeapSummary())
	})

	switch {
	case *listen != "":
		fmt.Fprintf(os.Stderr, "listening on %s\n", *listen)
		if err := scm.ListenAndServe(*listen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *watch != "":
		if err := scm.WatchFile(*watch); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		scm.Repl(sess)
	}
}
