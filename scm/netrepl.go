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

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ListenAndServe runs a WebSocket endpoint at addr where every
// connection gets its own Session (own global environment, own heap):
// each text frame is one top-level form, fed through the same Step
// pipeline the stdin REPL uses, and the result (or error) is written
// back as the next text frame. Concurrent connections are safe:
// Session.Step serializes against every other Session in the process
// (see session.go's sessionMu), so one connection's in-flight
// evaluation can never land in another connection's heap or output
// buffer. Grounded on scm/network.go's websocket upgrade pattern.
func ListenAndServe(addr string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serveConn(conn)
	})
	return http.ListenAndServe(addr, nil)
}

func serveConn(conn *websocket.Conn) {
	defer conn.Close()

	var out bytes.Buffer
	sess := NewSession(&out)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		out.Reset()
		result, evalErr := sess.Step(string(msg))
		reply := out.String()
		if evalErr != nil {
			reply += fmt.Sprintf("!%s\n", evalErr.Error())
		} else {
			reply += fmt.Sprintf("=%s\n", result)
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			return
		}
	}
}
