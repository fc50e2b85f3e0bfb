// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package dap implements the wire format and TCP bridge for the Debug
// Adapter Protocol: a Content-Length-framed JSON envelope, read by a
// dedicated reader goroutine and written by a dedicated writer goroutine,
// exactly as spec §4.7/§5 describe. Only Bridge.Poll, called from the
// emulator's own loop, ever touches the debugger core - the two I/O
// goroutines only ever deal in raw bytes and channels.
package dap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bl-nero/steampunk-sub000/errors"
)

// ReadMessage reads one framed DAP message body from r: zero or more
// headers terminated by a blank line, then exactly Content-Length bytes of
// JSON. Unknown headers are ignored; a missing Content-Length header or a
// stream that ends mid-header or mid-body is an error, per spec §8
// property 10.
func ReadMessage(r *bufio.Reader) ([]byte, error) {
	contentLength := -1
	started := false

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF && !started && line == "" {
				return nil, io.EOF
			}
			return nil, errors.Errorf(errors.DAPUnexpectedEOF, err)
		}
		started = true

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}

		const prefix = "Content-Length:"
		if strings.HasPrefix(line, prefix) {
			n, err := strconv.Atoi(strings.TrimSpace(line[len(prefix):]))
			if err != nil {
				return nil, errors.Errorf(errors.DAPUnexpectedEOF, err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, errors.Errorf(errors.DAPMissingContentLength)
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, errors.Errorf(errors.DAPUnexpectedEOF, err)
	}
	return body, nil
}

// WriteMessage frames body with a Content-Length header and writes it to w.
func WriteMessage(w io.Writer, body []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
