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

// Package plainterm is a raw-mode local terminal front end for
// debugger.Core, an alternative to driving the debugger over the DAP
// bridge. Adapted from the teacher's
// debugger/terminal/colorterm/easyterm.EasyTerm: the same
// pkg/term/termios raw-mode switching, trimmed to the single
// responsibility this package needs (no SIGWINCH geometry tracking,
// since a line-oriented debugger REPL has no use for it).
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/term/termios"

	"github.com/bl-nero/steampunk-sub000/debugger"
)

// Terminal is a minimal raw-mode wrapper around stdin/stdout, switching
// into cbreak mode so single keystrokes can be read without waiting for a
// newline, restorable to canonical mode on Close.
type Terminal struct {
	input, output *os.File
	canonical     syscall.Termios
	cbreak        syscall.Termios
}

// Open switches the controlling terminal into cbreak mode.
func Open() (*Terminal, error) {
	t := &Terminal{input: os.Stdin, output: os.Stdout}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonical); err != nil {
		return nil, err
	}
	t.cbreak = t.canonical
	termios.Cfmakecbreak(&t.cbreak)

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreak); err != nil {
		return nil, err
	}
	return t, nil
}

// Close restores canonical mode.
func (t *Terminal) Close() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canonical)
}

// Print writes s to the terminal.
func (t *Terminal) Print(s string) {
	t.output.WriteString(s)
}

// REPL drives a debugger.Core from one command per line read from r, each
// given as a single letter or a word: 'c'/continue, 'p'/pause, 's'/step
// step-in, 'o'/over step-over, 'u'/out step-out, 'b'/break <addr> set a
// breakpoint, 'q'/quit quit the REPL (the emulation keeps
// running). It blocks until r returns io.EOF or a 'q' is read.
func REPL(r io.Reader, w io.Writer, core *debugger.Core) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c", "continue":
			core.Resume()
		case "p", "pause":
			core.Pause()
		case "s", "step":
			core.StepIn()
		case "o", "over":
			core.StepOver()
		case "u", "out":
			core.StepOut()
		case "b", "break":
			if len(fields) < 2 {
				fmt.Fprintln(w, "break requires an address")
				continue
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16)
			if err != nil {
				fmt.Fprintf(w, "bad address: %v\n", err)
				continue
			}
			core.SetBreakpoint(uint16(addr))
		case "q", "quit":
			return nil
		default:
			fmt.Fprintf(w, "unrecognised command: %s\n", fields[0])
			continue
		}

		fmt.Fprintf(w, "pc=$%04x paused=%v\n", core.ProgramCounter(), core.Paused())
	}
	return scanner.Err()
}
