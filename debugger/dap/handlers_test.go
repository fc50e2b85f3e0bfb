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

package dap

import (
	"encoding/json"
	"testing"

	"github.com/bl-nero/steampunk-sub000/debugger"
	"github.com/bl-nero/steampunk-sub000/test"
)

type fakeInspector struct {
	pc uint16
}

func (f *fakeInspector) AtInstructionStart() bool           { return true }
func (f *fakeInspector) ProgramCounter() uint16             { return f.pc }
func (f *fakeInspector) StackDepth() int                    { return 0xff }
func (f *fakeInspector) Peek(addr uint16) (uint8, error)    { return uint8(addr), nil }

// newTestBridge wires a Bridge with no TCP connection at all: outgoing
// messages land in the buffered channel and are drained directly by the
// test, exactly as the writer goroutine would drain them over a socket.
func newTestBridge() *Bridge {
	core := debugger.NewCore(&fakeInspector{pc: 0x1000})
	return NewBridge(core, nil, nil, nil)
}

func TestInitializeRespondsWithCapabilities(t *testing.T) {
	b := newTestBridge()
	b.dispatch(&Envelope{Seq: 1, Type: "request", Command: "initialize"})

	cmd := <-b.outgoing
	var resp Envelope
	test.ExpectSuccess(t, json.Unmarshal(cmd.body, &resp))
	test.ExpectEquality(t, resp.Success, true)
	test.ExpectEquality(t, resp.RequestSeq, 1)

	// the "initialized" event follows immediately
	cmd2 := <-b.outgoing
	var ev Envelope
	test.ExpectSuccess(t, json.Unmarshal(cmd2.body, &ev))
	test.ExpectEquality(t, ev.Event, "initialized")
}

func TestUnknownCommandFails(t *testing.T) {
	b := newTestBridge()
	b.dispatch(&Envelope{Seq: 2, Type: "request", Command: "bogus"})

	cmd := <-b.outgoing
	var resp Envelope
	test.ExpectSuccess(t, json.Unmarshal(cmd.body, &resp))
	test.ExpectEquality(t, resp.Success, false)
}

func TestContinueResumesCore(t *testing.T) {
	b := newTestBridge()
	test.ExpectEquality(t, b.core.Paused(), true)

	b.dispatch(&Envelope{Seq: 3, Type: "request", Command: "continue"})
	<-b.outgoing

	test.ExpectEquality(t, b.core.Paused(), false)
}

func TestSetInstructionBreakpointsParsesHexAddress(t *testing.T) {
	b := newTestBridge()
	args, _ := json.Marshal(SetInstructionBreakpointsArguments{
		Breakpoints: []InstructionBreakpoint{{InstructionReference: "0x1234"}},
	})
	b.dispatch(&Envelope{Seq: 4, Type: "request", Command: "setInstructionBreakpoints", Arguments: args})

	cmd := <-b.outgoing
	var resp Envelope
	test.ExpectSuccess(t, json.Unmarshal(cmd.body, &resp))
	test.ExpectEquality(t, resp.Success, true)

	bps := b.core.Breakpoints()
	test.ExpectEquality(t, len(bps), 1)
	test.ExpectEquality(t, bps[0], uint16(0x1234))
}

func TestStackTraceReportsCurrentPC(t *testing.T) {
	b := newTestBridge()
	b.dispatch(&Envelope{Seq: 5, Type: "request", Command: "stackTrace"})

	cmd := <-b.outgoing
	var resp Envelope
	test.ExpectSuccess(t, json.Unmarshal(cmd.body, &resp))

	var body StackTraceBody
	test.ExpectSuccess(t, json.Unmarshal(resp.Body, &body))
	test.ExpectEquality(t, body.TotalFrames, 1)
	test.ExpectEquality(t, body.StackFrames[0].Name, "$1000")
}
