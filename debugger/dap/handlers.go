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
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/bl-nero/steampunk-sub000/errors"
)

func unmarshalEnvelope(data []byte, env *Envelope) error {
	return json.Unmarshal(data, env)
}

func marshalEnvelope(env Envelope) ([]byte, error) {
	return json.Marshal(env)
}

func marshalBody(v interface{}) (json.RawMessage, error) {
	return json.Marshal(v)
}

// dispatch handles one incoming request envelope, sending a matching
// response (and, for continue/pause/step requests, letting the
// already-running debugger.Core notice the state change on its own on the
// next Poll). Unrecognised commands get a response with success=false
// rather than being silently dropped, so a client always gets an answer.
func (b *Bridge) dispatch(req *Envelope) {
	switch req.Command {
	case "initialize":
		b.respond(req, true, "", marshalOrNil(CapabilitiesBody{
			SupportsReadMemoryRequest:      true,
			SupportsDisassembleRequest:     true,
			SupportsInstructionBreakpoints: true,
			SupportsSteppingGranularity:    true,
		}))
		b.sendEvent("initialized", nil)

	case "attach":
		b.respond(req, true, "", nil)

	case "setExceptionBreakpoints":
		b.respond(req, true, "", marshalOrNil(SetBreakpointsBody{}))

	case "setInstructionBreakpoints":
		b.handleSetInstructionBreakpoints(req)

	case "threads":
		b.respond(req, true, "", marshalOrNil(ThreadsBody{
			Threads: []Thread{{ID: 1, Name: "cpu"}},
		}))

	case "stackTrace":
		pc := b.core.ProgramCounter()
		b.respond(req, true, "", marshalOrNil(StackTraceBody{
			StackFrames: []StackFrame{{ID: 1, Name: fmt.Sprintf("$%04x", pc), Line: 0, Column: 0}},
			TotalFrames: 1,
		}))

	case "scopes":
		b.respond(req, true, "", marshalOrNil(ScopesBody{
			Scopes: []Scope{{Name: "CPU", VariablesReference: 1, Expensive: false}},
		}))

	case "variables":
		b.handleVariables(req)

	case "disassemble":
		b.handleDisassemble(req)

	case "readMemory":
		b.handleReadMemory(req)

	case "continue":
		b.core.Resume()
		b.respond(req, true, "", nil)

	case "pause":
		b.core.Pause()
		b.respond(req, true, "", nil)

	case "next":
		b.core.StepOver()
		b.respond(req, true, "", nil)

	case "stepIn":
		b.core.StepIn()
		b.respond(req, true, "", nil)

	case "stepOut":
		b.core.StepOut()
		b.respond(req, true, "", nil)

	case "disconnect":
		b.respond(req, true, "", nil)

	default:
		b.respond(req, false, errors.Errorf(errors.DAPUnknownRequest, req.Command).Error(), nil)
	}
}

func (b *Bridge) respond(req *Envelope, success bool, message string, body json.RawMessage) {
	b.send(Envelope{
		Type:       "response",
		Command:    req.Command,
		RequestSeq: req.Seq,
		Success:    success,
		Message:    message,
		Body:       body,
	})
}

func (b *Bridge) sendEvent(event string, body json.RawMessage) {
	b.send(Envelope{Type: "event", Event: event, Body: body})
}

func marshalOrNil(v interface{}) json.RawMessage {
	body, err := marshalBody(v)
	if err != nil {
		return nil
	}
	return body
}

func (b *Bridge) handleSetInstructionBreakpoints(req *Envelope) {
	var args SetInstructionBreakpointsArguments
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		b.respond(req, false, err.Error(), nil)
		return
	}

	b.core.ClearBreakpoints()
	verified := make([]Breakpoint, len(args.Breakpoints))
	for i, bp := range args.Breakpoints {
		addr, err := parseAddress(bp.InstructionReference)
		if err != nil {
			verified[i] = Breakpoint{Verified: false}
			continue
		}
		b.core.SetBreakpoint(addr)
		verified[i] = Breakpoint{Verified: true}
	}

	b.respond(req, true, "", marshalOrNil(SetBreakpointsBody{Breakpoints: verified}))
}

// variables reports a single variable, the program counter; stack depth,
// CPU registers and flags are not reported.
func (b *Bridge) handleVariables(req *Envelope) {
	pc := b.core.ProgramCounter()
	b.respond(req, true, "", marshalOrNil(VariablesBody{
		Variables: []Variable{
			{Name: "PC", Value: fmt.Sprintf("$%04x", pc)},
		},
	}))
}

func (b *Bridge) handleDisassemble(req *Envelope) {
	var args DisassembleArguments
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		b.respond(req, false, err.Error(), nil)
		return
	}

	if b.disassemble == nil {
		b.respond(req, false, "disassembly not available", nil)
		return
	}

	body, err := b.disassemble(args.MemoryReference, args.InstructionOffset, args.InstructionCount)
	if err != nil {
		b.respond(req, false, err.Error(), nil)
		return
	}

	b.respond(req, true, "", marshalOrNil(body))
}

func (b *Bridge) handleReadMemory(req *Envelope) {
	var args ReadMemoryArguments
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		b.respond(req, false, err.Error(), nil)
		return
	}

	if b.readMemory == nil {
		b.respond(req, false, "memory read not available", nil)
		return
	}

	body, err := b.readMemory(args.MemoryReference, args.Offset, args.Count)
	if err != nil {
		b.respond(req, false, err.Error(), nil)
		return
	}

	b.respond(req, true, "", marshalOrNil(body))
}

func parseAddress(ref string) (uint16, error) {
	var addr uint16
	_, err := fmt.Sscanf(ref, "0x%x", &addr)
	if err != nil {
		_, err = fmt.Sscanf(ref, "$%x", &addr)
	}
	return addr, err
}

// encodeBytes base64-encodes data in the form ReadMemoryBody.Data carries.
// It has no callers; the readMemory closures in cmd/ encode with their own
// base64Encode helper.
func encodeBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
