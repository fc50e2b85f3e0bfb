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
	"bufio"
	"net"

	"github.com/bl-nero/steampunk-sub000/debugger"
	"github.com/bl-nero/steampunk-sub000/logger"
)

// writerCommand is the writer goroutine's input, mirroring the
// connect/send/disconnect vocabulary of a two-thread TCP bridge: the
// writer only ever holds a live net.Conn between a Connect and the
// matching Disconnect, and silently drops anything sent outside that
// window, exactly as a single debug client connecting and dropping would
// require.
type writerCommand struct {
	connect    net.Conn
	disconnect bool
	body       []byte
}

// Bridge listens for a single Debug Adapter Protocol client at a time and
// drives a debugger.Core from its requests. Poll, called once per
// instruction boundary from the emulation loop, is the only method that
// touches the core directly; the reader and writer goroutines only ever
// move framed bytes.
type Bridge struct {
	core *debugger.Core
	log  *logger.Logger

	listener net.Listener

	incoming chan *Envelope
	outgoing chan writerCommand

	seq int

	disassemble func(memRef string, instructionOffset, instructionCount int) (DisassembleBody, error)
	readMemory  func(memRef string, offset, count int) (ReadMemoryBody, error)
}

// NewBridge creates a Bridge wired to core. disassemble and readMemory are
// supplied by the caller because only it knows how to map a machine's
// address space and cartridge image into the disassembly package's
// Forward/SeekOrigin calls - the bridge itself is machine-agnostic.
func NewBridge(core *debugger.Core, log *logger.Logger,
	disassemble func(memRef string, instructionOffset, instructionCount int) (DisassembleBody, error),
	readMemory func(memRef string, offset, count int) (ReadMemoryBody, error),
) *Bridge {
	return &Bridge{
		core:        core,
		log:         log,
		incoming:    make(chan *Envelope, 64),
		outgoing:    make(chan writerCommand, 64),
		disassemble: disassemble,
		readMemory:  readMemory,
	}
}

// Listen opens the TCP port and starts the reader/writer goroutines. It
// returns once the listener is bound; connections are accepted in the
// background for the lifetime of the Bridge.
func (b *Bridge) Listen(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	b.listener = l

	go b.writerThread()
	go b.acceptThread()

	return nil
}

// Close stops accepting new connections. Connections already in progress
// run to completion.
func (b *Bridge) Close() error {
	if b.listener == nil {
		return nil
	}
	return b.listener.Close()
}

func (b *Bridge) acceptThread() {
	for {
		conn, err := b.listener.Accept()
		if err != nil {
			return
		}
		b.handleConnection(conn)
	}
}

// handleConnection reads frames from conn until it closes or errors,
// dispatching each to the incoming channel, then tells the writer thread
// to drop the connection. Only one connection is serviced at a time: a
// second client connecting while the first is alive simply queues in
// Accept's backlog.
func (b *Bridge) handleConnection(conn net.Conn) {
	b.outgoing <- writerCommand{connect: conn}
	defer func() { b.outgoing <- writerCommand{disconnect: true} }()
	defer conn.Close()

	r := bufio.NewReader(conn)
	for {
		body, err := ReadMessage(r)
		if err != nil {
			if b.log != nil {
				b.log.Logf(logger.Allow, "dap", "connection closed: %v", err)
			}
			return
		}

		var env Envelope
		if err := unmarshalEnvelope(body, &env); err != nil {
			if b.log != nil {
				b.log.Logf(logger.Allow, "dap", "malformed message: %v", err)
			}
			continue
		}

		b.incoming <- &env
	}
}

func (b *Bridge) writerThread() {
	var conn net.Conn
	for cmd := range b.outgoing {
		switch {
		case cmd.connect != nil:
			conn = cmd.connect
		case cmd.disconnect:
			conn = nil
		default:
			if conn != nil {
				_ = WriteMessage(conn, cmd.body)
			}
		}
	}
}

func (b *Bridge) send(env Envelope) {
	b.seq++
	env.Seq = b.seq
	body, err := marshalEnvelope(env)
	if err != nil {
		return
	}
	b.outgoing <- writerCommand{body: body}
}

// Poll drains any requests that arrived since the last call and runs the
// debugger core's own per-instruction bookkeeping. It must be called once
// per CPU instruction boundary from the emulation loop, the same place
// debugger.Core.Update is called from.
func (b *Bridge) Poll() {
	b.core.Update()

	for {
		select {
		case env := <-b.incoming:
			b.dispatch(env)
		default:
			if b.core.HasJustPaused() {
				b.sendStopped()
			}
			return
		}
	}
}

func (b *Bridge) sendStopped() {
	body, _ := marshalBody(StoppedBody{Reason: b.core.StopReason().String(), ThreadID: 1})
	b.send(Envelope{Type: "event", Event: "stopped", Body: body})
}
