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

// Package cia implements the Commodore 64's 6526 Complex Interface Adapter:
// two 8 bit I/O ports plus two free-running 16 bit timers, each with its own
// control register. The C64 has two of these chips (CIA1 drives the
// keyboard matrix and joystick ports and feeds the CPU's IRQ line; CIA2
// drives the serial bus and VIC bank select and feeds NMI) - this type
// models a single chip, and hardware/c64 instantiates it twice.
//
// Unsupported control-register bits (every RUNMODE/INMODE combination
// beyond plain phi2 counting, and every interrupt source beyond the two
// timers) return WriteError per SPEC_FULL.md's supplement: the original
// source this was grounded on documents only "allow stopping timers" and
// "allow disabling interrupts" as implemented, so anything else is
// rejected rather than silently ignored.
package cia

import (
	"github.com/bl-nero/steampunk-sub000/errors"
)

// register offsets within a CIA's 16 byte chip-select window.
const (
	regPRA    = 0x0
	regPRB    = 0x1
	regDDRA   = 0x2
	regDDRB   = 0x3
	regTALO   = 0x4
	regTAHI   = 0x5
	regTBLO   = 0x6
	regTBHI   = 0x7
	regTODTEN = 0x8
	regSDR    = 0xc
	regICR    = 0xd
	regCRA    = 0xe
	regCRB    = 0xf
)

// control register bits this implementation understands. Any bit outside
// crSupported being set on a write is a WriteError.
const (
	crSTART   = 0x01
	crRUNMODE = 0x08 // 0 = continuous, 1 = one-shot
	crLOAD    = 0x10 // force-load latch into counter, this cycle only

	crSupportedMask = crSTART | crRUNMODE | crLOAD
)

// icr bits.
const (
	icrTA  = 0x01
	icrTB  = 0x02
	icrSET = 0x80 // write: 1 = set the masked bits, 0 = clear them
	icrIR  = 0x80 // read: an interrupt is pending
)

// timer is one of the CIA's two 16 bit interval timers: a latch (reloaded
// on LOAD or on underflow in continuous mode), a live counter and the
// handful of control bits this implementation supports.
type timer struct {
	latch   uint16
	counter uint16
	started bool
	oneShot bool
	flagged bool // underflowed since last ICR read
}

func (t *timer) writeLo(v uint8) {
	t.latch = t.latch&0xff00 | uint16(v)
}

func (t *timer) writeHi(v uint8) {
	t.latch = t.latch&0x00ff | uint16(v)<<8
	if !t.started {
		t.counter = t.latch
	}
}

func (t *timer) writeControl(v uint8) error {
	if v&^uint8(crSupportedMask) != 0 {
		return errors.Errorf(errors.UnknownRegister, "CIA", v)
	}
	t.oneShot = v&crRUNMODE != 0
	if v&crLOAD != 0 {
		t.counter = t.latch
	}
	t.started = v&crSTART != 0
	return nil
}

func (t *timer) control() uint8 {
	var v uint8
	if t.started {
		v |= crSTART
	}
	if t.oneShot {
		v |= crRUNMODE
	}
	return v
}

// tick decrements the counter by one phi2 cycle; on underflow it reloads
// from the latch (always - the real chip always reloads, continuous mode
// just differs in whether START stays set) and stops if one-shot.
func (t *timer) tick() {
	if !t.started {
		return
	}
	if t.counter == 0 {
		t.counter = t.latch
		t.flagged = true
		if t.oneShot {
			t.started = false
		}
		return
	}
	t.counter--
}

// Port is one of the chip's two 8 bit I/O ports: pins driven from outside,
// a direction register (1 = output) and an output latch, combined by the
// same rule RIOT uses (spec §4.4/§8 property 9).
type Port struct {
	Pins      uint8
	direction uint8
	latch     uint8
}

func (p *Port) read() uint8 {
	return (p.direction & p.latch) | (^p.direction & p.Pins)
}

// CIA is a single 6526 chip: two ports, two timers, and an interrupt
// control register gating which of the two timer-underflow sources reaches
// the chip's IRQ output pin.
type CIA struct {
	PortA, PortB Port

	timerA, timerB timer

	icrMask uint8
}

// NewCIA creates a CIA chip with both timers stopped and both ports
// configured fully as inputs.
func NewCIA() *CIA {
	return &CIA{}
}

// Step advances the chip by one phi2 (CPU) cycle. Timer B can additionally
// be configured to count timer A underflows on real hardware; this
// implementation only supports the common phi2-counting mode for both
// timers, per the package doc's documented restriction.
func (c *CIA) Step() {
	c.timerA.tick()
	c.timerB.tick()
}

// Interrupt reports whether this chip's IRQ output pin is currently
// asserted: true once a timer whose interrupt source is unmasked in icrMask
// has underflowed since the last ICR read.
func (c *CIA) Interrupt() bool {
	return (c.timerA.flagged && c.icrMask&icrTA != 0) || (c.timerB.flagged && c.icrMask&icrTB != 0)
}

// Read services a CPU read at a CIA-local offset.
func (c *CIA) Read(offset uint16) (uint8, error) {
	switch offset & 0xf {
	case regPRA:
		return c.PortA.read(), nil
	case regPRB:
		return c.PortB.read(), nil
	case regDDRA:
		return c.PortA.direction, nil
	case regDDRB:
		return c.PortB.direction, nil
	case regTALO:
		return uint8(c.timerA.counter), nil
	case regTAHI:
		return uint8(c.timerA.counter >> 8), nil
	case regTBLO:
		return uint8(c.timerB.counter), nil
	case regTBHI:
		return uint8(c.timerB.counter >> 8), nil
	case regICR:
		var v uint8
		if c.timerA.flagged {
			v |= icrTA
		}
		if c.timerB.flagged {
			v |= icrTB
		}
		if v&c.icrMask != 0 {
			v |= icrIR
		}
		c.timerA.flagged = false
		c.timerB.flagged = false
		return v, nil
	case regCRA:
		return c.timerA.control(), nil
	case regCRB:
		return c.timerB.control(), nil
	}
	return 0, nil
}

// Peek reads offset without side effects (no ICR acknowledgement), for
// debugger use.
func (c *CIA) Peek(offset uint16) (uint8, error) {
	switch offset & 0xf {
	case regICR:
		var v uint8
		if c.timerA.flagged {
			v |= icrTA
		}
		if c.timerB.flagged {
			v |= icrTB
		}
		if v&c.icrMask != 0 {
			v |= icrIR
		}
		return v, nil
	}
	return c.Read(offset)
}

// Write services a CPU write at a CIA-local offset.
func (c *CIA) Write(offset uint16, value uint8) error {
	switch offset & 0xf {
	case regPRA:
		c.PortA.latch = value
	case regPRB:
		c.PortB.latch = value
	case regDDRA:
		c.PortA.direction = value
	case regDDRB:
		c.PortB.direction = value
	case regTALO:
		c.timerA.writeLo(value)
	case regTAHI:
		c.timerA.writeHi(value)
	case regTBLO:
		c.timerB.writeLo(value)
	case regTBHI:
		c.timerB.writeHi(value)
	case regICR:
		if value&^uint8(icrSET|icrTA|icrTB) != 0 {
			return errors.Errorf(errors.UnknownRegister, "CIA", value)
		}
		if value&icrSET != 0 {
			c.icrMask |= value &^ icrSET
		} else {
			c.icrMask &^= value
		}
	case regCRA:
		return c.timerA.writeControl(value)
	case regCRB:
		return c.timerB.writeControl(value)
	case regSDR, regTODTEN:
		// serial shift register and time-of-day clock are not modelled;
		// accept writes silently (reads always return zero via the default
		// case in Read/Peek), matching the package doc's scope note.
	}
	return nil
}
