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

// Package riot implements the 6532 RIOT chip: a programmable interval timer
// plus two 8 bit I/O ports, each with its own direction register. The VCS
// wires port A to the two joystick-style peripherals (see the ports
// sub-package) and port B to the console's front panel switches.
//
// RIOT is ticked once per CPU cycle regardless of WSYNC: unlike the CPU, the
// timer and edge detector keep running while the processor is held waiting
// for the end of a scanline.
package riot

import (
	"github.com/bl-nero/steampunk-sub000/hardware/riot/ports"
)

// register offsets, local to the RIOT's 128 byte chip-select window (ie.
// already masked by memorymap.MapAddress).
const (
	regSWCHA  = 0x00
	regSWACNT = 0x01
	regSWCHB  = 0x02
	regSWBCNT = 0x03
	regINTIM  = 0x04
	regTIMINT = 0x05
	regTIM1T  = 0x14
	regTIM8T  = 0x15
	regTIM64T = 0x16
	regTIM1KT = 0x17
)

// Panel models the console's front panel switches, read back through port
// B. Unlike the joystick ports these are plain booleans with no plugging
// concept: there is always exactly one front panel.
type Panel struct {
	Reset       bool
	Select      bool
	Color       bool // true = color, false = black & white
	Difficulty0 bool // true = amateur (B position)
	Difficulty1 bool
}

// pins returns the panel state in SWCHB polarity: bit 0 reset (0 = pressed),
// bit 1 select (0 = pressed), bit 3 color/bw, bits 6/7 difficulty.
func (p Panel) pins() uint8 {
	v := uint8(0xff)
	if p.Reset {
		v &^= 0x01
	}
	if p.Select {
		v &^= 0x02
	}
	if !p.Color {
		v &^= 0x08
	}
	if p.Difficulty0 {
		v &^= 0x40
	}
	if p.Difficulty1 {
		v &^= 0x80
	}
	return v
}

// RIOT is a single 6532 chip: one programmable timer and two I/O ports.
type RIOT struct {
	Ports *ports.Ports
	Panel Panel

	// port A/B direction registers: 1 = output.
	ddrA, ddrB uint8

	// output latches, driven by the CPU and read back on pins configured
	// as output.
	latchA, latchB uint8

	// timer. interval is the number of RIOT cycles per INTIM decrement in
	// "slow" mode: 1, 8, 64 or 1024.
	interval int
	divider  int
	intim    uint8
	fast     bool
	underflow bool

	// PA7 edge detection.
	pa7Positive bool
	pa7Last     bool
	pa7Flag     bool
}

// NewRIOT creates a RIOT chip wired to a fresh pair of joystick ports.
func NewRIOT() *RIOT {
	r := &RIOT{
		Ports:    ports.NewPorts(),
		interval: 1024,
		divider:  1023,
	}
	return r
}

// Seed initialises the divider and INTIM with startup entropy, mimicking
// the real chip's undefined power-on state. entropy is any single byte
// source; tests pass a fixed value for determinism.
func (r *RIOT) Seed(entropy uint8) {
	r.intim = entropy
	r.divider = int(entropy) % r.interval
}

// Step advances the RIOT by one cycle. It must be called for every cycle
// the master clock reports as a riot_tick, independent of whether the CPU
// itself is ticking (WSYNC does not stop the RIOT).
func (r *RIOT) Step() {
	if r.fast {
		r.intim--
		r.tickPA7()
		return
	}

	r.divider--
	if r.divider < 0 {
		r.divider = r.interval - 1
		prev := r.intim
		r.intim--
		if prev == 0 {
			r.underflow = true
			r.fast = true
		}
	}

	r.tickPA7()
}

func (r *RIOT) tickPA7() {
	pa7 := r.Ports.SWCHA()&0x80 != 0
	edge := (r.pa7Positive && pa7 && !r.pa7Last) || (!r.pa7Positive && !pa7 && r.pa7Last)
	if edge {
		r.pa7Flag = true
	}
	r.pa7Last = pa7
}

// timint assembles the TIMINT status byte: bit 7 timer underflow, bit 6 PA7
// edge.
func (r *RIOT) timint() uint8 {
	var v uint8
	if r.underflow {
		v |= 0x80
	}
	if r.pa7Flag {
		v |= 0x40
	}
	return v
}

// effective implements the "(direction AND latch) OR (NOT direction AND
// pins)" rule common to both RIOT and CIA ports.
func effective(direction, latch, pins uint8) uint8 {
	return (direction & latch) | (^direction & pins)
}

// Read services a CPU read at a RIOT-local offset (already masked to the
// chip's 128 byte window by the address decoder). Reading INTIM or TIMINT
// has the side effects documented in spec §4.4; every other offset reads
// back the corresponding I/O register with no side effect worth modelling
// separately from Peek.
func (r *RIOT) Read(offset uint16) uint8 {
	switch offset {
	case regSWCHA:
		return effective(r.ddrA, r.latchA, r.Ports.SWCHA())
	case regSWACNT:
		return r.ddrA
	case regSWCHB:
		return effective(r.ddrB, r.latchB, r.Panel.pins())
	case regSWBCNT:
		return r.ddrB
	case regINTIM:
		v := r.intim
		if r.fast {
			r.fast = false
			r.underflow = false
			r.divider = r.interval - 1
		}
		return v
	case regTIMINT:
		v := r.timint()
		r.pa7Flag = false
		return v
	}
	return 0
}

// Peek reads offset without the side effects Read() has on the timer or
// PA7 flag, for use by a debugger.
func (r *RIOT) Peek(offset uint16) uint8 {
	switch offset {
	case regSWCHA:
		return effective(r.ddrA, r.latchA, r.Ports.SWCHA())
	case regSWACNT:
		return r.ddrA
	case regSWCHB:
		return effective(r.ddrB, r.latchB, r.Panel.pins())
	case regSWBCNT:
		return r.ddrB
	case regINTIM:
		return r.intim
	case regTIMINT:
		return r.timint()
	}
	return 0
}

// Write services a CPU write at a RIOT-local offset.
func (r *RIOT) Write(offset uint16, data uint8) {
	switch offset {
	case regSWCHA:
		r.latchA = data
	case regSWACNT:
		r.ddrA = data
	case regSWCHB:
		r.latchB = data
	case regSWBCNT:
		r.ddrB = data
	case regTIM1T:
		r.setTimer(1, data)
	case regTIM8T:
		r.setTimer(8, data)
	case regTIM64T:
		r.setTimer(64, data)
	case regTIM1KT:
		r.setTimer(1024, data)
	}
}

func (r *RIOT) setTimer(interval int, value uint8) {
	r.interval = interval
	r.divider = interval - 1
	r.intim = value
	r.fast = false
	r.underflow = false
}

// INTIM returns the timer's current value without side effects, for
// debugger inspection.
func (r *RIOT) INTIM() uint8 {
	return r.intim
}
