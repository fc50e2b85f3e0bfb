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

// Package datasette models the C64's cassette deck as a device wired to
// CIA1 port B's flag line: every falling edge the decoded pulse stream
// produces is surfaced as a one-cycle pulse the machine's CIA can latch,
// exactly as real KERNAL tape routines expect. Supplemented from
// original_source/c64/src/tape.rs per SPEC_FULL.md's §3 note - the
// distilled spec names the TAP file format (§6) but not the playback
// device that consumes it.
package datasette

import "github.com/bl-nero/steampunk-sub000/cartridgeloader"

// Datasette plays back a decoded Tap pulse stream one CPU cycle at a time.
type Datasette struct {
	pulses []uint32
	index  int

	remaining  uint32
	pressed    bool // PLAY button held
	motorWasOn bool
}

// NewDatasette creates an empty (no tape inserted) Datasette.
func NewDatasette() *Datasette {
	return &Datasette{}
}

// Insert loads a decoded tape image and rewinds to its start.
func (d *Datasette) Insert(tap cartridgeloader.Tap) {
	d.pulses = tap.Pulses
	d.index = 0
	d.remaining = 0
	if len(d.pulses) > 0 {
		d.remaining = d.pulses[0]
	}
}

// Press simulates pushing the PLAY button on the deck.
func (d *Datasette) Press(pressed bool) {
	d.pressed = pressed
}

// Tick advances the deck by one CPU cycle. motorOn reflects the CIA's motor
// control output (only while asserted does tape actually move). pulse is
// true for exactly the one cycle on which a pulse's falling edge occurs,
// ready to be latched onto CIA1 port B's flag input.
func (d *Datasette) Tick(motorOn bool) (buttonPressed bool, pulse bool) {
	if !motorOn || !d.pressed || d.index >= len(d.pulses) {
		d.motorWasOn = motorOn
		return d.pressed, false
	}

	if !d.motorWasOn {
		// motor just started: begin counting down the current pulse afresh
		// rather than from wherever the deck happened to stop.
		d.remaining = d.pulses[d.index]
	}
	d.motorWasOn = true

	if d.remaining == 0 {
		d.index++
		if d.index >= len(d.pulses) {
			return d.pressed, false
		}
		d.remaining = d.pulses[d.index]
	}

	d.remaining--
	if d.remaining == 0 {
		return d.pressed, true
	}
	return d.pressed, false
}

// AtEnd reports whether playback has consumed every pulse in the inserted
// tape.
func (d *Datasette) AtEnd() bool {
	return len(d.pulses) == 0 || d.index >= len(d.pulses)
}
