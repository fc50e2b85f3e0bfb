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

// Package ports models the two joystick-style peripherals connected to the
// RIOT's I/O pins. Direction and fire state live here; the RIOT chip reads
// it back each time software reads SWCHA or the INPT latches, by way of
// the "grounded pins force zero" rule described for PA in spec §4.4.
package ports

import (
	"sync"

	"github.com/bl-nero/steampunk-sub000/hardware/riot/ports/plugging"
)

// Action identifies a single joystick input. Up/Down/Left/Right/Fire set
// the corresponding bit; Centre and NoFire clear them. There is no separate
// press/release pair because a digital joystick pin is either grounded or
// it isn't.
type Action int

const (
	Centre Action = iota
	Up
	Down
	Left
	Right
	Fire
	NoFire
)

// InputEvent is one joystick input directed at a specific port.
type InputEvent struct {
	Port   plugging.PortID
	Action Action
}

// Direction bit positions within a port's pin byte, matching SWCHA: bit 0
// right, bit 1 left, bit 2 down, bit 3 up (grounded/pressed = 0, matching
// real joystick wiring, where the upper nibble of SWCHA is the left port
// and the lower nibble the right port).
const (
	maskRight = 0x01
	maskLeft  = 0x02
	maskDown  = 0x04
	maskUp    = 0x08
)

// port holds the live state of one joystick-style peripheral.
type port struct {
	mu         sync.Mutex
	peripheral plugging.PeripheralID
	directions uint8 // 1 = pressed, opposite polarity to the SWCHA pins
	fire       bool
}

func newPort() *port {
	return &port{peripheral: plugging.PeriphJoystick}
}

func (p *port) handle(a Action) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch a {
	case Centre:
		p.directions = 0
	case Up:
		p.directions |= maskUp
	case Down:
		p.directions |= maskDown
	case Left:
		p.directions |= maskLeft
	case Right:
		p.directions |= maskRight
	case Fire:
		p.fire = true
	case NoFire:
		p.fire = false
	}
}

// pins returns the four direction bits in SWCHA polarity (0 = grounded,
// ie. the direction is held) and whether fire is currently pressed.
func (p *port) pins() (uint8, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ^p.directions & 0x0f, p.fire
}

// Ports is the RIOT's pair of I/O ports.
type Ports struct {
	left  *port
	right *port
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{left: newPort(), right: newPort()}
}

// HandleInputEvent forwards ev to the peripheral plugged into its port.
// The bool result reports whether the event was understood.
func (p *Ports) HandleInputEvent(ev InputEvent) (bool, error) {
	switch ev.Port {
	case plugging.PortLeft:
		p.left.handle(ev.Action)
	case plugging.PortRight:
		p.right.handle(ev.Action)
	default:
		return false, nil
	}
	return true, nil
}

// PeripheralID reports the kind of peripheral plugged into id.
func (p *Ports) PeripheralID(id plugging.PortID) plugging.PeripheralID {
	switch id {
	case plugging.PortLeft:
		return p.left.peripheral
	case plugging.PortRight:
		return p.right.peripheral
	}
	return plugging.PeriphNone
}

// SWCHA returns the full byte read by the RIOT for the SWCHA register: the
// left port's four direction bits in the upper nibble, the right port's in
// the lower nibble.
func (p *Ports) SWCHA() uint8 {
	l, _ := p.left.pins()
	r, _ := p.right.pins()
	return l<<4 | r
}

// Fire reports whether the fire button on the given port is held, the
// value latched onto INPT4 (left) / INPT5 (right).
func (p *Ports) Fire(id plugging.PortID) bool {
	switch id {
	case plugging.PortLeft:
		_, f := p.left.pins()
		return f
	case plugging.PortRight:
		_, f := p.right.pins()
		return f
	}
	return false
}
