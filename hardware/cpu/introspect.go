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

package cpu

import "github.com/bl-nero/steampunk-sub000/hardware/memory/bus"

// PredictRTS returns the address an RTS instruction would return to if the
// stack were unwound right now, without otherwise disturbing the processor.
// A disassembler walking the address space ahead of real execution uses
// this to show the effect of a JSR/RTS pair without having to simulate the
// intervening subroutine.
func (c *CPU) PredictRTS() (uint16, error) {
	sp := c.SP
	sp.Load(sp.Value() + 1)
	lo, err := c.read(sp.Address())
	if err != nil {
		return 0, err
	}
	sp.Load(sp.Value() + 1)
	hi, err := c.read(sp.Address())
	if err != nil {
		return 0, err
	}
	return (uint16(hi)<<8 | uint16(lo)) + 1, nil
}

// InspectMemory reads a single byte for display purposes, using the bus's
// debugger-facing Peek method where available so that the read has no side
// effects (unlike a normal CPU read, which can trigger chip registers).
func (c *CPU) InspectMemory(address uint16) (uint8, error) {
	if dbg, ok := c.mem.(bus.DebuggerBus); ok {
		v, err := dbg.Peek(address)
		if err != nil {
			return 0, err
		}
		return v, nil
	}
	return c.read(address)
}
