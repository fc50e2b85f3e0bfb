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

import (
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/execution"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/instructions"
)

// beginInterrupt consumes the first cycle of a seven cycle interrupt
// sequence (BRK, or a hardware IRQ/NMI) and queues up the remaining six.
//
// For a hardware interrupt the first cycle is a throwaway fetch of the
// opcode at the current PC - the processor doesn't yet know it's about to
// be interrupted, so it starts decoding as normal, and the PC is not
// advanced. For BRK the first cycle is the real opcode fetch (PC already
// advanced past it by the caller) and is followed by a second, padding byte
// that is fetched and discarded.
func (c *CPU) beginInterrupt(vector uint16, isBRK bool) error {
	if !isBRK {
		if _, err := c.read(c.PC.Value()); err != nil {
			return err
		}
		c.opAddress = c.PC.Value()
		c.defn = instructions.Definition{
			Operator: "IRQ",
			Bytes:    1,
			Cycles:   7,
			Category: instructions.Interrupt,
		}
		if vector == vectorNMI {
			c.defn.Operator = "NMI"
		}
	}

	c.LastResult = execution.Result{
		Defn:      &c.defn,
		Address:   c.opAddress,
		ByteCount: 1,
		Final:     false,
	}

	pushBreak := isBRK

	c.steps = []microstep{
		func(c *CPU) error {
			if isBRK {
				// the padding/signature byte following the BRK opcode
				_, err := c.read(c.PC.Value())
				c.PC.Add(1)
				return err
			}
			// second phantom read of a hardware IRQ/NMI sequence, re-reading
			// the same PC as the throwaway fetch in beginInterrupt. PC is not
			// advanced. Side effects on memory-mapped devices (eg. RIOT
			// INTIM's read-clears-flag behaviour) still apply.
			_, err := c.read(c.PC.Value())
			return err
		},
		func(c *CPU) error { return c.pushStack(uint8(c.PC.Value() >> 8)) },
		func(c *CPU) error { return c.pushStack(uint8(c.PC.Value() & 0xff)) },
		func(c *CPU) error {
			sr := c.Status
			sr.Break = pushBreak
			return c.pushStack(sr.Value())
		},
		func(c *CPU) error {
			lo, err := c.read(vector)
			if err != nil {
				return err
			}
			c.bal = lo
			return nil
		},
		func(c *CPU) error {
			hi, err := c.read(vector + 1)
			if err != nil {
				return err
			}
			c.PC.Load(uint16(hi)<<8 | uint16(c.bal))
			c.Status.InterruptDisable = true
			return nil
		},
	}
	c.step = 0

	return nil
}
