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
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/instructions"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/registers"
)

func (c *CPU) setNZ(v uint8) {
	c.Status.Zero = v == 0
	c.Status.Sign = v&0x80 == 0x80
}

// compare implements the shared logic behind CMP/CPX/CPY: a subtraction
// whose result is discarded, used only to set N, Z and C.
func compare(reg *registers.Data, value uint8) (sign, zero, carry bool) {
	r := *reg
	c, _ := r.Subtract(value, true)
	return r.IsNegative(), r.IsZero(), c
}

// executeRead applies a Read-category operator to a byte fetched from
// memory or from an immediate operand.
func (c *CPU) executeRead(op instructions.Operator, value uint8) {
	switch op {
	case instructions.ADC:
		if c.Status.DecimalMode {
			carry, zero, overflow, sign := c.A.AddDecimal(value, c.Status.Carry)
			c.Status.Carry = carry
			c.Status.Zero = zero
			c.Status.Overflow = overflow
			c.Status.Sign = sign
		} else {
			carry, overflow := c.A.Add(value, c.Status.Carry)
			c.Status.Carry = carry
			c.Status.Overflow = overflow
			c.setNZ(c.A.Value())
		}
	case instructions.SBC:
		if c.Status.DecimalMode {
			carry, zero, overflow, sign := c.A.SubtractDecimal(value, c.Status.Carry)
			c.Status.Carry = carry
			c.Status.Zero = zero
			c.Status.Overflow = overflow
			c.Status.Sign = sign
		} else {
			carry, overflow := c.A.Subtract(value, c.Status.Carry)
			c.Status.Carry = carry
			c.Status.Overflow = overflow
			c.setNZ(c.A.Value())
		}
	case instructions.AND:
		c.A.AND(value)
		c.setNZ(c.A.Value())
	case instructions.ORA:
		c.A.ORA(value)
		c.setNZ(c.A.Value())
	case instructions.EOR:
		c.A.EOR(value)
		c.setNZ(c.A.Value())
	case instructions.LDA:
		c.A.Load(value)
		c.setNZ(c.A.Value())
	case instructions.LDX:
		c.X.Load(value)
		c.setNZ(c.X.Value())
	case instructions.LDY:
		c.Y.Load(value)
		c.setNZ(c.Y.Value())
	case instructions.CMP:
		sign, zero, carry := compare(&c.A, value)
		c.Status.Sign, c.Status.Zero, c.Status.Carry = sign, zero, carry
	case instructions.CPX:
		sign, zero, carry := compare(&c.X, value)
		c.Status.Sign, c.Status.Zero, c.Status.Carry = sign, zero, carry
	case instructions.CPY:
		sign, zero, carry := compare(&c.Y, value)
		c.Status.Sign, c.Status.Zero, c.Status.Carry = sign, zero, carry
	case instructions.BIT:
		c.Status.Zero = c.A.Value()&value == 0
		c.Status.Sign = value&0x80 == 0x80
		c.Status.Overflow = value&0x40 == 0x40
	}
}

// executeRMW applies a ReadModifyWrite-category operator to a byte read
// from memory (or the accumulator) and returns the value to write back.
func (c *CPU) executeRMW(op instructions.Operator, value uint8) uint8 {
	reg := registers.NewData(value, "")
	switch op {
	case instructions.ASL:
		carry := reg.ASL()
		c.Status.Carry = carry
	case instructions.LSR:
		carry := reg.LSR()
		c.Status.Carry = carry
	case instructions.ROL:
		carry := reg.ROL(c.Status.Carry)
		c.Status.Carry = carry
	case instructions.ROR:
		carry := reg.ROR(c.Status.Carry)
		c.Status.Carry = carry
	case instructions.INC:
		reg.Load(reg.Value() + 1)
	case instructions.DEC:
		reg.Load(reg.Value() - 1)
	}
	c.setNZ(reg.Value())
	return reg.Value()
}

// executeAccumulatorRMW applies a ReadModifyWrite-category operator
// directly to the accumulator register, for the Accumulator addressing
// mode (eg. "ASL A").
func (c *CPU) executeAccumulatorRMW(op instructions.Operator) {
	switch op {
	case instructions.ASL:
		c.Status.Carry = c.A.ASL()
	case instructions.LSR:
		c.Status.Carry = c.A.LSR()
	case instructions.ROL:
		c.Status.Carry = c.A.ROL(c.Status.Carry)
	case instructions.ROR:
		c.Status.Carry = c.A.ROR(c.Status.Carry)
	}
	c.setNZ(c.A.Value())
}

// writeValue returns the byte a Write-category instruction stores to
// memory.
func (c *CPU) writeValue(op instructions.Operator) uint8 {
	switch op {
	case instructions.STA:
		return c.A.Value()
	case instructions.STX:
		return c.X.Value()
	case instructions.STY:
		return c.Y.Value()
	}
	return 0
}

// executeImplicit applies an Implicit-category operator: flag clear/set and
// register transfer/increment/decrement instructions that need no operand.
func (c *CPU) executeImplicit(op instructions.Operator) {
	switch op {
	case instructions.CLC:
		c.Status.Carry = false
	case instructions.SEC:
		c.Status.Carry = true
	case instructions.CLD:
		c.Status.DecimalMode = false
	case instructions.SED:
		c.Status.DecimalMode = true
	case instructions.CLI:
		c.Status.InterruptDisable = false
	case instructions.SEI:
		c.Status.InterruptDisable = true
	case instructions.CLV:
		c.Status.Overflow = false
	case instructions.NOP:
	case instructions.INX:
		c.X.Load(c.X.Value() + 1)
		c.setNZ(c.X.Value())
	case instructions.INY:
		c.Y.Load(c.Y.Value() + 1)
		c.setNZ(c.Y.Value())
	case instructions.DEX:
		c.X.Load(c.X.Value() - 1)
		c.setNZ(c.X.Value())
	case instructions.DEY:
		c.Y.Load(c.Y.Value() - 1)
		c.setNZ(c.Y.Value())
	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.setNZ(c.X.Value())
	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.setNZ(c.Y.Value())
	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.setNZ(c.A.Value())
	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.setNZ(c.A.Value())
	case instructions.TSX:
		c.X.Load(uint8(c.SP.Value()))
		c.setNZ(c.X.Value())
	case instructions.TXS:
		c.SP.Load(c.X.Value())
	}
}

// branchTaken reports whether a branch instruction's condition is
// satisfied given the current status flags.
func (c *CPU) branchTaken(op instructions.Operator) bool {
	switch op {
	case instructions.BCC:
		return !c.Status.Carry
	case instructions.BCS:
		return c.Status.Carry
	case instructions.BEQ:
		return c.Status.Zero
	case instructions.BNE:
		return !c.Status.Zero
	case instructions.BMI:
		return c.Status.Sign
	case instructions.BPL:
		return !c.Status.Sign
	case instructions.BVC:
		return !c.Status.Overflow
	case instructions.BVS:
		return c.Status.Overflow
	}
	return false
}
