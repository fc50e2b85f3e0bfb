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

package cpu_test

import (
	"testing"

	"github.com/bl-nero/steampunk-sub000/hardware/cpu"
	"github.com/bl-nero/steampunk-sub000/test"
)

// bcd packs a decimal value in [0,99] into its BCD byte encoding.
func bcd(n int) uint8 {
	return uint8((n/10)<<4 | (n % 10))
}

// TestDecimalAdditionAllBCDOperands exhaustively checks ADC in decimal mode
// against plain base-10 addition for every a,b in [0,99] and both values of
// the incoming carry: the accumulator must hold bcd((a+b+carry) % 100) and
// the carry flag must reflect whether that sum reached 100.
func TestDecimalAdditionAllBCDOperands(t *testing.T) {
	mem := newMockMemory()
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0x10
	c := cpu.New(mem, nil)

	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for _, carryIn := range []bool{false, true} {
				// SED; CLC|SEC; LDA #a; ADC #b
				prog := []uint8{0xf8, 0x18, 0xa9, bcd(a), 0x69, bcd(b)}
				if carryIn {
					prog[1] = 0x38
				}
				for i, op := range prog {
					mem.data[0x1000+i] = op
				}

				test.ExpectSuccess(t, c.Reset())
				runInstruction(t, c) // SED
				runInstruction(t, c) // CLC/SEC
				runInstruction(t, c) // LDA
				runInstruction(t, c) // ADC

				sum := a + b
				if carryIn {
					sum++
				}
				test.ExpectEquality(t, c.A.Value(), bcd(sum%100))
				test.ExpectEquality(t, c.Status.Carry, sum >= 100)
			}
		}
	}
}

// TestDecimalSubtractionAllBCDOperands is the SBC counterpart of
// TestDecimalAdditionAllBCDOperands: the accumulator must hold
// bcd((a-b-borrow) mod 100) and the carry flag (no-borrow convention) must
// reflect whether a-b-borrow stayed non-negative.
func TestDecimalSubtractionAllBCDOperands(t *testing.T) {
	mem := newMockMemory()
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0x10
	c := cpu.New(mem, nil)

	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for _, carryIn := range []bool{false, true} {
				// SED; CLC|SEC; LDA #a; SBC #b
				prog := []uint8{0xf8, 0x18, 0xa9, bcd(a), 0xe9, bcd(b)}
				if carryIn {
					prog[1] = 0x38
				}
				for i, op := range prog {
					mem.data[0x1000+i] = op
				}

				test.ExpectSuccess(t, c.Reset())
				runInstruction(t, c) // SED
				runInstruction(t, c) // CLC/SEC
				runInstruction(t, c) // LDA
				runInstruction(t, c) // SBC

				diff := a - b
				if !carryIn {
					diff--
				}
				want := ((diff % 100) + 100) % 100
				test.ExpectEquality(t, c.A.Value(), bcd(want))
				test.ExpectEquality(t, c.Status.Carry, diff >= 0)
			}
		}
	}
}

// TestScenarioBOverflowingBinaryAddition reproduces CLC; LDA #$45; ADC #$2A;
// ADC #$20 in binary mode: the second add crosses from a positive sum into
// negative territory, setting both N and V while leaving C clear.
func TestScenarioBOverflowingBinaryAddition(t *testing.T) {
	c, _ := loadProgram(t, 0x18, 0xa9, 0x45, 0x69, 0x2a, 0x69, 0x20)

	runInstruction(t, c) // CLC
	runInstruction(t, c) // LDA #$45
	runInstruction(t, c) // ADC #$2a
	runInstruction(t, c) // ADC #$20

	test.ExpectEquality(t, c.A.Value(), uint8(0x8f))
	test.ExpectSuccess(t, c.Status.Sign)
	test.ExpectSuccess(t, c.Status.Overflow)
	test.ExpectFailure(t, c.Status.Carry)
}

// TestScenarioCDecimalAddition reproduces SED; CLC; LDA #$45; ADC #$68.
func TestScenarioCDecimalAddition(t *testing.T) {
	c, _ := loadProgram(t, 0xf8, 0x18, 0xa9, 0x45, 0x69, 0x68)

	runInstruction(t, c) // SED
	runInstruction(t, c) // CLC
	runInstruction(t, c) // LDA #$45
	runInstruction(t, c) // ADC #$68

	test.ExpectEquality(t, c.A.Value(), uint8(0x13))
	test.ExpectSuccess(t, c.Status.Carry)
	test.ExpectSuccess(t, c.Status.DecimalMode)
}
