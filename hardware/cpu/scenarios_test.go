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

// TestScenarioALoadThenStoreZeroPage reproduces LDA #$0A; STA $14 at $F000,
// reset vector $F000: after reset and five cycles, $14 holds $0A.
func TestScenarioALoadThenStoreZeroPage(t *testing.T) {
	mem := newMockMemory()
	prog := []uint8{0xa9, 0x0a, 0x85, 0x14}
	for i, op := range prog {
		mem.data[0xf000+i] = op
	}
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0xf0

	c := cpu.New(mem, nil)
	test.ExpectSuccess(t, c.Reset())
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0xf000))

	cycles := runInstruction(t, c) // LDA #$0a
	cycles += runInstruction(t, c) // STA $14

	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, mem.data[0x14], uint8(0x0a))
}

// TestScenarioDFullRoundTrip completes TestJSRThenRTS: JSR $F009 from
// $F000, where $F009 holds LDA #$22 followed by RTS, must return control to
// $F003 with A=$22. JSR and RTS cost 6 cycles apiece and the intervening
// immediate load costs 2, for 14 cycles total.
func TestScenarioDFullRoundTrip(t *testing.T) {
	mem := newMockMemory()
	mem.data[0xf000] = 0x20 // JSR $F009
	mem.data[0xf001] = 0x09
	mem.data[0xf002] = 0xf0
	mem.data[0xf009] = 0xa9 // LDA #$22
	mem.data[0xf00a] = 0x22
	mem.data[0xf00b] = 0x60 // RTS
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0xf0

	c := cpu.New(mem, nil)
	test.ExpectSuccess(t, c.Reset())
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0xf000))

	cycles := runInstruction(t, c) // JSR $F009
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0xf009))

	cycles += runInstruction(t, c) // LDA #$22
	test.ExpectEquality(t, c.A.Value(), uint8(0x22))

	cycles += runInstruction(t, c) // RTS
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0xf003))

	test.ExpectEquality(t, cycles, 14)
}
