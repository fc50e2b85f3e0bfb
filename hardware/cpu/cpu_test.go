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

// mockMemory is a flat 64k address space used only to exercise the CPU in
// isolation, with no chip side effects of any kind.
type mockMemory struct {
	data [0x10000]uint8
}

func newMockMemory() *mockMemory {
	return &mockMemory{}
}

func (m *mockMemory) Read(address uint16) (uint8, error) {
	return m.data[address], nil
}

func (m *mockMemory) Write(address uint16, data uint8) error {
	m.data[address] = data
	return nil
}

// loadProgram writes prog starting at 0x1000 and points the reset vector at
// it, then runs Reset(), which completes the reset sequence in one call and
// leaves the PC at the start of the program.
func loadProgram(t *testing.T, prog ...uint8) (*cpu.CPU, *mockMemory) {
	t.Helper()

	mem := newMockMemory()
	for i, b := range prog {
		mem.data[0x1000+i] = b
	}
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0x10

	c := cpu.New(mem, nil)
	test.ExpectSuccess(t, c.Reset())
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0x1000))

	return c, mem
}

// runInstruction ticks the CPU until it returns to an instruction boundary,
// returning the number of ticks (cycles) it took.
func runInstruction(t *testing.T, c *cpu.CPU) int {
	t.Helper()

	cycles := 0
	for {
		test.ExpectSuccess(t, c.Tick())
		cycles++
		if c.AtInstructionStart() {
			return cycles
		}
	}
}

func TestImmediateLDA(t *testing.T) {
	c, _ := loadProgram(t, 0xa9, 0x42) // LDA #$42

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, c.A.Value(), uint8(0x42))
	test.ExpectFailure(t, c.Status.Zero)
	test.ExpectFailure(t, c.Status.Sign)
}

func TestZeroFlagOnLDA(t *testing.T) {
	c, _ := loadProgram(t, 0xa9, 0x00) // LDA #$00

	runInstruction(t, c)
	test.ExpectSuccess(t, c.Status.Zero)
}

func TestAbsoluteIndexedNoPageCross(t *testing.T) {
	c, mem := loadProgram(t, 0xbd, 0x00, 0x20) // LDA $2000,X
	mem.data[0x2005] = 0x99
	c.X.Load(0x05)

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, c.A.Value(), uint8(0x99))
}

func TestAbsoluteIndexedPageCross(t *testing.T) {
	c, mem := loadProgram(t, 0xbd, 0xff, 0x20) // LDA $20ff,X
	mem.data[0x2101] = 0x77
	c.X.Load(0x02)

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, c.A.Value(), uint8(0x77))
}

func TestStoreAbsoluteIndexedAlwaysTakesFixupCycle(t *testing.T) {
	c, mem := loadProgram(t, 0x9d, 0x00, 0x20) // STA $2000,X
	c.X.Load(0x01)
	c.A.Load(0x55)

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, mem.data[0x2001], uint8(0x55))
}

func TestBranchNotTaken(t *testing.T) {
	c, _ := loadProgram(t, 0xd0, 0x10) // BNE +16
	c.Status.Zero = true

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0x1002))
}

func TestBranchTakenNoPageCross(t *testing.T) {
	c, _ := loadProgram(t, 0xd0, 0x10) // BNE +16
	c.Status.Zero = false

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 3)
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0x1012))
}

func TestJSRThenRTS(t *testing.T) {
	c, _ := loadProgram(t, 0x20, 0x00, 0x20) // JSR $2000

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 6)
	test.ExpectEquality(t, c.ProgramCounter(), uint16(0x2000))
}

func TestIncDecRoundTrip(t *testing.T) {
	c, mem := loadProgram(t, 0xe6, 0x80) // INC $80
	mem.data[0x80] = 0xff

	cycles := runInstruction(t, c)
	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, mem.data[0x80], uint8(0x00))
	test.ExpectSuccess(t, c.Status.Zero)
}

func TestUnknownOpcodeReturnsError(t *testing.T) {
	c, _ := loadProgram(t, 0xff)

	test.ExpectFailure(t, c.Tick() == nil)
}

func TestJamOpcodeHalts(t *testing.T) {
	c, _ := loadProgram(t, 0x02)

	test.ExpectSuccess(t, c.Tick())
	test.ExpectSuccess(t, c.Halted())
	test.ExpectFailure(t, c.Tick() == nil)
}
