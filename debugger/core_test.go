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

package debugger_test

import (
	"testing"

	"github.com/bl-nero/steampunk-sub000/debugger"
	"github.com/bl-nero/steampunk-sub000/test"
)

// fakeMachine is a scripted Inspector: each call to tick() advances pc by
// one and optionally changes the stack depth, always reporting itself at an
// instruction boundary (this package doesn't model cycles, only the
// boundaries the debugger core cares about).
type fakeMachine struct {
	pc    uint16
	depth int
	mem   [0x10000]uint8
}

func (f *fakeMachine) AtInstructionStart() bool { return true }
func (f *fakeMachine) ProgramCounter() uint16   { return f.pc }
func (f *fakeMachine) StackDepth() int          { return f.depth }
func (f *fakeMachine) Peek(addr uint16) (uint8, error) {
	return f.mem[addr], nil
}

func (f *fakeMachine) tick() {
	f.pc++
}

func TestCoreStartsPaused(t *testing.T) {
	m := &fakeMachine{}
	c := debugger.NewCore(m)
	test.ExpectEquality(t, c.Paused(), true)
	test.ExpectEquality(t, c.StopReason(), debugger.StopEntry)
}

func TestResumeRunsUntilBreakpoint(t *testing.T) {
	m := &fakeMachine{}
	c := debugger.NewCore(m)
	c.SetBreakpoint(5)
	c.Resume()

	for i := 0; i < 10 && !c.Paused(); i++ {
		m.tick()
		c.Update()
	}

	test.ExpectEquality(t, c.Paused(), true)
	test.ExpectEquality(t, m.pc, uint16(5))
	test.ExpectEquality(t, c.StopReason(), debugger.StopBreakpoint)
	test.ExpectEquality(t, c.HasJustPaused(), true)
	test.ExpectEquality(t, c.HasJustPaused(), false) // one-shot
}

func TestStepInHaltsNextInstruction(t *testing.T) {
	m := &fakeMachine{pc: 100}
	c := debugger.NewCore(m)
	c.StepIn()

	m.tick()
	c.Update()

	test.ExpectEquality(t, c.Paused(), true)
	test.ExpectEquality(t, m.pc, uint16(101))
}

func TestStepOverSkipsDeeperCalls(t *testing.T) {
	m := &fakeMachine{pc: 0, depth: 0xff}
	c := debugger.NewCore(m)
	c.StepOver()

	// simulate a JSR: depth drops (stack grows down) then a handful of
	// instructions execute inside the subroutine before returning.
	m.depth = 0xfd
	m.tick()
	c.Update()
	test.ExpectEquality(t, c.Paused(), false) // still inside the call

	m.depth = 0xfe
	m.tick()
	c.Update()
	test.ExpectEquality(t, c.Paused(), false)

	m.depth = 0xff // RTS has restored the depth
	m.tick()
	c.Update()
	test.ExpectEquality(t, c.Paused(), true)
}

func TestPauseTakesEffectAtNextBoundary(t *testing.T) {
	m := &fakeMachine{}
	c := debugger.NewCore(m)
	c.Resume()
	c.Pause()

	test.ExpectEquality(t, c.Paused(), false) // not yet - no boundary has passed

	m.tick()
	c.Update()
	test.ExpectEquality(t, c.Paused(), true)
	test.ExpectEquality(t, c.StopReason(), debugger.StopPause)
}
