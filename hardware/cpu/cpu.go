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

// Package cpu implements a 6502 core one clock cycle at a time. Unlike an
// interpreter that runs a whole instruction per call, Tick() advances the
// processor by exactly one micro-cycle, so that a caller (the TIA in the
// Atari machine, the VIC-II/CIA pair in the C64 machine) can sit in between
// every CPU cycle and decide what the rest of the system does before the
// next one happens.
//
// An instruction is decoded into a queue of micro-step closures the moment
// its opcode is fetched. Tick() runs one closure per call. Some closures
// shorten the queue at runtime - for example an indexed addressing mode
// that turns out not to cross a page boundary collapses its last step away
// - which is how a single, fixed decode can still produce the handful of
// different cycle counts the 6502 is known for.
package cpu

import (
	"github.com/bl-nero/steampunk-sub000/errors"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/execution"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/instructions"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu/registers"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/bus"
	"github.com/bl-nero/steampunk-sub000/logger"
)

// Vectors used by RESET, IRQ/BRK and NMI to locate their service routines.
const (
	vectorNMI   = 0xfffa
	vectorRESET = 0xfffc
	vectorIRQ   = 0xfffe
)

// microstep is one clock cycle's worth of CPU-internal work. It may read or
// write the bus at most once.
type microstep func(c *CPU) error

// CPU is a cycle-stepped 6502/6507 core. It knows nothing about the device
// it is wired to beyond the bus.CPUBus interface; everything about timing
// beyond "one Tick equals one cycle" is the caller's responsibility.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Data
	X      registers.Data
	Y      registers.Data
	SP     registers.StackPointer
	Status registers.Status

	mem bus.CPUBus
	log *logger.Logger

	// NoFlowControl is not read by any CPU method: Tick(), interrupt
	// servicing and PredictRTS() behave the same whether or not it is set.
	NoFlowControl bool

	// irqLine is the processor's view of the level-sensitive IRQ line. It
	// is held by whatever chip asserts it (eg. RIOT/CIA timer underflow)
	// until that chip de-asserts it.
	irqLine bool

	// nmiLine/nmiPending implement edge-triggered NMI: nmiPending is
	// latched on the line's rising edge and is cleared only once the
	// interrupt has been serviced.
	nmiLine    bool
	nmiPending bool

	halted bool

	// RDY is the processor's equivalent of the 6502 RDY pin. While held,
	// Tick() does nothing but still counts as having consumed the cycle.
	// The Atari TIA drives this low for the duration of a WSYNC.
	RDY bool

	steps []microstep
	step  int

	defn          instructions.Definition
	opAddress     uint16
	pageCrossed   bool
	branchSuccess bool

	// decode scratch, reused across addressing modes
	bal, bah uint8
	adl, adh uint8

	LastResult execution.Result
}

// New creates a CPU wired to the given bus. log may be nil.
func New(mem bus.CPUBus, log *logger.Logger) *CPU {
	c := &CPU{
		mem: mem,
		log: log,
	}
	c.PC = registers.NewProgramCounter(0)
	c.A = registers.NewData(0, "A")
	c.X = registers.NewData(0, "X")
	c.Y = registers.NewData(0, "Y")
	c.SP = registers.NewStackPointer(0xff)
	c.Status = registers.NewStatus()
	return c
}

// ProgramCounter returns the current value of the program counter.
func (c *CPU) ProgramCounter() uint16 {
	return c.PC.Value()
}

// AtInstructionStart returns true if the next call to Tick() will begin a
// new instruction (or interrupt service routine) rather than continue one
// already in progress.
func (c *CPU) AtInstructionStart() bool {
	return len(c.steps) == 0 && !c.halted
}

// Halted returns true once opcode $02 has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// SetIRQ sets the level of the maskable interrupt line. The line is
// level-sensitive: as long as it is held asserted and the interrupt disable
// flag is clear, IRQs will keep being serviced at every instruction
// boundary.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// SetNMI sets the level of the non-maskable interrupt line. NMI is
// edge-triggered: only the transition from unasserted to asserted schedules
// a service routine.
func (c *CPU) SetNMI(asserted bool) {
	if asserted && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = asserted
}

func (c *CPU) logEvent(tag string, detail interface{}) {
	if c.log != nil {
		c.log.Log(logger.Allow, tag, detail)
	}
}

func (c *CPU) read(address uint16) (uint8, error) {
	v, err := c.mem.Read(address)
	if err != nil {
		return 0, errors.Errorf(ReadError, err)
	}
	return v, nil
}

func (c *CPU) write(address uint16, value uint8) error {
	if err := c.mem.Write(address, value); err != nil {
		return errors.Errorf(WriteError, err)
	}
	return nil
}

// Reset runs the 6502's eight cycle reset sequence: three dummy stack
// accesses (the processor doesn't know yet that it's resetting rather than
// running) followed by reading the reset vector and loading it into PC.
// Unlike a normal instruction, Reset runs to completion in one call: the
// sequence can't usefully be interleaved with anything since nothing else is
// initialised yet either.
func (c *CPU) Reset() error {
	c.halted = false
	c.nmiPending = false
	c.nmiLine = false
	c.irqLine = false
	c.steps = nil
	c.step = 0
	c.Status = registers.NewStatus()
	c.Status.InterruptDisable = true
	c.SP = registers.NewStackPointer(0xff)

	// three dummy reads of the stack/PC area, matching real hardware's
	// belief that it's running a BRK/interrupt until the third cycle
	for i := 0; i < 3; i++ {
		if _, err := c.read(c.SP.Address()); err != nil {
			return err
		}
		c.SP.Load(c.SP.Value() - 1)
	}

	lo, err := c.read(vectorRESET)
	if err != nil {
		return err
	}
	hi, err := c.read(vectorRESET + 1)
	if err != nil {
		return err
	}
	c.PC.Load(uint16(hi)<<8 | uint16(lo))

	return nil
}

// Tick advances the processor by exactly one clock cycle.
func (c *CPU) Tick() error {
	if c.halted {
		return errors.Errorf(CPUHalted)
	}

	if c.RDY {
		return nil
	}

	if len(c.steps) == 0 {
		return c.beginInstruction()
	}

	step := c.steps[c.step]
	c.step++

	if err := step(c); err != nil {
		return err
	}

	if c.step >= len(c.steps) {
		cycles := c.step + 1 // +1 for the opcode fetch cycle
		c.steps = nil
		c.step = 0
		c.LastResult.Final = true
		c.LastResult.Cycles = cycles
		c.LastResult.ByteCount = c.defn.Bytes
		c.LastResult.PageFault = c.pageCrossed
		c.LastResult.BranchSuccess = c.branchSuccess
	}

	return nil
}

// beginInstruction either services a pending interrupt or fetches and
// decodes the next opcode, in both cases consuming the single cycle that
// this call to Tick() represents and queueing up the remaining cycles.
func (c *CPU) beginInstruction() error {
	if c.nmiPending {
		c.nmiPending = false
		return c.beginInterrupt(vectorNMI, false)
	}
	if c.irqLine && !c.Status.InterruptDisable {
		return c.beginInterrupt(vectorIRQ, false)
	}

	c.opAddress = c.PC.Value()

	opcode, err := c.read(c.PC.Value())
	if err != nil {
		return err
	}
	c.PC.Add(1)

	defn := instructions.Definitions[opcode]
	if !defn.IsValid() {
		return errors.Errorf(UnknownOpcode, opcode)
	}

	if defn.Operator == instructions.HLT {
		c.halted = true
		c.logEvent("cpu", "halted by opcode $02")
		return nil
	}

	c.defn = defn
	c.pageCrossed = false
	c.branchSuccess = false
	c.LastResult = execution.Result{
		Defn:      &c.defn,
		Address:   c.opAddress,
		ByteCount: 1,
		Final:     false,
	}

	if defn.Operator == instructions.BRK {
		return c.beginInterrupt(vectorIRQ, true)
	}

	c.steps = c.buildSteps(defn)
	c.step = 0

	return nil
}
