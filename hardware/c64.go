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

package hardware

import (
	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/hardware/cia"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu"
	"github.com/bl-nero/steampunk-sub000/hardware/datasette"
	"github.com/bl-nero/steampunk-sub000/hardware/instance"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/c64mem"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/cartridge"
	"github.com/bl-nero/steampunk-sub000/hardware/television"
	"github.com/bl-nero/steampunk-sub000/hardware/vic"
	"github.com/bl-nero/steampunk-sub000/logger"
)

// C64Viewport frames the VIC-II's 504x262 raw signal down to the visible
// picture, the same role AtariViewport plays for the TIA.
var C64Viewport = television.Viewport{Left: 76, Top: 16, Right: 444, Bottom: 262}

// vicCyclesPerCPUCycle is the C64's fixed VIC:CPU clock ratio (8 pixel
// clocks per phi2 cycle in text mode), spec §2.
const vicCyclesPerCPUCycle = 8

// C64 ties the VIC-II, the 6510 CPU core, the two CIAs, the C64 address
// decoder and a Datasette together the way VCS does for the Atari side -
// one type per machine, both built from the same chip-level packages,
// wired together differently per spec §2's two dataflow diagrams.
type C64 struct {
	Instance *instance.Instance

	TV   *television.Television
	CPU  *cpu.CPU
	Mem  *c64mem.Memory
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	Datasette *datasette.Datasette

	Log *logger.Logger

	phase int // counts VIC ticks up to vicCyclesPerCPUCycle between CPU cycles
}

// NewC64 creates a Commodore 64 with no cartridge attached.
func NewC64(tv *television.Television, ins *instance.Instance) (*C64, error) {
	log := logger.NewLogger(512)

	c1 := cia.NewCIA()
	c2 := cia.NewCIA()
	mem := c64mem.NewMemory(nil, c1, c2, nil)
	v := vic.NewVIC(mem)
	mem.VIC = v

	c := &C64{
		Instance:  ins,
		TV:        tv,
		Mem:       mem,
		VIC:       v,
		CIA1:      c1,
		CIA2:      c2,
		Datasette: datasette.NewDatasette(),
		Log:       log,
	}
	c.CPU = cpu.New(mem, log)
	tv.SetViewport(C64Viewport)
	return c, nil
}

// AttachCartridge loads an Ultimax-mapped cartridge image.
func (c *C64) AttachCartridge(ld cartridgeloader.Loader) error {
	cart, err := cartridge.NewUltimax(ld)
	if err != nil {
		return err
	}
	c.Mem.Cart = cart
	return nil
}

// AttachTape loads a decoded Datasette image and presses PLAY.
func (c *C64) AttachTape(tap cartridgeloader.Tap) {
	c.Datasette.Insert(tap)
	c.Datasette.Press(true)
}

// Reset restarts the CPU, per the 6510 reset vector at $FFFC-$FFFD exactly
// as on the Atari's 6507.
func (c *C64) Reset() error {
	return c.CPU.Reset()
}

// Tick advances the machine by one VIC pixel clock, running the CPU and
// both CIAs once every eighth tick - the inverse of the Atari's dataflow,
// where the chip driving the clock (TIA) only runs the CPU every third
// tick it produces. Here the CPU supplies its own timing and the VIC is
// ticked vicCyclesPerCPUCycle times per CPU cycle instead.
func (c *C64) Tick() (television.SignalAttributes, error) {
	out := c.VIC.Tick()

	sig := television.SignalAttributes{
		X: out.X,
		Y: out.RasterLine,
	}
	rgb := c64Palette[out.Color&0x0f]
	sig.Red, sig.Green, sig.Blue = rgb[0], rgb[1], rgb[2]

	c.phase++
	if c.phase >= vicCyclesPerCPUCycle {
		c.phase = 0

		motorOn := c.CIA2.PortA.Pins&0x20 == 0
		pressed, pulse := c.Datasette.Tick(motorOn)
		if pressed && pulse {
			c.CIA1.PortB.Pins &^= 0x10
		} else {
			c.CIA1.PortB.Pins |= 0x10
		}

		c.CIA1.Step()
		c.CIA2.Step()

		// CIA1 feeds IRQ, CIA2 feeds NMI: real C64 wiring, unlike the
		// Atari's RIOT whose interrupt pin is left disconnected.
		c.CPU.SetIRQ(c.CIA1.Interrupt() || out.IRQ)
		c.CPU.SetNMI(c.CIA2.Interrupt())

		if err := c.CPU.Tick(); err != nil {
			return television.SignalAttributes{}, err
		}
	}

	return sig, nil
}

// AtInstructionStart reports whether the CPU is at an instruction boundary.
func (c *C64) AtInstructionStart() bool {
	return c.CPU.AtInstructionStart()
}

// ProgramCounter returns the CPU's current program counter.
func (c *C64) ProgramCounter() uint16 {
	return c.CPU.ProgramCounter()
}

// StackDepth returns the stack pointer's raw value.
func (c *C64) StackDepth() int {
	return int(c.CPU.SP.Address())
}

// Peek reads memory with no side effects, for debugger inspection.
func (c *C64) Peek(addr uint16) (uint8, error) {
	return c.Mem.Peek(addr)
}

// c64Palette is the VIC-II's fixed 16 colour palette, the canonical
// approximation used throughout C64 emulation.
var c64Palette = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xff, 0xff, 0xff}, {0x68, 0x37, 0x2b}, {0x70, 0xa4, 0xb2},
	{0x6f, 0x3d, 0x86}, {0x58, 0x8d, 0x43}, {0x35, 0x28, 0x79}, {0xb8, 0xc7, 0x6f},
	{0x6f, 0x4f, 0x25}, {0x43, 0x39, 0x00}, {0x9a, 0x67, 0x59}, {0x44, 0x44, 0x44},
	{0x6c, 0x6c, 0x6c}, {0x9a, 0xd2, 0x84}, {0x6c, 0x5e, 0xb5}, {0x95, 0x95, 0x95},
}
