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

// Package hardware is the top-level container for the two emulated
// machines: VCS (the Atari 2600) and C64 (the Commodore 64). Neither
// machine type owns any concurrency of its own - both are driven one tick
// at a time by a caller (the emulation package, or a test) that decides
// when to stop.
package hardware

import (
	"github.com/bl-nero/steampunk-sub000/cartridgeloader"
	"github.com/bl-nero/steampunk-sub000/hardware/cpu"
	"github.com/bl-nero/steampunk-sub000/hardware/input"
	"github.com/bl-nero/steampunk-sub000/hardware/instance"
	"github.com/bl-nero/steampunk-sub000/hardware/memory"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/cartridge"
	"github.com/bl-nero/steampunk-sub000/hardware/riot"
	"github.com/bl-nero/steampunk-sub000/hardware/television"
	"github.com/bl-nero/steampunk-sub000/hardware/tia"
	"github.com/bl-nero/steampunk-sub000/logger"
)

// ColorClocksPerCPUCycle is the TIA's clock multiplier over the CPU: three
// colour clocks for every CPU cycle, spec §GLOSSARY.
const ColorClocksPerCPUCycle = 3

// AtariViewport is the default visible window: the 160 pixels TIA produces
// after HBLANK, across the NTSC/PAL scanline range that is never blanked by
// either standard's vertical sync/overscan.
var AtariViewport = television.Viewport{Left: 68, Top: 0, Right: 228, Bottom: 262}

// VCS is the Atari 2600: a TIA chip driving a CPU and RIOT through shared
// memory, exactly as spec §2's dataflow describes - the outer loop belongs
// to the caller, not to this type. Tick() advances the whole machine by one
// colour clock.
type VCS struct {
	Instance *instance.Instance

	TV   *television.Television
	CPU  *cpu.CPU
	Mem  *memory.VCSMemory
	TIA  *tia.TIA
	RIOT *riot.RIOT

	Input *input.Input

	Log *logger.Logger

	lastAudio *tia.Audio
}

// NewVCS creates a complete Atari 2600, wired and ready for a cartridge to
// be attached and Reset() to be called.
func NewVCS(tv *television.Television, ins *instance.Instance) (*VCS, error) {
	log := logger.NewLogger(512)

	riotChip := riot.NewRIOT()
	t := tia.NewTIA(riotChip.Ports)

	vcs := &VCS{
		Instance: ins,
		TV:       tv,
		TIA:      t,
		RIOT:     riotChip,
		Log:      log,
	}

	vcs.Mem = memory.NewVCSMemory(t, riotChip, nil)
	vcs.CPU = cpu.New(vcs.Mem, log)
	vcs.Input = input.NewInput(tv, riotChip.Ports)

	tv.SetViewport(AtariViewport)

	return vcs, nil
}

// AttachCartridge loads a ROM image and installs it as the machine's
// cartridge. The CPU is not reset; callers that want a cold boot should
// call Reset() afterwards.
func (vcs *VCS) AttachCartridge(ld cartridgeloader.Loader) error {
	cart, err := cartridge.NewAtari(ld)
	if err != nil {
		return err
	}
	vcs.Mem.Cart = cart
	return nil
}

// Reset seeds RIOT's power-on entropy from the instance's random source and
// runs the CPU's eight cycle reset sequence, loading PC from the cartridge's
// reset vector.
func (vcs *VCS) Reset() error {
	entropy := vcs.Instance.Random.Rewindable(0)
	vcs.RIOT.Seed(entropy)
	return vcs.CPU.Reset()
}

// Tick advances the whole machine by one TIA colour clock: the TIA always
// ticks, the CPU ticks on cpu_tick (gated by WSYNC), and the RIOT ticks on
// riot_tick (spec §2's dataflow, unaffected by WSYNC). The returned
// television.SignalAttributes should be passed to TV.Consume by the caller
// to detect end of frame; tests that don't care about the frame image may
// ignore it.
func (vcs *VCS) Tick() (television.SignalAttributes, error) {
	out := vcs.TIA.Tick()
	vcs.lastAudio = out.Audio

	vcs.CPU.RDY = !out.CPUTick
	if out.CPUTick {
		if err := vcs.CPU.Tick(); err != nil {
			return television.SignalAttributes{}, err
		}
	}

	if out.RIOTTick {
		// the VCS never wires the 6532's IRQ output to the 6507: games poll
		// INTIM/TIMINT directly, so RIOT.Step() only needs to advance the
		// timer and edge detector, never the CPU's interrupt line.
		vcs.RIOT.Step()
	}

	sig := television.SignalAttributes{}
	if out.Video.Pixel != nil {
		rgb := atariPalette[*out.Video.Pixel&0x7f]
		sig.Red, sig.Green, sig.Blue = rgb[0], rgb[1], rgb[2]
	}
	return sig, nil
}

// AtInstructionStart reports whether the CPU is at an instruction boundary,
// the only point at which the debugger core is allowed to act.
func (vcs *VCS) AtInstructionStart() bool {
	return vcs.CPU.AtInstructionStart()
}

// ProgramCounter returns the CPU's current program counter.
func (vcs *VCS) ProgramCounter() uint16 {
	return vcs.CPU.ProgramCounter()
}

// StackDepth returns the stack pointer's raw value: a lower value means a
// deeper stack, which is all the debugger core's step-over/step-out logic
// needs to know.
func (vcs *VCS) StackDepth() int {
	return int(vcs.CPU.SP.Address())
}

// Peek reads memory with no side effects, for debugger inspection.
func (vcs *VCS) Peek(addr uint16) (uint8, error) {
	return vcs.Mem.Peek(addr)
}

// LastAudio returns the mixed audio sample produced by the most recent
// Tick, or nil if that colour clock didn't complete a sample period. A
// diagnostic sink (internal/soundfile) polls this once per Tick rather
// than the core threading an audio callback through the hot loop.
func (vcs *VCS) LastAudio() *tia.Audio {
	return vcs.lastAudio
}

// atariPalette is a reduced NTSC-ish palette: good enough to tell colours
// apart in tests and a terminal/ASCII front end without claiming to
// reproduce the real chip's analog colour burst (spec §1's non-goals
// explicitly exclude modelling CRT/analog effects).
var atariPalette = func() [128][3]uint8 {
	var p [128][3]uint8
	for i := range p {
		hue := uint8(i >> 3)
		lum := uint8(i & 0x07)
		v := 32 + lum*28
		switch hue % 4 {
		case 0:
			p[i] = [3]uint8{v, v / 4, v / 4}
		case 1:
			p[i] = [3]uint8{v / 4, v, v / 4}
		case 2:
			p[i] = [3]uint8{v / 4, v / 4, v}
		case 3:
			p[i] = [3]uint8{v, v, v / 4}
		}
	}
	return p
}()
