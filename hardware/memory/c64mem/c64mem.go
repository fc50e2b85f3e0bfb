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

// Package c64mem implements the Commodore 64's address decoder: 64KiB of
// RAM with the BASIC/KERNAL/character ROMs and the VIC/CIA/colour-RAM I/O
// page banked in and out under control of the 6510's built-in processor
// port, exactly as spec §4.5 describes, plus the Ultimax cartridge
// override (bit 12 mirroring is irrelevant here; Ultimax instead claims two
// fixed 8KiB windows regardless of the processor port).
package c64mem

import (
	"github.com/bl-nero/steampunk-sub000/hardware/cia"
	"github.com/bl-nero/steampunk-sub000/hardware/memory"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/cartridge"
	"github.com/bl-nero/steampunk-sub000/hardware/vic"
)

// processor port bits (6510 I/O port at $0000/$0001).
const (
	portLORAM  = 0x01
	portHIRAM  = 0x02
	portCHAREN = 0x04
)

// Fixed addresses, spec §4.5/GLOSSARY.
const (
	basicLo  = 0xa000
	basicHi  = 0xc000
	ioLo     = 0xd000
	colorLo  = 0xd800
	colorHi  = 0xdc00
	cia1Lo   = 0xdc00
	cia2Lo   = 0xdd00
	ioHi     = 0xe000
	kernalLo = 0xe000
	charLo   = 0xd000
	charHi   = 0xe000

	ultimaxLoStart = 0x8000
	ultimaxLoEnd   = 0xa000
	ultimaxHiStart = 0xe000
)

// Memory is the C64's address decoder, implementing bus.CPUBus and
// bus.DebuggerBus.
type Memory struct {
	RAM *memory.RAM

	// Basic/Kernal/CharGen are optional: a real machine needs these ROM
	// images supplied externally (they remain Commodore's copyrighted
	// firmware and are never embedded in this repository). NewMemory creates
	// them zero-filled, so until they are loaded, reads from their banked-in
	// windows return 0x00 rather than erroring, so the rest of the machine
	// (RAM, VIC, CIA) remains usable
	// for cartridge-only ("Ultimax") testing.
	Basic   *memory.RAM
	Kernal  *memory.RAM
	CharGen *memory.RAM

	Color [1024]uint8 // only the low nibble of each byte is meaningful

	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	Cart *cartridge.Ultimax

	ddr  uint8 // $0000
	port uint8 // $0001, reset value matches real hardware's pull-ups
}

// NewMemory creates a C64 address decoder with 64KiB of RAM and the given
// chips. cart may be nil.
func NewMemory(v *vic.VIC, cia1, cia2 *cia.CIA, cart *cartridge.Ultimax) *Memory {
	return &Memory{
		RAM:     memory.NewRAM(65536),
		Basic:   memory.NewRAM(8192),
		Kernal:  memory.NewRAM(8192),
		CharGen: memory.NewRAM(4096),
		VIC:     v,
		CIA1:    cia1,
		CIA2:    cia2,
		Cart:    cart,
		ddr:     0x2f,
		port:    0x37,
	}
}

// ReadScreen/ReadColor/ReadChar implement vic.Bus, letting the VIC fetch
// character data out of the same RAM the CPU writes without the two
// needing to share ownership: the VIC only ever sees this narrow accessor,
// per the design note on shared colour memory (spec §9/DESIGN.md).
func (m *Memory) ReadScreen(row, col int) uint8 {
	// screen memory's base address is configurable via CIA2/VIC-II bank
	// registers on real hardware; this implementation fixes it at the
	// KERNAL's default of $0400, the overwhelmingly common case and the
	// one every C64 text-mode ROM boots into.
	addr := uint16(0x0400 + row*40 + col)
	v, _ := m.RAM.Read(addr)
	return v
}

func (m *Memory) ReadColor(row, col int) uint8 {
	return m.Color[row*40+col] & 0x0f
}

func (m *Memory) ReadChar(code uint8, line int) uint8 {
	v, _ := m.CharGen.Read(uint16(code)*8 + uint16(line))
	return v
}

func (m *Memory) bankConfig() (basicVisible, kernalVisible, ioVisible bool) {
	hiram := m.port&portHIRAM != 0
	loram := m.port&portLORAM != 0
	charen := m.port&portCHAREN != 0

	basicVisible = loram && hiram
	kernalVisible = hiram
	ioVisible = (loram || hiram) && charen
	return
}

// Read implements bus.CPUBus.
func (m *Memory) Read(address uint16) (uint8, error) {
	if m.Cart != nil {
		if address >= ultimaxLoStart && address < ultimaxLoEnd {
			if v, ok := m.Cart.ReadLo(address - ultimaxLoStart); ok {
				return v, nil
			}
			return 0xff, nil
		}
		if address >= ultimaxHiStart {
			return m.Cart.ReadHi(address - ultimaxHiStart), nil
		}
	}

	switch {
	case address == 0x0000:
		return m.ddr, nil
	case address == 0x0001:
		return m.port, nil
	case address >= ioLo && address < ioHi:
		return m.readIO(address)
	}

	basicVisible, kernalVisible, _ := m.bankConfig()

	if basicVisible && address >= basicLo && address < basicHi {
		v, err := m.Basic.Read(address - basicLo)
		return v, err
	}
	if kernalVisible && address >= kernalLo {
		v, err := m.Kernal.Read(address - kernalLo)
		return v, err
	}

	return m.RAM.Read(address)
}

// readIO decodes the $D000-$DFFF I/O page: VIC-II (mirrored every $40
// within $D000-$D3FF), colour RAM, CIA1, CIA2, or the character generator
// ROM when CHAREN selects it in over the I/O page.
func (m *Memory) readIO(address uint16) (uint8, error) {
	_, _, ioVisible := m.bankConfig()
	if !ioVisible {
		v, err := m.CharGen.Read(address - charLo)
		return v, err
	}

	switch {
	case address < colorLo:
		if m.VIC != nil {
			return m.VIC.Read(address - ioLo), nil
		}
		return 0xff, nil
	case address < colorHi:
		return m.Color[address-colorLo] & 0x0f, nil
	case address < cia2Lo:
		if m.CIA1 != nil {
			return m.CIA1.Read(address - cia1Lo)
		}
		return 0xff, nil
	default:
		if m.CIA2 != nil {
			return m.CIA2.Read(address - cia2Lo)
		}
		return 0xff, nil
	}
}

// Write implements bus.CPUBus.
func (m *Memory) Write(address uint16, data uint8) error {
	if m.Cart != nil {
		if address >= ultimaxLoStart && address < ultimaxLoEnd {
			return nil // cartridge ROM, writes dropped
		}
		if address >= ultimaxHiStart {
			return nil
		}
	}

	switch {
	case address == 0x0000:
		m.ddr = data
		return nil
	case address == 0x0001:
		m.port = data
		return nil
	case address >= ioLo && address < ioHi:
		return m.writeIO(address, data)
	}

	// ROM windows are never written through, even when banked in: the
	// underlying RAM cell is still there on real hardware and a write goes
	// straight to it, invisible until the ROM is banked back out.
	return m.RAM.Write(address, data)
}

func (m *Memory) writeIO(address uint16, data uint8) error {
	_, _, ioVisible := m.bankConfig()
	if !ioVisible {
		return nil
	}

	switch {
	case address < colorLo:
		if m.VIC != nil {
			m.VIC.Write(address-ioLo, data)
		}
	case address < colorHi:
		m.Color[address-colorLo] = data & 0x0f
	case address < cia2Lo:
		if m.CIA1 != nil {
			return m.CIA1.Write(address-cia1Lo, data)
		}
	default:
		if m.CIA2 != nil {
			return m.CIA2.Write(address-cia2Lo, data)
		}
	}
	return nil
}

// Peek implements bus.DebuggerBus, reading without I/O-register side
// effects. CIA reads have side effects (ICR acknowledgement); every other
// device this decoder reaches happens to already be side-effect free, so
// Peek only special-cases the two CIAs.
func (m *Memory) Peek(address uint16) (uint8, error) {
	if address >= cia1Lo && address < ioHi {
		_, _, ioVisible := m.bankConfig()
		if ioVisible {
			if address < cia2Lo && m.CIA1 != nil {
				return m.CIA1.Peek(address - cia1Lo)
			}
			if address >= cia2Lo && m.CIA2 != nil {
				return m.CIA2.Peek(address - cia2Lo)
			}
		}
	}
	return m.Read(address)
}

// Poke implements bus.DebuggerBus by calling Write: a poke into a banked-in
// ROM window lands in the RAM underneath and leaves the ROM image unchanged.
func (m *Memory) Poke(address uint16, data uint8) error {
	return m.Write(address, data)
}
