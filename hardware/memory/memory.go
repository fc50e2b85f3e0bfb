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

// Package memory implements the Atari 2600's address decoder: a single
// bus.CPUBus that routes every CPU access to RAM, the TIA, the RIOT or the
// cartridge, exactly as spec §4.5 describes, using memorymap.MapAddress to
// do the actual classifying.
package memory

import (
	"github.com/bl-nero/steampunk-sub000/hardware/memory/cartridge"
	"github.com/bl-nero/steampunk-sub000/hardware/memory/memorymap"
	"github.com/bl-nero/steampunk-sub000/hardware/riot"
	"github.com/bl-nero/steampunk-sub000/hardware/tia"
)

// VCSMemory is the Atari 2600's memory map, implementing bus.CPUBus and
// bus.DebuggerBus by dispatching through memorymap.MapAddress.
type VCSMemory struct {
	RAM  *RAM
	TIA  *tia.TIA
	RIOT *riot.RIOT
	Cart *cartridge.Atari
}

// NewVCSMemory is the preferred method of initialisation for the VCSMemory
// type. cart may be nil (no cartridge attached), in which case cartridge
// reads return 0xff.
func NewVCSMemory(t *tia.TIA, r *riot.RIOT, cart *cartridge.Atari) *VCSMemory {
	return &VCSMemory{
		RAM:  NewRAM(128),
		TIA:  t,
		RIOT: r,
		Cart: cart,
	}
}

// Read implements bus.CPUBus.
func (m *VCSMemory) Read(address uint16) (uint8, error) {
	area, local := memorymap.MapAddress(address)
	switch area {
	case memorymap.TIA:
		return m.TIA.Read(local)
	case memorymap.RAM:
		return m.RAM.Read(local)
	case memorymap.RIOT:
		return m.RIOT.Read(local), nil
	case memorymap.Cartridge:
		if m.Cart == nil {
			return 0xff, nil
		}
		return m.Cart.Read(local)
	}
	return 0, nil
}

// Write implements bus.CPUBus.
func (m *VCSMemory) Write(address uint16, data uint8) error {
	area, local := memorymap.MapAddress(address)
	switch area {
	case memorymap.TIA:
		return m.TIA.Write(local, data)
	case memorymap.RAM:
		return m.RAM.Write(local, data)
	case memorymap.RIOT:
		m.RIOT.Write(local, data)
		return nil
	case memorymap.Cartridge:
		// Cartridge ROM writes are silently dropped, per spec §4.5.
		if m.Cart != nil {
			return m.Cart.Write(local, data)
		}
		return nil
	}
	return nil
}

// Peek implements bus.DebuggerBus, reading address without the side
// effects Read may have on TIA collision/input latches or the RIOT timer.
func (m *VCSMemory) Peek(address uint16) (uint8, error) {
	area, local := memorymap.MapAddress(address)
	switch area {
	case memorymap.TIA:
		return m.TIA.Peek(local)
	case memorymap.RAM:
		return m.RAM.Peek(local)
	case memorymap.RIOT:
		return m.RIOT.Peek(local), nil
	case memorymap.Cartridge:
		if m.Cart == nil {
			return 0xff, nil
		}
		return m.Cart.Read(local)
	}
	return 0, nil
}

// Poke implements bus.DebuggerBus.
func (m *VCSMemory) Poke(address uint16, data uint8) error {
	area, local := memorymap.MapAddress(address)
	switch area {
	case memorymap.TIA:
		return m.TIA.Write(local, data)
	case memorymap.RAM:
		return m.RAM.Poke(local, data)
	case memorymap.RIOT:
		m.RIOT.Write(local, data)
		return nil
	case memorymap.Cartridge:
		if m.Cart != nil {
			return m.Cart.Poke(local, data)
		}
		return nil
	}
	return nil
}
