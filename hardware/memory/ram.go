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

package memory

// RAM is a power-of-two sized byte vector addressed with a mask, the same
// trick the cartridge package uses for ROM. The Atari's 128 bytes of
// zero-page RAM (mirrored across 0x80-0xff) is the only user in this
// module, but the type itself doesn't know that.
type RAM struct {
	data []byte
	mask uint16
}

// NewRAM creates a RAM of the given size, which must be a power of two.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size), mask: uint16(size - 1)}
}

func (r *RAM) Read(addr uint16) (uint8, error) {
	return r.data[addr&r.mask], nil
}

func (r *RAM) Write(addr uint16, data uint8) error {
	r.data[addr&r.mask] = data
	return nil
}

func (r *RAM) Peek(addr uint16) (uint8, error) {
	return r.data[addr&r.mask], nil
}

func (r *RAM) Poke(addr uint16, data uint8) error {
	r.data[addr&r.mask] = data
	return nil
}
