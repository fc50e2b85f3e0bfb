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

package tia

// ctrlpf bit positions within CTRLPF.
const (
	ctrlpfReflect  = 0x01
	ctrlpfScore    = 0x02
	ctrlpfPriority = 0x04
)

// playfield turns PF0/PF1/PF2 into the 20 bit pattern spec §4.2 describes,
// repeated or mirrored across the 160 visible pixels of a scanline.
//
// Playfield score-mode (CTRLPF bit 1, which recolours the playfield to
// match whichever player is "under" each half rather than COLUPF) is left
// unimplemented, per the design notes preserving it as a known limitation
// rather than inventing behaviour neither spec.md nor the retrieval pack
// commits to.
type playfield struct {
	pf0, pf1, pf2 uint8
	ctrl          uint8
}

func (pf *playfield) reflect() bool {
	return pf.ctrl&ctrlpfReflect != 0
}

// bits returns the 20 logical playfield columns, built from PF0's high
// nibble (reversed), PF1 (MSB first) and PF2 (LSB first).
func (pf *playfield) bits() [20]bool {
	var b [20]bool
	b[0] = pf.pf0&0x10 != 0
	b[1] = pf.pf0&0x20 != 0
	b[2] = pf.pf0&0x40 != 0
	b[3] = pf.pf0&0x80 != 0
	for i := 0; i < 8; i++ {
		b[4+i] = pf.pf1&(0x80>>uint(i)) != 0
	}
	for i := 0; i < 8; i++ {
		b[12+i] = pf.pf2&(0x01<<uint(i)) != 0
	}
	return b
}

// pixel reports whether the playfield is "on" at visible-pixel column x
// (0..159). The right half of the scanline repeats the left half's 20 bit
// pattern, or mirrors it when CTRLPF.REFLECT is set.
func (pf *playfield) pixel(x int) bool {
	bits := pf.bits()
	half := x / 80
	pos := x % 80
	idx := pos / 4
	if half == 1 && pf.reflect() {
		idx = 19 - idx
	}
	return bits[idx]
}
