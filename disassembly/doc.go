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

// Package disassembly turns a stream of 6502 bytes into annotated
// instruction lines. Forward disassembly is unambiguous: it walks the bytes
// start to end, one instruction at a time, falling back to a single-byte
// "data" entry whenever it meets an opcode outside the documented set.
//
// Backward disassembly (used by the debugger to label an arbitrary
// mid-stream address, eg. the current PC) has no such certainty: a
// preceding byte might be an opcode, or it might be an operand byte
// belonging to an earlier instruction. SeekOrigin resolves the ambiguity by
// exploring every instruction chain that ends exactly at the target address
// and preferring the one with the fewest unknown-opcode entries.
package disassembly
