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

package cpu

// Sentinel error messages. These are the "head" of a curated error from the
// errors package and can be tested for with errors.Is().
const (
	// CPUHalted is returned by every subsequent call to Tick() once the
	// processor has executed opcode $02.
	CPUHalted = "cpu: halted"

	// UnknownOpcode is returned when an opcode outside of the documented
	// instruction set (other than $02) is encountered.
	UnknownOpcode = "cpu: unknown opcode (%#02x)"

	// ReadError wraps a bus error encountered while reading.
	ReadError = "cpu: read error: %v"

	// WriteError wraps a bus error encountered while writing.
	WriteError = "cpu: write error: %v"
)
