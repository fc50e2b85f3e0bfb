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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/bl-nero/steampunk-sub000/hardware/cpu/instructions"
)

// Entry is a single disassembled line: either a decoded instruction or, when
// the opcode at Address isn't one of the documented 151, a one-byte "data"
// line.
type Entry struct {
	Address  uint16
	Bytes    []byte
	Operator instructions.Operator

	// Operand is meaningful only when HasOperand is true. For two-byte
	// operands it is little-endian combined, matching how the instruction
	// would actually compute its effective address.
	Operand    uint16
	HasOperand bool
	Immediate  bool

	// IsData is true when Address did not decode to a documented opcode.
	// The entry still occupies exactly one byte so that disassembly can
	// resynchronise on the next address.
	IsData bool
}

func (e Entry) String() string {
	hex := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		hex[i] = fmt.Sprintf("%02x", b)
	}

	if e.IsData {
		return fmt.Sprintf("$%04x  %-8s  .byte $%02x", e.Address, strings.Join(hex, " "), e.Bytes[0])
	}

	operand := ""
	switch {
	case !e.HasOperand:
	case e.Immediate:
		operand = fmt.Sprintf(" #$%02x", e.Operand)
	case len(e.Bytes) == 2:
		operand = fmt.Sprintf(" $%02x", e.Operand)
	default:
		operand = fmt.Sprintf(" $%04x", e.Operand)
	}

	return fmt.Sprintf("$%04x  %-8s  %s%s", e.Address, strings.Join(hex, " "), e.Operator, operand)
}

// decodeOne decodes the instruction (or data byte) at data[offset], which
// represents address addr. It returns the entry and the number of bytes
// consumed (always 1 for a data line).
func decodeOne(data []byte, offset int, addr uint16) (Entry, int) {
	op := data[offset]
	defn := instructions.Definitions[op]

	if !defn.IsValid() || offset+defn.Bytes > len(data) {
		return Entry{
			Address: addr,
			Bytes:   data[offset : offset+1],
			IsData:  true,
		}, 1
	}

	e := Entry{
		Address:  addr,
		Bytes:    data[offset : offset+defn.Bytes],
		Operator: defn.Operator,
	}

	switch defn.Bytes {
	case 2:
		e.HasOperand = true
		e.Operand = uint16(data[offset+1])
		e.Immediate = defn.AddressingMode == instructions.Immediate
	case 3:
		e.HasOperand = true
		e.Operand = uint16(data[offset+1]) | uint16(data[offset+2])<<8
	}

	return e, defn.Bytes
}
