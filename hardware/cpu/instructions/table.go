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

package instructions

// List of all documented 6502 mnemonics.
const (
	ADC Operator = "ADC"
	AND Operator = "AND"
	ASL Operator = "ASL"
	BCC Operator = "BCC"
	BCS Operator = "BCS"
	BEQ Operator = "BEQ"
	BIT Operator = "BIT"
	BMI Operator = "BMI"
	BNE Operator = "BNE"
	BPL Operator = "BPL"
	BRK Operator = "BRK"
	BVC Operator = "BVC"
	BVS Operator = "BVS"
	CLC Operator = "CLC"
	CLD Operator = "CLD"
	CLI Operator = "CLI"
	CLV Operator = "CLV"
	CMP Operator = "CMP"
	CPX Operator = "CPX"
	CPY Operator = "CPY"
	DEC Operator = "DEC"
	DEX Operator = "DEX"
	DEY Operator = "DEY"
	EOR Operator = "EOR"
	INC Operator = "INC"
	INX Operator = "INX"
	INY Operator = "INY"
	JMP Operator = "JMP"
	JSR Operator = "JSR"
	LDA Operator = "LDA"
	LDX Operator = "LDX"
	LDY Operator = "LDY"
	LSR Operator = "LSR"
	NOP Operator = "NOP"
	ORA Operator = "ORA"
	PHA Operator = "PHA"
	PHP Operator = "PHP"
	PLA Operator = "PLA"
	PLP Operator = "PLP"
	ROL Operator = "ROL"
	ROR Operator = "ROR"
	RTI Operator = "RTI"
	RTS Operator = "RTS"
	SBC Operator = "SBC"
	SEC Operator = "SEC"
	SED Operator = "SED"
	SEI Operator = "SEI"
	STA Operator = "STA"
	STX Operator = "STX"
	STY Operator = "STY"
	TAX Operator = "TAX"
	TAY Operator = "TAY"
	TSX Operator = "TSX"
	TXA Operator = "TXA"
	TXS Operator = "TXS"
	TYA Operator = "TYA"

	// HLT is the jam/halt behaviour of opcode $02. It isn't part of the
	// documented instruction set but the processor's reaction to it - an
	// immediate, unrecoverable halt - is specified behaviour for that one
	// opcode value.
	HLT Operator = "HLT"
)

// Definitions is the complete table of documented opcodes, indexed by opcode
// value. An entry with an empty Operator is an undocumented opcode.
var Definitions [256]Definition

func define(op uint8, mnem Operator, bytes, cycles int, mode AddressingMode, pageSensitive bool, cat Category) {
	Definitions[op] = Definition{
		OpCode:         op,
		Operator:       mnem,
		Bytes:          bytes,
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Category:       cat,
	}
}

func init() {
	// ADC
	define(0x69, ADC, 2, 2, Immediate, false, Read)
	define(0x65, ADC, 2, 3, ZeroPage, false, Read)
	define(0x75, ADC, 2, 4, ZeroPageIndexedX, false, Read)
	define(0x6D, ADC, 3, 4, Absolute, false, Read)
	define(0x7D, ADC, 3, 4, AbsoluteIndexedX, true, Read)
	define(0x79, ADC, 3, 4, AbsoluteIndexedY, true, Read)
	define(0x61, ADC, 2, 6, IndexedIndirect, false, Read)
	define(0x71, ADC, 2, 5, IndirectIndexed, true, Read)

	// AND
	define(0x29, AND, 2, 2, Immediate, false, Read)
	define(0x25, AND, 2, 3, ZeroPage, false, Read)
	define(0x35, AND, 2, 4, ZeroPageIndexedX, false, Read)
	define(0x2D, AND, 3, 4, Absolute, false, Read)
	define(0x3D, AND, 3, 4, AbsoluteIndexedX, true, Read)
	define(0x39, AND, 3, 4, AbsoluteIndexedY, true, Read)
	define(0x21, AND, 2, 6, IndexedIndirect, false, Read)
	define(0x31, AND, 2, 5, IndirectIndexed, true, Read)

	// ASL
	define(0x0A, ASL, 1, 2, Accumulator, false, ReadModifyWrite)
	define(0x06, ASL, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0x16, ASL, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0x0E, ASL, 3, 6, Absolute, false, ReadModifyWrite)
	define(0x1E, ASL, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)

	// branches
	define(0x90, BCC, 2, 2, Relative, true, Branch)
	define(0xB0, BCS, 2, 2, Relative, true, Branch)
	define(0xF0, BEQ, 2, 2, Relative, true, Branch)
	define(0x30, BMI, 2, 2, Relative, true, Branch)
	define(0xD0, BNE, 2, 2, Relative, true, Branch)
	define(0x10, BPL, 2, 2, Relative, true, Branch)
	define(0x50, BVC, 2, 2, Relative, true, Branch)
	define(0x70, BVS, 2, 2, Relative, true, Branch)

	// BIT
	define(0x24, BIT, 2, 3, ZeroPage, false, Read)
	define(0x2C, BIT, 3, 4, Absolute, false, Read)

	// BRK
	define(0x00, BRK, 1, 7, Implied, false, Interrupt)

	// flag clear/set
	define(0x18, CLC, 1, 2, Implied, false, Implicit)
	define(0xD8, CLD, 1, 2, Implied, false, Implicit)
	define(0x58, CLI, 1, 2, Implied, false, Implicit)
	define(0xB8, CLV, 1, 2, Implied, false, Implicit)
	define(0x38, SEC, 1, 2, Implied, false, Implicit)
	define(0xF8, SED, 1, 2, Implied, false, Implicit)
	define(0x78, SEI, 1, 2, Implied, false, Implicit)

	// CMP
	define(0xC9, CMP, 2, 2, Immediate, false, Read)
	define(0xC5, CMP, 2, 3, ZeroPage, false, Read)
	define(0xD5, CMP, 2, 4, ZeroPageIndexedX, false, Read)
	define(0xCD, CMP, 3, 4, Absolute, false, Read)
	define(0xDD, CMP, 3, 4, AbsoluteIndexedX, true, Read)
	define(0xD9, CMP, 3, 4, AbsoluteIndexedY, true, Read)
	define(0xC1, CMP, 2, 6, IndexedIndirect, false, Read)
	define(0xD1, CMP, 2, 5, IndirectIndexed, true, Read)

	// CPX / CPY
	define(0xE0, CPX, 2, 2, Immediate, false, Read)
	define(0xE4, CPX, 2, 3, ZeroPage, false, Read)
	define(0xEC, CPX, 3, 4, Absolute, false, Read)
	define(0xC0, CPY, 2, 2, Immediate, false, Read)
	define(0xC4, CPY, 2, 3, ZeroPage, false, Read)
	define(0xCC, CPY, 3, 4, Absolute, false, Read)

	// DEC
	define(0xC6, DEC, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0xD6, DEC, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0xCE, DEC, 3, 6, Absolute, false, ReadModifyWrite)
	define(0xDE, DEC, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)

	define(0xCA, DEX, 1, 2, Implied, false, Implicit)
	define(0x88, DEY, 1, 2, Implied, false, Implicit)

	// EOR
	define(0x49, EOR, 2, 2, Immediate, false, Read)
	define(0x45, EOR, 2, 3, ZeroPage, false, Read)
	define(0x55, EOR, 2, 4, ZeroPageIndexedX, false, Read)
	define(0x4D, EOR, 3, 4, Absolute, false, Read)
	define(0x5D, EOR, 3, 4, AbsoluteIndexedX, true, Read)
	define(0x59, EOR, 3, 4, AbsoluteIndexedY, true, Read)
	define(0x41, EOR, 2, 6, IndexedIndirect, false, Read)
	define(0x51, EOR, 2, 5, IndirectIndexed, true, Read)

	// INC
	define(0xE6, INC, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0xF6, INC, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0xEE, INC, 3, 6, Absolute, false, ReadModifyWrite)
	define(0xFE, INC, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)

	define(0xE8, INX, 1, 2, Implied, false, Implicit)
	define(0xC8, INY, 1, 2, Implied, false, Implicit)

	// JMP / JSR / RTS / RTI
	define(0x4C, JMP, 3, 3, Absolute, false, Jump)
	define(0x6C, JMP, 3, 5, Indirect, false, Jump)
	define(0x20, JSR, 3, 6, Absolute, false, Subroutine)
	define(0x60, RTS, 1, 6, Implied, false, Return)
	define(0x40, RTI, 1, 6, Implied, false, Return)

	// LDA
	define(0xA9, LDA, 2, 2, Immediate, false, Read)
	define(0xA5, LDA, 2, 3, ZeroPage, false, Read)
	define(0xB5, LDA, 2, 4, ZeroPageIndexedX, false, Read)
	define(0xAD, LDA, 3, 4, Absolute, false, Read)
	define(0xBD, LDA, 3, 4, AbsoluteIndexedX, true, Read)
	define(0xB9, LDA, 3, 4, AbsoluteIndexedY, true, Read)
	define(0xA1, LDA, 2, 6, IndexedIndirect, false, Read)
	define(0xB1, LDA, 2, 5, IndirectIndexed, true, Read)

	// LDX
	define(0xA2, LDX, 2, 2, Immediate, false, Read)
	define(0xA6, LDX, 2, 3, ZeroPage, false, Read)
	define(0xB6, LDX, 2, 4, ZeroPageIndexedY, false, Read)
	define(0xAE, LDX, 3, 4, Absolute, false, Read)
	define(0xBE, LDX, 3, 4, AbsoluteIndexedY, true, Read)

	// LDY
	define(0xA0, LDY, 2, 2, Immediate, false, Read)
	define(0xA4, LDY, 2, 3, ZeroPage, false, Read)
	define(0xB4, LDY, 2, 4, ZeroPageIndexedX, false, Read)
	define(0xAC, LDY, 3, 4, Absolute, false, Read)
	define(0xBC, LDY, 3, 4, AbsoluteIndexedX, true, Read)

	// LSR
	define(0x4A, LSR, 1, 2, Accumulator, false, ReadModifyWrite)
	define(0x46, LSR, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0x56, LSR, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0x4E, LSR, 3, 6, Absolute, false, ReadModifyWrite)
	define(0x5E, LSR, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)

	define(0xEA, NOP, 1, 2, Implied, false, Implicit)

	// ORA
	define(0x09, ORA, 2, 2, Immediate, false, Read)
	define(0x05, ORA, 2, 3, ZeroPage, false, Read)
	define(0x15, ORA, 2, 4, ZeroPageIndexedX, false, Read)
	define(0x0D, ORA, 3, 4, Absolute, false, Read)
	define(0x1D, ORA, 3, 4, AbsoluteIndexedX, true, Read)
	define(0x19, ORA, 3, 4, AbsoluteIndexedY, true, Read)
	define(0x01, ORA, 2, 6, IndexedIndirect, false, Read)
	define(0x11, ORA, 2, 5, IndirectIndexed, true, Read)

	// stack ops
	define(0x48, PHA, 1, 3, Implied, false, Stack)
	define(0x08, PHP, 1, 3, Implied, false, Stack)
	define(0x68, PLA, 1, 4, Implied, false, Stack)
	define(0x28, PLP, 1, 4, Implied, false, Stack)

	// ROL / ROR
	define(0x2A, ROL, 1, 2, Accumulator, false, ReadModifyWrite)
	define(0x26, ROL, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0x36, ROL, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0x2E, ROL, 3, 6, Absolute, false, ReadModifyWrite)
	define(0x3E, ROL, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)
	define(0x6A, ROR, 1, 2, Accumulator, false, ReadModifyWrite)
	define(0x66, ROR, 2, 5, ZeroPage, false, ReadModifyWrite)
	define(0x76, ROR, 2, 6, ZeroPageIndexedX, false, ReadModifyWrite)
	define(0x6E, ROR, 3, 6, Absolute, false, ReadModifyWrite)
	define(0x7E, ROR, 3, 7, AbsoluteIndexedX, false, ReadModifyWrite)

	// SBC
	define(0xE9, SBC, 2, 2, Immediate, false, Read)
	define(0xE5, SBC, 2, 3, ZeroPage, false, Read)
	define(0xF5, SBC, 2, 4, ZeroPageIndexedX, false, Read)
	define(0xED, SBC, 3, 4, Absolute, false, Read)
	define(0xFD, SBC, 3, 4, AbsoluteIndexedX, true, Read)
	define(0xF9, SBC, 3, 4, AbsoluteIndexedY, true, Read)
	define(0xE1, SBC, 2, 6, IndexedIndirect, false, Read)
	define(0xF1, SBC, 2, 5, IndirectIndexed, true, Read)

	// STA
	define(0x85, STA, 2, 3, ZeroPage, false, Write)
	define(0x95, STA, 2, 4, ZeroPageIndexedX, false, Write)
	define(0x8D, STA, 3, 4, Absolute, false, Write)
	define(0x9D, STA, 3, 5, AbsoluteIndexedX, false, Write)
	define(0x99, STA, 3, 5, AbsoluteIndexedY, false, Write)
	define(0x81, STA, 2, 6, IndexedIndirect, false, Write)
	define(0x91, STA, 2, 6, IndirectIndexed, false, Write)

	// STX / STY
	define(0x86, STX, 2, 3, ZeroPage, false, Write)
	define(0x96, STX, 2, 4, ZeroPageIndexedY, false, Write)
	define(0x8E, STX, 3, 4, Absolute, false, Write)
	define(0x84, STY, 2, 3, ZeroPage, false, Write)
	define(0x94, STY, 2, 4, ZeroPageIndexedX, false, Write)
	define(0x8C, STY, 3, 4, Absolute, false, Write)

	// register transfers
	define(0xAA, TAX, 1, 2, Implied, false, Implicit)
	define(0xA8, TAY, 1, 2, Implied, false, Implicit)
	define(0xBA, TSX, 1, 2, Implied, false, Implicit)
	define(0x8A, TXA, 1, 2, Implied, false, Implicit)
	define(0x9A, TXS, 1, 2, Implied, false, Implicit)
	define(0x98, TYA, 1, 2, Implied, false, Implicit)

	// the one undocumented opcode this emulation commits to: $02 jams the
	// processor rather than decoding to an instruction.
	define(0x02, HLT, 1, 2, Implied, false, Implicit)
}
