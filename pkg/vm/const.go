// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package vm

// Condition flags. Exactly one is set in Registers.Cond at all times.
const (
	FlagPos uint16 = 1 << 0
	FlagZro uint16 = 1 << 1
	FlagNeg uint16 = 1 << 2
)

// Trap service vectors.
const (
	TrapGetc  uint16 = 0x20
	TrapOut   uint16 = 0x21
	TrapPuts  uint16 = 0x22
	TrapIn    uint16 = 0x23
	TrapPutsp uint16 = 0x24
	TrapHalt  uint16 = 0x25
)

// Guest-visible memory map.
const (
	UserOrigin uint16 = 0x3000
	KBSR       uint16 = 0xFE00
	KBDR       uint16 = 0xFE02
)

// Opcodes, bits [15:12] of the instruction word.
const (
	OpBR   uint16 = 0b0000
	OpADD  uint16 = 0b0001
	OpLD   uint16 = 0b0010
	OpST   uint16 = 0b0011
	OpJSR  uint16 = 0b0100
	OpAND  uint16 = 0b0101
	OpLDR  uint16 = 0b0110
	OpSTR  uint16 = 0b0111
	OpRTI  uint16 = 0b1000
	OpNOT  uint16 = 0b1001
	OpLDI  uint16 = 0b1010
	OpSTI  uint16 = 0b1011
	OpJMP  uint16 = 0b1100
	OpRES  uint16 = 0b1101
	OpLEA  uint16 = 0b1110
	OpTRAP uint16 = 0b1111
)
