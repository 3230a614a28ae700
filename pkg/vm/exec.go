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

import "lc3/pkg/word"

// exec decodes and runs one already-fetched instruction. Reg.PC has
// already been incremented past this instruction by the caller, which
// is the reference point every PCoffset* computation below uses.
func (m *Machine) exec(instruction uint16) error {
	opcode := instruction >> 12

	switch opcode {
	case OpADD:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := word.SignExtend(instruction&0x1F, 5)
			m.Reg.R[dest] = m.Reg.R[src1] + imm5
		} else {
			src2 := instruction & 0x7
			m.Reg.R[dest] = m.Reg.R[src1] + m.Reg.R[src2]
		}

		m.updateFlagsReg(dest)

	case OpAND:
		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			imm5 := word.SignExtend(instruction&0x1F, 5)
			m.Reg.R[dest] = m.Reg.R[src1] & imm5
		} else {
			src2 := instruction & 0x7
			m.Reg.R[dest] = m.Reg.R[src1] & m.Reg.R[src2]
		}

		m.updateFlagsReg(dest)

	case OpBR:
		nzp := (instruction >> 9) & 0x7

		if nzp&m.Reg.Cond != 0 {
			m.Reg.PC += word.SignExtend(instruction&0x1FF, 9)
		}

	case OpJMP:
		base := (instruction >> 6) & 0x7
		m.Reg.PC = m.Reg.R[base]

	case OpJSR:
		m.Reg.R[7] = m.Reg.PC

		if (instruction>>11)&0x1 == 1 {
			m.Reg.PC += word.SignExtend(instruction&0x7FF, 11)
		} else {
			base := (instruction >> 6) & 0x7
			m.Reg.PC = m.Reg.R[base]
		}

	case OpLD:
		dest := (instruction >> 9) & 0x7
		addr := m.Reg.PC + word.SignExtend(instruction&0x1FF, 9)
		m.Reg.R[dest] = m.Read(addr)
		m.updateFlagsReg(dest)

	case OpLDI:
		dest := (instruction >> 9) & 0x7
		addr := m.Reg.PC + word.SignExtend(instruction&0x1FF, 9)
		m.Reg.R[dest] = m.Read(m.Read(addr))
		m.updateFlagsReg(dest)

	case OpLDR:
		dest := (instruction >> 9) & 0x7
		base := (instruction >> 6) & 0x7
		addr := m.Reg.R[base] + word.SignExtend(instruction&0x3F, 6)
		m.Reg.R[dest] = m.Read(addr)
		m.updateFlagsReg(dest)

	case OpLEA:
		dest := (instruction >> 9) & 0x7
		m.Reg.R[dest] = m.Reg.PC + word.SignExtend(instruction&0x1FF, 9)
		m.updateFlagsReg(dest)

	case OpNOT:
		dest := (instruction >> 9) & 0x7
		src := (instruction >> 6) & 0x7
		m.Reg.R[dest] = ^m.Reg.R[src]
		m.updateFlagsReg(dest)

	case OpST:
		src := (instruction >> 9) & 0x7
		addr := m.Reg.PC + word.SignExtend(instruction&0x1FF, 9)
		m.Write(addr, m.Reg.R[src])

	case OpSTI:
		src := (instruction >> 9) & 0x7
		addr := m.Reg.PC + word.SignExtend(instruction&0x1FF, 9)
		m.Write(m.Read(addr), m.Reg.R[src])

	case OpSTR:
		src := (instruction >> 9) & 0x7
		base := (instruction >> 6) & 0x7
		addr := m.Reg.R[base] + word.SignExtend(instruction&0x3F, 6)
		m.Write(addr, m.Reg.R[src])

	case OpTRAP:
		m.Reg.R[7] = m.Reg.PC
		return m.trap(uint16(instruction & 0xFF))

	case OpRTI, OpRES:
		return &IllegalInstructionError{Opcode: opcode, PC: m.Reg.PC}
	}

	return nil
}
