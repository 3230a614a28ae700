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

// updateFlags derives N/Z/P from value and sets it as the sole bit of
// Cond, exactly per the sign of value's 16-bit two's complement form.
func (m *Machine) updateFlags(value uint16) {
	switch {
	case value == 0:
		m.Reg.Cond = FlagZro
	case value>>15 == 1:
		m.Reg.Cond = FlagNeg
	default:
		m.Reg.Cond = FlagPos
	}
}

// updateFlagsReg updates Cond from the current value of register r.
func (m *Machine) updateFlagsReg(r uint16) {
	m.updateFlags(m.Reg.R[r])
}
