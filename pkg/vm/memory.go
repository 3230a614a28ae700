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

// Read returns the word at addr. Reading KBSR polls the host adapter: if
// a key is ready it is consumed into KBDR and bit 15 of KBSR is set;
// otherwise both device registers read as zero. All other addresses
// return the stored word directly.
func (m *Machine) Read(addr uint16) uint16 {
	if addr == KBSR {
		if m.io != nil {
			if key, ok := m.io.PeekKey(); ok {
				m.Mem[KBDR] = uint16(key)
				m.Mem[KBSR] = 1 << 15
			} else {
				m.Mem[KBSR] = 0
				m.Mem[KBDR] = 0
			}
		} else {
			m.Mem[KBSR] = 0
			m.Mem[KBDR] = 0
		}
	}

	return m.Mem[addr]
}

// Write stores value at addr. Writes to KBSR/KBDR are permitted but
// inert, matching the real device's read-only status registers.
func (m *Machine) Write(addr uint16, value uint16) {
	if addr == KBSR || addr == KBDR {
		return
	}

	m.Mem[addr] = value
}

// LoadImage copies words into memory starting at origin, truncating if
// the payload would run past 0xFFFF.
func (m *Machine) LoadImage(origin uint16, words []uint16) {
	for i, w := range words {
		addr := int(origin) + i
		if addr > 0xFFFF {
			break
		}

		m.Mem[addr] = w
	}
}
