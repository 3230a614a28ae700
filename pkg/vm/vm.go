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

// Step performs one fetch-decode-execute cycle: fetch the word at PC,
// increment PC, then decode and run it. It returns a non-nil error only
// for the fatal conditions this emulator defines (illegal instruction,
// host I/O failure on output); guest-visible arithmetic never fails.
func (m *Machine) Step() error {
	instruction := m.Read(m.Reg.PC)
	m.Reg.PC++

	return m.exec(instruction)
}

// Run steps the machine until it halts or a fatal error occurs. Callers
// that also invoke Abort do so from a different goroutine (typically a
// signal handler); the running flag is an atomic.Bool for exactly that
// reason.
func (m *Machine) Run() error {
	for m.running.Load() {
		if err := m.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Abort requests an orderly stop of Run on the next loop check, for use
// from a host-level signal handler running concurrently with Run. It
// does not run the HALT trap.
func (m *Machine) Abort() {
	m.running.Store(false)
}
