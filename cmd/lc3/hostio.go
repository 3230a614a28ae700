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

package main

import "bufio"

// stdIO wires stdin/stdout to a vm.HostIO, mirroring the teacher's
// DeviceHandler shape (a *bufio.Reader over stdin, a *bufio.Writer over
// stdout) but hidden behind the interface pkg/vm depends on.
type stdIO struct {
	in  *bufio.Reader
	out *bufio.Writer
}

func newStdIO(in *bufio.Reader, out *bufio.Writer) *stdIO {
	return &stdIO{in: in, out: out}
}

func (s *stdIO) ReadByte() (byte, error) {
	return s.in.ReadByte()
}

// PeekKey reports whether a key is ready by attempting to consume one
// byte from stdin. With the terminal in raw, non-canonical mode
// (VMIN=0, VTIME=0 on POSIX; no line-input on Windows) this returns
// immediately whether or not a key is waiting, matching the teacher's
// own KBSR handler in pkg/machine/machine.go.
func (s *stdIO) PeekKey() (byte, bool) {
	b, err := s.in.ReadByte()
	if err != nil {
		return 0, false
	}

	return b, true
}

func (s *stdIO) WriteByte(b byte) error {
	return s.out.WriteByte(b)
}

func (s *stdIO) Flush() error {
	return s.out.Flush()
}
