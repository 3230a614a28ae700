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

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// unixTerminal disables ICANON/ECHO on stdin, per spec.md §6's POSIX
// case, restoring the original Termios on exit. Grounded on the
// teacher's cmd/golc3/term.go, which manipulated the same fields.
type unixTerminal struct {
	fd      int
	restore unix.Termios
}

func newTerminal() TerminalGuard {
	return &unixTerminal{fd: int(os.Stdin.Fd())}
}

func (t *unixTerminal) EnableRaw() error {
	termios, err := unix.IoctlGetTermios(t.fd, unix.TIOCGETA)
	if err != nil {
		return err
	}

	t.restore = *termios
	raw := *termios

	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8

	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(t.fd, unix.TIOCSETA, &raw)
}

func (t *unixTerminal) Restore() error {
	return unix.IoctlSetTermios(t.fd, unix.TIOCSETA, &t.restore)
}
