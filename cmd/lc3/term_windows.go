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

//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// windowsTerminal clears ENABLE_LINE_INPUT and ENABLE_ECHO_INPUT on the
// console input handle, per spec.md §6's Windows case, restoring the
// original mode on exit. There is no teacher source for this file (the
// teacher only targets POSIX); it uses the same golang.org/x/sys module
// the teacher already depends on, via its windows build subpackage.
type windowsTerminal struct {
	handle  windows.Handle
	restore uint32
}

func newTerminal() TerminalGuard {
	return &windowsTerminal{handle: windows.Handle(os.Stdin.Fd())}
}

func (t *windowsTerminal) EnableRaw() error {
	if err := windows.GetConsoleMode(t.handle, &t.restore); err != nil {
		return err
	}

	raw := t.restore &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT)

	return windows.SetConsoleMode(t.handle, raw)
}

func (t *windowsTerminal) Restore() error {
	return windows.SetConsoleMode(t.handle, t.restore)
}
