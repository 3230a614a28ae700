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

// Package vm implements the LC-3 fetch-decode-execute cycle: memory, the
// register file, the sixteen opcodes, and the trap service routines that
// bridge the guest to host I/O. It has no OS-specific imports; terminal
// setup and image-file parsing are external collaborators.
package vm

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Memory is the LC-3's linear 64Ki-word address space.
type Memory [1 << 16]uint16

// Registers is the LC-3 register file: eight general-purpose registers,
// the program counter, and the condition code.
type Registers struct {
	R    [8]uint16
	PC   uint16
	Cond uint16
}

// HostIO is the capability a Machine borrows to bridge trap instructions
// and memory-mapped keyboard reads to the outside world. Concrete
// adapters (raw terminal, buffered file, in-memory fake) live outside
// this package.
type HostIO interface {
	io.ByteReader
	io.ByteWriter

	// PeekKey polls for an available byte without blocking; ok is false
	// when no key is ready. Used by the KBSR memory-mapped read.
	PeekKey() (b byte, ok bool)
	// Flush pushes any buffered output to its destination.
	Flush() error
}

// Machine is the aggregate LC-3 state: memory, registers, and the halt
// flag. Its zero value is not ready to run; use New.
//
// running is an atomic.Bool rather than a plain bool because Abort is
// meant to be called from a signal-handling goroutine while Run's loop
// reads it from the goroutine actually stepping the machine.
type Machine struct {
	Mem Memory
	Reg Registers

	running atomic.Bool
	io      HostIO
}

// New returns a Machine at its documented boot state: R0..R7 zero,
// PC at the default user origin, COND = Z, running = true.
func New(hostIO HostIO) *Machine {
	m := &Machine{io: hostIO}
	m.Reset()
	return m
}

// Reset restores boot state without discarding loaded memory contents.
func (m *Machine) Reset() {
	m.Reg = Registers{PC: UserOrigin, Cond: FlagZro}
	m.running.Store(true)
}

// Running reports whether the fetch-execute loop should keep stepping.
func (m *Machine) Running() bool {
	return m.running.Load()
}

// IllegalInstructionError reports execution of the reserved (0xD) or
// RTI (0x8) opcode. Both are fatal per this emulator's non-goals around
// privileged/interrupt modes.
type IllegalInstructionError struct {
	Opcode uint16
	PC     uint16
}

func (e *IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction %#x at pc %#04x", e.Opcode, e.PC)
}

// HostIOError reports a failure from the host I/O adapter during a trap.
// Output errors produce it; stdin errors in GETC/IN are surfaced as a zero
// read instead, and memory-mapped device reads never fail.
type HostIOError struct {
	Op  string
	Err error
}

func (e *HostIOError) Error() string {
	return fmt.Sprintf("host i/o error during %s: %v", e.Op, e.Err)
}

func (e *HostIOError) Unwrap() error {
	return e.Err
}
