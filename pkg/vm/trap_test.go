package vm_test

import (
	"testing"

	"lc3/pkg/vm"
)

func TestTrapPuts(t *testing.T) {
	io := &fakeIO{}
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Reg.R[0] = 0x4000
	m.Write(0x3000, 0xF022) // TRAP PUTS
	m.Write(0x4000, uint16('H'))
	m.Write(0x4001, uint16('i'))
	m.Write(0x4002, 0)

	if err := m.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if got, want := string(io.output), "Hi"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTrapPutsStopsAtWraparound(t *testing.T) {
	io := &fakeIO{}
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Reg.R[0] = 0xFFFF
	m.Write(0x3000, 0xF022) // TRAP PUTS
	m.Write(0xFFFF, uint16('X'))

	if err := m.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if got, want := string(io.output), "X"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTrapPutsp(t *testing.T) {
	io := &fakeIO{}
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Reg.R[0] = 0x4000
	m.Write(0x3000, 0xF024) // TRAP PUTSP
	m.Write(0x4000, uint16('H')|uint16('i')<<8)
	m.Write(0x4001, uint16('!'))
	m.Write(0x4002, 0)

	if err := m.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if got, want := string(io.output), "Hi!"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTrapGetc(t *testing.T) {
	io := &fakeIO{input: []byte{'Q'}}
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Write(0x3000, 0xF020) // TRAP GETC

	if err := m.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if m.Reg.R[0] != uint16('Q') {
		t.Errorf("R0 = %#04x, want %#04x", m.Reg.R[0], uint16('Q'))
	}

	if m.Reg.Cond != vm.FlagPos {
		t.Errorf("Cond = %#03b, want P", m.Reg.Cond)
	}
}

func TestTrapGetcOnStdinErrorSurfacesZero(t *testing.T) {
	io := &fakeIO{} // no input queued
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Reg.R[0] = 0xBEEF
	m.Write(0x3000, 0xF020) // TRAP GETC

	if err := m.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if m.Reg.R[0] != 0 {
		t.Errorf("R0 = %#04x, want 0", m.Reg.R[0])
	}

	if m.Reg.Cond != vm.FlagZro {
		t.Errorf("Cond = %#03b, want Z", m.Reg.Cond)
	}
}

func TestTrapOutFatalOnWriteError(t *testing.T) {
	io := &fakeIO{failWr: true}
	m := vm.New(io)
	m.Reg.PC = 0x3000
	m.Write(0x3000, 0xF021) // TRAP OUT

	err := m.Step()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var hostErr *vm.HostIOError
	if !asHostIOError(err, &hostErr) {
		t.Errorf("expected *vm.HostIOError, got %T: %v", err, err)
	}
}

func asHostIOError(err error, target **vm.HostIOError) bool {
	if e, ok := err.(*vm.HostIOError); ok {
		*target = e
		return true
	}

	return false
}

func TestTrapUnknownVectorIsIllegal(t *testing.T) {
	m := vm.New(&fakeIO{})
	m.Reg.PC = 0x3000
	m.Write(0x3000, 0xF0FF) // TRAP 0xFF, unassigned

	err := m.Step()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if _, ok := err.(*vm.IllegalInstructionError); !ok {
		t.Errorf("expected *vm.IllegalInstructionError, got %T: %v", err, err)
	}
}
