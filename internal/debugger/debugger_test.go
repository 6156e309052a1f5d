package debugger

import (
	"errors"
	"testing"

	"github.com/quietloop/chip8vm/internal/chip8"
)

func TestUndoIsInverseOfStep(t *testing.T) {
	vm := chip8.New()
	rom := []byte{0x60, 0x01, 0x61, 0x02, 0x70, 0x05, 0xA2, 0x00}
	if err := vm.LoadProgram(rom); err != nil {
		t.Fatal(err)
	}
	dbg := New(vm)

	before := vm.Snapshot()

	const n = 4
	for i := 0; i < n; i++ {
		if _, err := dbg.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	for i := 0; i < n; i++ {
		if _, err := dbg.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}

	after := vm.Snapshot()
	if after != before {
		t.Fatalf("state after N steps + N undos does not match pre-step state")
	}
}

func TestUndoOnEmptyStackFailsCleanly(t *testing.T) {
	vm := chip8.New()
	dbg := New(vm)

	before := vm.Snapshot()
	_, err := dbg.Undo()
	if !errors.Is(err, chip8.ErrStackUnderflow) {
		t.Fatalf("got %v, want ErrStackUnderflow", err)
	}
	if vm.Snapshot() != before {
		t.Fatalf("failed undo mutated machine state")
	}
}

func TestOnExecReceivesStepAndUndoEvents(t *testing.T) {
	vm := chip8.New()
	rom := []byte{0x60, 0x2A}
	if err := vm.LoadProgram(rom); err != nil {
		t.Fatal(err)
	}
	dbg := New(vm)

	var events []EventKind
	dbg.OnExec(func(kind EventKind, ins chip8.Instruction) {
		events = append(events, kind)
	})

	if _, err := dbg.Step(); err != nil {
		t.Fatal(err)
	}
	if _, err := dbg.Undo(); err != nil {
		t.Fatal(err)
	}

	if len(events) != 2 || events[0] != Step || events[1] != Undo {
		t.Fatalf("events = %v, want [Step, Undo]", events)
	}
}

func TestSilentVariantsSkipCallbacks(t *testing.T) {
	vm := chip8.New()
	rom := []byte{0x60, 0x2A}
	if err := vm.LoadProgram(rom); err != nil {
		t.Fatal(err)
	}
	dbg := New(vm)

	called := false
	dbg.OnExec(func(kind EventKind, ins chip8.Instruction) { called = true })

	if _, err := dbg.StepSilent(); err != nil {
		t.Fatal(err)
	}
	if _, err := dbg.UndoSilent(); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("silent variants must not fire callbacks")
	}
}

func TestLiveEditing(t *testing.T) {
	vm := chip8.New()
	dbg := New(vm)

	dbg.SetRegister(3, 0x42)
	if dbg.Register(3) != 0x42 {
		t.Fatalf("Register(3) = %#02x, want 0x42", dbg.Register(3))
	}

	dbg.SetPC(0x400)
	if dbg.PC() != 0x400 {
		t.Fatalf("PC() = %#04x, want 0x400", dbg.PC())
	}

	dbg.SetIndexRegister(0x321)
	if dbg.Index() != 0x321 {
		t.Fatalf("Index() = %#04x, want 0x321", dbg.Index())
	}

	dbg.SetMemoryByte(0x500, 0x99)
	if dbg.Memory()[0x500] != 0x99 {
		t.Fatalf("Memory()[0x500] = %#02x, want 0x99", dbg.Memory()[0x500])
	}
}
