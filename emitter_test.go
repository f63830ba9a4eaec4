package ppc32asm

import "testing"

func TestNewAssemblerDelegatesToBuffer(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Add(R3, R4, R5, false, false)
	if a.Used() != 4 {
		t.Fatalf("Used() = %d, want 4", a.Used())
	}
	if a.Reserved() != 64 {
		t.Fatalf("Reserved() = %d, want 64", a.Reserved())
	}
}

func TestEmitAllAppendsInOrder(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Liw(R3, 0x12345678)
	if a.Used() != 8 {
		t.Fatalf("Used() = %d, want 8 for a two-word Liw", a.Used())
	}
	if a.Buffer().WordAt(0) != Lis(R3, 0x1234) || a.Buffer().WordAt(4) != Ori(R3, R3, 0x5678) {
		t.Fatalf("Liw words out of order: %#08x %#08x", a.Buffer().WordAt(0), a.Buffer().WordAt(4))
	}
}

func TestHereMatchesCursorBeforeEmission(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Nop()
	before := a.Here()
	a.Nop()
	if before != 4 {
		t.Fatalf("Here() = %d, want 4", before)
	}
	if a.Cursor() != 8 {
		t.Fatalf("Cursor() = %d, want 8", a.Cursor())
	}
}

func TestSetBufferResetsCursor(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Nop()
	a.Nop()
	mem := make([]byte, 16)
	a.SetBuffer(mem)
	a.Nop()
	if a.Cursor() != 4 {
		t.Fatalf("Cursor() = %d, want 4", a.Cursor())
	}
}

func TestEmitterInterfaceSatisfiedByAssembler(t *testing.T) {
	var e Emitter = NewAssembler(64, FixedSize)
	e.EmitWord(Nop())
	if e.Cursor() != 4 {
		t.Fatalf("Cursor() via Emitter = %d, want 4", e.Cursor())
	}
}

func TestLoopEmitsCounterSetupBodyAndBackBranch(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	iterations := 0
	a.Loop(R5, 3, func(a *Assembler) {
		iterations++
		a.Nop()
	})
	if iterations != 1 {
		t.Fatalf("Loop body callback invoked %d times, want 1 (body is emitted once, branch loops at runtime)", iterations)
	}
	// Liw(1 word, since 3 fits Li) + body nop + addic. + bc = 4 words.
	if a.Used() != 16 {
		t.Fatalf("Used() = %d, want 16", a.Used())
	}
}
