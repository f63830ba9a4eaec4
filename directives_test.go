package ppc32asm

import "testing"

func TestAlignPadsToBoundary(t *testing.T) {
	b := NewBuffer(64, FixedSize)
	b.AppendByte(1)
	b.Align(4)
	if b.Cursor()%4 != 0 {
		t.Fatalf("cursor %d not aligned", b.Cursor())
	}
	if b.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", b.Cursor())
	}
}

func TestAlignOneIsNoOp(t *testing.T) {
	b := NewBuffer(64, FixedSize)
	b.AppendByte(1)
	before := b.Cursor()
	b.Align(1)
	if b.Cursor() != before {
		t.Fatalf("Align(1) moved the cursor")
	}
}

func TestAlignRejectsZero(t *testing.T) {
	b := NewBuffer(64, FixedSize)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for align(0)")
		}
	}()
	b.Align(0)
}

func TestDsAppendsTrailingNul(t *testing.T) {
	b := NewBuffer(64, FixedSize)
	b.Ds("hi")
	want := []byte{'h', 'i', 0}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestRepeatEmitsNCopies(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Repeat(3, func(a *Assembler) { a.Nop() })
	if a.Used() != 12 {
		t.Fatalf("Used() = %d, want 12", a.Used())
	}
}

func TestLoopZeroIterationsIsNoOp(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	a.Loop(R5, 0, func(a *Assembler) { a.Nop() })
	if a.Used() != 0 {
		t.Fatalf("Used() = %d, want 0 for zero-iteration loop", a.Used())
	}
}
