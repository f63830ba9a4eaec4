package ppc32asm

import (
	"encoding/binary"
	"testing"
)

func TestNewBufferRejectsUnalignedSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unaligned buffer size")
		}
	}()
	NewBuffer(3, FixedSize)
}

func TestBufferAppendWordHostEndian(t *testing.T) {
	b := NewBuffer(64, FixedSize)
	b.AppendWord(0x11223344)
	got := binary.NativeEndian.Uint32(b.Bytes())
	if got != 0x11223344 {
		t.Fatalf("got %#x, want %#x", got, 0x11223344)
	}
	if b.Used() != 4 {
		t.Fatalf("Used() = %d, want 4", b.Used())
	}
}

func TestFixedSizeOverflowFails(t *testing.T) {
	b := NewBuffer(4, FixedSize)
	b.AppendWord(0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on FixedSize overflow")
		}
	}()
	b.AppendWord(0)
}

func TestAutoGrowSurvivesReallocation(t *testing.T) {
	b := NewBuffer(4, AutoGrow)
	b.SetGrowStep(4)
	for i := 0; i < 4; i++ {
		b.AppendWord(uint32(i))
	}
	if b.Used() != 16 {
		t.Fatalf("Used() = %d, want 16", b.Used())
	}
	for i := 0; i < 4; i++ {
		if got := b.WordAt(i * 4); got != uint32(i) {
			t.Fatalf("word %d = %d, want %d", i, got, i)
		}
	}
}

func TestPatchWordAtDoesNotMoveCursor(t *testing.T) {
	b := NewBuffer(8, FixedSize)
	b.AppendWord(0)
	b.AppendWord(0)
	before := b.Cursor()
	b.PatchWordAt(0, 0xdeadbeef)
	if b.Cursor() != before {
		t.Fatalf("cursor moved: %d -> %d", before, b.Cursor())
	}
	if b.WordAt(0) != 0xdeadbeef {
		t.Fatalf("patch did not take effect")
	}
}
