package ppc32asm

import (
	"encoding/binary"
	"testing"
)

// TestLabelSurvivesBufferGrowth is the AutoGrow hazard regression: a
// Label captured before a reallocation must still resolve correctly
// against the post-grow buffer, because it is index-based rather than a
// pointer into the pre-grow backing array.
func TestLabelSurvivesBufferGrowth(t *testing.T) {
	a := NewAssembler(4, AutoGrow)
	a.SetGrowStep(4)

	l := a.B(false) // forces at least one grow as the buffer fills up
	for i := 0; i < 8; i++ {
		a.Nop()
	}
	a.SetLabel(l)

	word := binary.NativeEndian.Uint32(a.Bytes()[0:4])
	wantDisp := int32(a.Used())
	want := BranchDisp(wantDisp, false)
	if word != want {
		t.Fatalf("branch word after grow = %#08x, want %#08x", word, want)
	}
}

func TestSetLabelIsIdempotent(t *testing.T) {
	a := NewAssembler(64, FixedSize)
	l := a.Bc(Eq, false)
	a.Nop()
	a.SetLabel(l)
	first := binary.NativeEndian.Uint32(a.Bytes()[0:4])
	a.SetLabel(l)
	second := binary.NativeEndian.Uint32(a.Bytes()[0:4])
	if first != second {
		t.Fatalf("resolving the same label twice changed the word: %#08x -> %#08x", first, second)
	}
}
