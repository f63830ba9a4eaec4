package ppc32asm

import "testing"

func TestLiwPicksShortestEncoding(t *testing.T) {
	tests := []struct {
		name string
		imm  uint32
		n    int
	}{
		{"small positive fits Li", 42, 1},
		{"negative fits Li", 0xffffffff, 1},
		{"zero low half uses Lis only", 0x00010000, 1},
		{"general 32-bit needs Lis+Ori", 0x12345678, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := Liw(R3, tt.imm)
			if len(words) != tt.n {
				t.Fatalf("Liw(%#x) produced %d words, want %d", tt.imm, len(words), tt.n)
			}
		})
	}
}

func TestSetzDetectsZero(t *testing.T) {
	words := Setz(R3, R4)
	if len(words) != 2 {
		t.Fatalf("Setz produced %d words, want 2", len(words))
	}
	if words[0] != CntlzW(R3, R4, false) {
		t.Fatalf("first word should be cntlzw")
	}
	if words[1] != Srwi(R3, R3, 5, false) {
		t.Fatalf("second word should be srwi by 5")
	}
}

func TestLiuEmitsLiThenOriRegardlessOfR0(t *testing.T) {
	words := Liu(R3, 0xbeef)
	if len(words) != 2 {
		t.Fatalf("Liu produced %d words, want 2", len(words))
	}
	if words[0] != Li(R3, 0) {
		t.Fatalf("first word should be li d,0, got %#x", words[0])
	}
	if words[1] != Ori(R3, R3, 0xbeef) {
		t.Fatalf("second word should be ori d,d,imm, got %#x", words[1])
	}
	// Liu must not read R0's contents as the source operand: ori has no
	// RA=0-means-zero special case, so the only safe way to get a literal
	// zero into d is an explicit li first.
	if words[0] == Ori(R3, R0, 0xbeef) {
		t.Fatalf("Liu must not degenerate into a single ori with RS=r0")
	}
}

func TestNopIsOriZero(t *testing.T) {
	if Nop() != Ori(R0, R0, 0) {
		t.Fatalf("Nop() must equal ori 0,0,0")
	}
}
