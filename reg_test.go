package ppc32asm

import "testing"

func TestGPRFieldRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for GPR > 31")
		}
	}()
	GPR(32).field()
}

func TestSRFieldRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for SR > 15")
		}
	}()
	SR(16).field()
}

func TestCRFieldRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for CR field > 7")
		}
	}()
	CRField(8).field()
}

func TestRegisterStringers(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{R3.String(), "r3"},
		{FPR(2).String(), "f2"},
		{VR(5).String(), "v5"},
		{SR(1).String(), "sr1"},
		{CRField(0).String(), "cr0"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestArgRegisterAliasesMatchCallingConvention(t *testing.T) {
	if ArgR0 != R3 || ArgR1 != R4 || ArgR7 != R10 {
		t.Fatal("ArgRn aliases must follow r3..r10")
	}
}
