package ppc32asm

import "testing"

func TestMtlrUsesSprEight(t *testing.T) {
	got := Mtlr(R3)
	want := Mtspr(sprLR, R3)
	if got != want {
		t.Fatalf("Mtlr = %#08x, want %#08x (Mtspr with SPR=8)", got, want)
	}
}

func TestMtctrUsesSprNine(t *testing.T) {
	got := Mtctr(R3)
	want := Mtspr(sprCTR, R3)
	if got != want {
		t.Fatalf("Mtctr = %#08x, want %#08x (Mtspr with SPR=9)", got, want)
	}
}

func TestSprFieldsSplitLowHigh(t *testing.T) {
	lo, hi := sprFields(8) // LR = spr 8 = 0b0000001000
	if lo != 8 || hi != 0 {
		t.Fatalf("sprFields(8) = (%d,%d), want (8,0)", lo, hi)
	}
	lo, hi = sprFields(9) // CTR = spr 9
	if lo != 9 || hi != 0 {
		t.Fatalf("sprFields(9) = (%d,%d), want (9,0)", lo, hi)
	}
}

func TestMtcrFieldSetsCorrectMaskBit(t *testing.T) {
	got := MtcrField(CRField(0), R3)
	want := Mtcrf(1<<7, R3)
	if got != want {
		t.Fatalf("MtcrField(0) = %#08x, want %#08x (fxm bit 7)", got, want)
	}
	got = MtcrField(CRField(7), R3)
	want = Mtcrf(1<<0, R3)
	if got != want {
		t.Fatalf("MtcrField(7) = %#08x, want %#08x (fxm bit 0)", got, want)
	}
}

func TestCrOpsRejectOutOfRangeBitNumbers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for CR bit number > 31")
		}
	}()
	CrAnd(32, 0, 0)
}

func TestCrOrCDistinctFromCrOr(t *testing.T) {
	if CrOrC(0, 1, 2) == CrOr(0, 1, 2) {
		t.Fatal("CrOrC and CrOr must use distinct extended opcodes")
	}
}

func TestMfsrUsesExtendedOpcode595(t *testing.T) {
	got := Mfsr(R3, SR(4))
	want := xForm(31, R3.field(), SR(4).field(), 0, 595, false)
	if got != want {
		t.Fatalf("Mfsr = %#08x, want %#08x (XO=595)", got, want)
	}
}

func TestMfsrinUsesExtendedOpcode659(t *testing.T) {
	got := Mfsrin(R3, R5)
	want := xForm(31, R3.field(), 0, R5.field(), 659, false)
	if got != want {
		t.Fatalf("Mfsrin = %#08x, want %#08x (XO=659)", got, want)
	}
}

func TestMfsrDistinctFromMtsr(t *testing.T) {
	if Mfsr(R3, SR(4)) == Mtsr(SR(4), R3) {
		t.Fatal("Mfsr and Mtsr must use distinct extended opcodes")
	}
}

func TestMfsrinDistinctFromMtsrin(t *testing.T) {
	if Mfsrin(R3, R5) == Mtsrin(R3, R5) {
		t.Fatal("Mfsrin and Mtsrin must use distinct extended opcodes")
	}
}
