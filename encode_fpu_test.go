package ppc32asm

import "testing"

func TestFaddUsesDoublePrecisionOpcode(t *testing.T) {
	got := Fadd(FPR(1), FPR(2), FPR(3), false)
	want := aForm(primaryFPDouble, 1, 2, 3, 0, 21, false)
	if got != want {
		t.Fatalf("Fadd = %#08x, want %#08x", got, want)
	}
	if got>>26 != primaryFPDouble {
		t.Fatalf("Fadd primary opcode = %d, want %d", got>>26, primaryFPDouble)
	}
}

func TestFaddsUsesSinglePrecisionOpcode(t *testing.T) {
	got := Fadds(FPR(1), FPR(2), FPR(3), false)
	if got>>26 != primaryFPSingle {
		t.Fatalf("Fadds primary opcode = %d, want %d", got>>26, primaryFPSingle)
	}
}

func TestFmaddOperandPlacement(t *testing.T) {
	// dest = a*c + b: b at FRB (shiftC), c at FRC (shiftD), a at FRA (shiftB).
	got := Fmadd(FPR(1), FPR(2), FPR(3), FPR(4), false)
	want := uint32(primaryFPDouble)<<26 | 1<<shiftA | 2<<shiftB | 3<<shiftC | 4<<shiftD | 29<<1
	if got != want {
		t.Fatalf("Fmadd = %#08x, want %#08x", got, want)
	}
}

func TestPsOpsUsePrimaryFour(t *testing.T) {
	got := PsAdd(FPR(1), FPR(2), FPR(3), false)
	if got>>26 != primaryPS {
		t.Fatalf("PsAdd primary opcode = %d, want %d", got>>26, primaryPS)
	}
}

func TestPsMergeVariantsAreDistinct(t *testing.T) {
	vals := []uint32{
		PsMerge00(FPR(1), FPR(2), FPR(3), false),
		PsMerge01(FPR(1), FPR(2), FPR(3), false),
		PsMerge10(FPR(1), FPR(2), FPR(3), false),
		PsMerge11(FPR(1), FPR(2), FPR(3), false),
	}
	seen := map[uint32]bool{}
	for _, v := range vals {
		if seen[v] {
			t.Fatalf("duplicate ps_merge encoding %#08x", v)
		}
		seen[v] = true
	}
}

func TestFcmpuAndFcmpoDiffer(t *testing.T) {
	if Fcmpu(CRField(0), FPR(1), FPR(2)) == Fcmpo(CRField(0), FPR(1), FPR(2)) {
		t.Fatal("fcmpu and fcmpo must differ")
	}
}
