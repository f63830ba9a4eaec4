package ppc32asm

import "testing"

func TestVaddfpUsesPrimaryFour(t *testing.T) {
	got := Vaddfp(VR(1), VR(2), VR(3))
	if got>>26 != primaryVector {
		t.Fatalf("Vaddfp primary opcode = %d, want %d", got>>26, primaryVector)
	}
}

func TestVrefpLeavesVAZero(t *testing.T) {
	got := Vrefp(VR(1), VR(2))
	want := vxForm(1, 0, 2, 266)
	if got != want {
		t.Fatalf("Vrefp = %#08x, want %#08x", got, want)
	}
}

func TestVpermIsVAForm(t *testing.T) {
	got := Vperm(VR(1), VR(2), VR(3), VR(4))
	want := uint32(primaryVector)<<26 | 1<<shiftA | 2<<shiftB | 3<<shiftC | 4<<shiftD | 43
	if got != want {
		t.Fatalf("Vperm = %#08x, want %#08x", got, want)
	}
}

func TestDssEncodesStreamNumber(t *testing.T) {
	got := Dss(2)
	want := vxForm(2, 0, 0, 822)
	if got != want {
		t.Fatalf("Dss(2) = %#08x, want %#08x", got, want)
	}
}

func TestDssallSetsAllBit(t *testing.T) {
	got := Dssall()
	want := vxForm(1<<4, 0, 0, 822)
	if got != want {
		t.Fatalf("Dssall = %#08x, want %#08x", got, want)
	}
}

func TestDssRejectsStreamNumberOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for strm > 3")
		}
	}()
	Dss(4)
}
