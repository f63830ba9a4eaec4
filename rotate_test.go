package ppc32asm

import "testing"

// TestRotateAliasesMatchRawRlwinm checks that every shift/rotate alias's
// word is bit-identical to calling Rlwinm directly with the equivalent
// (shift, mb, me).
func TestRotateAliasesMatchRawRlwinm(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"Slwi", Slwi(R3, R4, 5, false), Rlwinm(R3, R4, 5, 0, 26, false)},
		{"Srwi", Srwi(R3, R4, 5, false), Rlwinm(R3, R4, 27, 5, 31, false)},
		{"Clrlwi", Clrlwi(R3, R4, 8, false), Rlwinm(R3, R4, 0, 8, 31, false)},
		{"Clrrwi", Clrrwi(R3, R4, 8, false), Rlwinm(R3, R4, 0, 0, 23, false)},
		{"Rotlwi", Rotlwi(R3, R4, 9, false), Rlwinm(R3, R4, 9, 0, 31, false)},
		{"Rotrwi", Rotrwi(R3, R4, 9, false), Rlwinm(R3, R4, 23, 0, 31, false)},
		{"Extlwi", Extlwi(R3, R4, 6, 2, false), Rlwinm(R3, R4, 2, 0, 5, false)},
		{"Extrwi", Extrwi(R3, R4, 6, 2, false), Rlwinm(R3, R4, 8, 26, 31, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("%s = %#08x, want %#08x (raw Rlwinm)", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRlwinmRejectsOutOfRangeFields(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for shift > 31")
		}
	}()
	Rlwinm(R3, R4, 32, 0, 0, false)
}
