package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xyproto/ppc32asm"
)

// TestDemoProgramMatchesGolden shells through the assemble -> dump ->
// re-read path and does a raw byte-equality check against
// testdata/golden/demo.bin (little-endian, the layout produced by
// binary.NativeEndian on the usual amd64/arm64 CI host).
func TestDemoProgramMatchesGolden(t *testing.T) {
	a := ppc32asm.NewAssembler(256, ppc32asm.FixedSize)
	buildDemoProgram(a)

	out := filepath.Join(t.TempDir(), "demo.bin")
	require.NoError(t, a.Dump(out))

	require.NoError(t, compareGolden(out, filepath.Join("..", "..", "testdata", "golden", "demo.bin")))
}

func TestCompareGoldenReportsMismatch(t *testing.T) {
	a := ppc32asm.NewAssembler(256, ppc32asm.FixedSize)
	a.Li(ppc32asm.R3, 0)
	a.Blr()

	out := filepath.Join(t.TempDir(), "mismatch.bin")
	require.NoError(t, a.Dump(out))

	err := compareGolden(out, filepath.Join("..", "..", "testdata", "golden", "demo.bin"))
	require.Error(t, err)
}
