package ppc32asm

import "fmt"

// The four PowerPC register namespaces are small integers sharing the
// same underlying range, but are distinguished at the type level so that
// passing an FPR where a GPR is expected is a compile error, not a
// runtime surprise. Each is a newtype over uint8, one disjoint Go type
// per register file.

// GPR names a general-purpose register, 0..31.
type GPR uint8

// FPR names a floating-point register, 0..31.
type FPR uint8

// VR names an AltiVec vector register, 0..31.
type VR uint8

// SR names a segment register, 0..15.
type SR uint8

// CRField names one of the eight condition-register fields, 0..7.
type CRField uint8

// Conventional GPR aliases.
const (
	R0  GPR = 0
	R1  GPR = 1
	R2  GPR = 2
	R3  GPR = 3
	R4  GPR = 4
	R5  GPR = 5
	R6  GPR = 6
	R7  GPR = 7
	R8  GPR = 8
	R9  GPR = 9
	R10 GPR = 10
	R11 GPR = 11
	R12 GPR = 12
	R13 GPR = 13
	R14 GPR = 14
	R15 GPR = 15
	R16 GPR = 16
	R17 GPR = 17
	R18 GPR = 18
	R19 GPR = 19
	R20 GPR = 20
	R21 GPR = 21
	R22 GPR = 22
	R23 GPR = 23
	R24 GPR = 24
	R25 GPR = 25
	R26 GPR = 26
	R27 GPR = 27
	R28 GPR = 28
	R29 GPR = 29
	R30 GPR = 30
	R31 GPR = 31

	Zero GPR = 0
	SP   GPR = 1
	TOC  GPR = 2
)

// Parameter-register aliases, following the PowerPC ELF calling
// convention (r3..r10 carry the first eight integer/pointer arguments).
const (
	ArgR0 GPR = 3
	ArgR1 GPR = 4
	ArgR2 GPR = 5
	ArgR3 GPR = 6
	ArgR4 GPR = 7
	ArgR5 GPR = 8
	ArgR6 GPR = 9
	ArgR7 GPR = 10
)

func checkReg5(name string, v uint8) {
	if v > 31 {
		fail(ErrIllegalArg, "%s register %d out of range 0..31", name, v)
	}
}

func checkSR(v uint8) {
	if v > 15 {
		fail(ErrIllegalArg, "SR register %d out of range 0..15", v)
	}
}

func checkCRField(v uint8) {
	if v > 7 {
		fail(ErrIllegalArg, "CR field %d out of range 0..7", v)
	}
}

// field returns the register's 5-bit encoding after validating its range;
// used internally by the encoder to avoid repeating the same bounds check
// per mnemonic.
func (r GPR) field() uint32 {
	checkReg5("GPR", uint8(r))
	return uint32(r)
}

func (r FPR) field() uint32 {
	checkReg5("FPR", uint8(r))
	return uint32(r)
}

func (r VR) field() uint32 {
	checkReg5("VR", uint8(r))
	return uint32(r)
}

func (r SR) field() uint32 {
	checkSR(uint8(r))
	return uint32(r)
}

func (r CRField) field() uint32 {
	checkCRField(uint8(r))
	return uint32(r)
}

func (r GPR) String() string     { return fmt.Sprintf("r%d", uint8(r)) }
func (r FPR) String() string     { return fmt.Sprintf("f%d", uint8(r)) }
func (r VR) String() string      { return fmt.Sprintf("v%d", uint8(r)) }
func (r SR) String() string      { return fmt.Sprintf("sr%d", uint8(r)) }
func (r CRField) String() string { return fmt.Sprintf("cr%d", uint8(r)) }
