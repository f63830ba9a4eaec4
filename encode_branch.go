package ppc32asm

// Raw branch-word encodings. Range checking is the caller's job: label.go
// checks the displacement (and the absolute-address fallback) before
// calling SetBranch14Disp/SetBranch24Disp. This file packs bits and
// rejects only unaligned displacements. There are no immediate-target
// b(ptr)/bl(ptr) methods on Assembler; BranchCondDisp and BranchDisp
// build a word for an already-known displacement without checking its
// range.

const (
	condBranchBase   uint32 = 0x40800000 // bc-form base
	uncondBranchBase uint32 = 0x48000000 // b-form base
)

// BranchCondRaw packs a 14-bit-displacement conditional branch word with
// the displacement field left at zero -- used by Assembler.Bc to emit the
// placeholder, which label.go patches via SetBranch14Disp once the target
// is known.
func BranchCondRaw(cond Condition, lk bool) uint32 {
	w := condBranchBase
	if cond.bitSet() {
		w |= 1 << 24
	}
	w |= cond.crBit() << 16
	if lk {
		w |= 1
	}
	return w
}

// BranchCondDisp packs a conditional branch word with its displacement
// already known (the immediate-target case, or a backward branch whose
// target offset is computed before the word is built).
func BranchCondDisp(cond Condition, disp int32, lk bool) uint32 {
	w := BranchCondRaw(cond, lk)
	return SetBranch14Disp(w, disp, false)
}

// BranchRaw packs a 24-bit-displacement unconditional branch word with
// the displacement field left at zero.
func BranchRaw(lk bool) uint32 {
	w := uncondBranchBase
	if lk {
		w |= 1
	}
	return w
}

func BranchDisp(disp int32, lk bool) uint32 {
	w := BranchRaw(lk)
	return SetBranch24Disp(w, disp, false)
}

// SetBranch14Disp rewrites the 14-bit-word (16-bit byte) displacement
// field of a conditional-branch word. If abs is true the AA bit is also
// set and disp is treated as an absolute address rather than a relative
// displacement.
func SetBranch14Disp(word uint32, disp int32, abs bool) uint32 {
	if disp&3 != 0 {
		fail(ErrUnaligned, "branch displacement %d is not word-aligned", disp)
	}
	word &^= 0xfffe
	word |= uint32(disp) & 0xfffc
	if abs {
		word |= 1 << 1
	}
	return word
}

// SetBranch24Disp is SetBranch14Disp's 26-bit-byte-mask counterpart for
// unconditional branches.
func SetBranch24Disp(word uint32, disp int32, abs bool) uint32 {
	if disp&3 != 0 {
		fail(ErrUnaligned, "branch displacement %d is not word-aligned", disp)
	}
	word &^= 0x3fffffe
	word |= uint32(disp) & 0x3fffffc
	if abs {
		word |= 1 << 1
	}
	return word
}

// InRangeBranch14 reports whether disp fits the signed 16-bit relative
// range required by the 14-bit-word branch form.
func InRangeBranch14(disp int32) bool {
	return disp >= -0x8000 && disp <= 0x7fff
}

// InRangeBranch24 reports whether disp fits the signed 26-bit relative
// range required by the 24-bit-word branch form.
func InRangeBranch24(disp int32) bool {
	return disp >= -0x2000000 && disp <= 0x1ffffff
}

// --- fixed-encoding branch/system words ---

const (
	Blr   uint32 = 0x4e800020 // bclr   20,0,0
	Bctr  uint32 = 0x4e800420 // bcctr  20,0,0
	Bctrl uint32 = 0x4e800421 // bcctrl 20,0,0
	Sc    uint32 = 0x44000002
	Rfi   uint32 = 0x4c000064
	Isync uint32 = 0x4c00012c
	Sync  uint32 = 0x7c0004ac
	Eieio uint32 = 0x7c0006ac
)

// --- cache/TLB management (X-form, RA/RB operands, no RT) ---

func Icbi(a, b GPR) uint32    { return xForm(31, 0, a.field(), b.field(), 982, false) }
func Dcbf(a, b GPR) uint32    { return xForm(31, 0, a.field(), b.field(), 86, false) }
func Dcbi(a, b GPR) uint32    { return xForm(31, 0, a.field(), b.field(), 470, false) }
func Dcbst(a, b GPR) uint32   { return xForm(31, 0, a.field(), b.field(), 54, false) }
func Dcbt(a, b GPR) uint32    { return xForm(31, 0, a.field(), b.field(), 278, false) }
func DcbTst(a, b GPR) uint32  { return xForm(31, 0, a.field(), b.field(), 246, false) }
func Dcbz(a, b GPR) uint32    { return xForm(31, 0, a.field(), b.field(), 1014, false) }
func DcbzL(a, b GPR) uint32   { return xForm(4, 0, a.field(), b.field(), 1014, false) }
func Tlbie(b GPR) uint32      { return xForm(31, 0, 0, b.field(), 306, false) }
func Tlbsync() uint32         { return xForm(31, 0, 0, 0, 566, false) }
