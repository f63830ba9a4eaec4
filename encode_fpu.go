package ppc32asm

// Floating-point load/store and scalar arithmetic encodings, plus the
// Gekko/Broadway paired-single extension. A-form layout (used by all
// arithmetic below) happens to share the encoder.go shift table exactly:
// FRC sits at shiftD (6), FRB at shiftC (11), FRA at shiftB (16), FRT at
// shiftA (21) -- the same positions encode_intops.go's X-form/XO-form
// helpers already use, so aForm below is effectively xForm with a 5-bit
// extended opcode instead of 10.

const (
	primaryFPDouble = 63 // double-precision scalar FP arithmetic
	primaryFPSingle = 59 // single-precision scalar FP arithmetic
	primaryPS       = 4  // paired-single arithmetic (Gekko/Broadway)
)

func aForm(primary, frt, fra, frb, frc, xo uint32, rc bool) uint32 {
	w := primary<<26 | frt<<shiftA | fra<<shiftB | frb<<shiftC | frc<<shiftD
	w |= xo << 1
	w |= recordBit(rc)
	return w
}

// --- FP load/store (D-form, same shape as encode_loadstore.go) ---

func Lfs(d FPR, disp int32, a GPR) uint32  { return dFormDisp(48, d.field(), a.field(), disp) }
func Lfsu(d FPR, disp int32, a GPR) uint32 { return dFormDisp(49, d.field(), a.field(), disp) }
func Lfsx(d FPR, a, b GPR) uint32          { return xForm(31, d.field(), a.field(), b.field(), 535, false) }
func Lfsux(d FPR, a, b GPR) uint32         { return xForm(31, d.field(), a.field(), b.field(), 567, false) }

func Lfd(d FPR, disp int32, a GPR) uint32  { return dFormDisp(50, d.field(), a.field(), disp) }
func Lfdu(d FPR, disp int32, a GPR) uint32 { return dFormDisp(51, d.field(), a.field(), disp) }
func Lfdx(d FPR, a, b GPR) uint32          { return xForm(31, d.field(), a.field(), b.field(), 599, false) }
func Lfdux(d FPR, a, b GPR) uint32         { return xForm(31, d.field(), a.field(), b.field(), 631, false) }

func Stfs(s FPR, disp int32, a GPR) uint32  { return dFormDisp(52, s.field(), a.field(), disp) }
func Stfsu(s FPR, disp int32, a GPR) uint32 { return dFormDisp(53, s.field(), a.field(), disp) }
func Stfsx(s FPR, a, b GPR) uint32          { return xForm(31, s.field(), a.field(), b.field(), 663, false) }
func Stfsux(s FPR, a, b GPR) uint32         { return xForm(31, s.field(), a.field(), b.field(), 695, false) }

func Stfd(s FPR, disp int32, a GPR) uint32  { return dFormDisp(54, s.field(), a.field(), disp) }
func Stfdu(s FPR, disp int32, a GPR) uint32 { return dFormDisp(55, s.field(), a.field(), disp) }
func Stfdx(s FPR, a, b GPR) uint32          { return xForm(31, s.field(), a.field(), b.field(), 727, false) }
func Stfdux(s FPR, a, b GPR) uint32         { return xForm(31, s.field(), a.field(), b.field(), 759, false) }

// --- scalar arithmetic, double precision ---

func Fadd(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), a.field(), b.field(), 0, 21, rc) }
func Fsub(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), a.field(), b.field(), 0, 20, rc) }
func Fmul(d, a, c FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), a.field(), 0, c.field(), 25, rc) }
func Fdiv(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), a.field(), b.field(), 0, 18, rc) }

func Fneg(d, b FPR, rc bool) uint32  { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 40, rc) }
func Fabs(d, b FPR, rc bool) uint32  { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 264, rc) }
func Fnabs(d, b FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 136, rc) }
func Fmr(d, b FPR, rc bool) uint32   { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 72, rc) }

func Frsp(d, b FPR, rc bool) uint32    { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 12, rc) }
func Fctiw(d, b FPR, rc bool) uint32   { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 14, rc) }
func Fctiwz(d, b FPR, rc bool) uint32  { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 15, rc) }
func Frsqrte(d, b FPR, rc bool) uint32 { return aForm(primaryFPDouble, d.field(), 0, b.field(), 0, 26, rc) }

// 4-operand float ops share one convention across the whole family,
// including the paired-single equivalents below: public signature
// (dest, a, b, c) means dest = a*c +/- b. The encoder places b (the
// add/sub operand) at FRB (<<11) and c (the multiplier's second factor)
// at FRC (<<6); a (the multiplier's first factor) sits at FRA (<<16).
func Fmadd(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPDouble, d.field(), a.field(), b.field(), c.field(), 29, rc)
}
func Fmsub(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPDouble, d.field(), a.field(), b.field(), c.field(), 28, rc)
}
func Fnmadd(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPDouble, d.field(), a.field(), b.field(), c.field(), 31, rc)
}
func Fnmsub(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPDouble, d.field(), a.field(), b.field(), c.field(), 30, rc)
}
func Fsel(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPDouble, d.field(), a.field(), b.field(), c.field(), 23, rc)
}

func Fcmpu(crf CRField, a, b FPR) uint32 {
	return primaryFPDouble<<26 | crf.field()<<shiftCRF | a.field()<<shiftB | b.field()<<shiftC | 0<<1
}
func Fcmpo(crf CRField, a, b FPR) uint32 {
	return primaryFPDouble<<26 | crf.field()<<shiftCRF | a.field()<<shiftB | b.field()<<shiftC | 32<<1
}

// --- scalar arithmetic, single precision ---

func Fadds(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPSingle, d.field(), a.field(), b.field(), 0, 21, rc) }
func Fsubs(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPSingle, d.field(), a.field(), b.field(), 0, 20, rc) }
func Fmuls(d, a, c FPR, rc bool) uint32 { return aForm(primaryFPSingle, d.field(), a.field(), 0, c.field(), 25, rc) }
func Fdivs(d, a, b FPR, rc bool) uint32 { return aForm(primaryFPSingle, d.field(), a.field(), b.field(), 0, 18, rc) }

func Fmadds(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPSingle, d.field(), a.field(), b.field(), c.field(), 29, rc)
}
func Fmsubs(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPSingle, d.field(), a.field(), b.field(), c.field(), 28, rc)
}
func Fnmadds(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPSingle, d.field(), a.field(), b.field(), c.field(), 31, rc)
}
func Fnmsubs(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryFPSingle, d.field(), a.field(), b.field(), c.field(), 30, rc)
}

// --- paired-single (Gekko/Broadway SIMD extension) ---
//
// ps_* instructions reuse the FPU register file (each FPR packs two
// 32-bit lanes) under primary opcode 4, with the same A-form layout and
// the same (dest, a, b, c) = a*c +/- b convention as the scalar 4-operand
// ops above.

func PsAdd(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 21, rc) }
func PsSub(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 20, rc) }
func PsMul(d, a, c FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), 0, c.field(), 25, rc) }
func PsDiv(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 18, rc) }

func PsMadd(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryPS, d.field(), a.field(), b.field(), c.field(), 29, rc)
}
func PsMsub(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryPS, d.field(), a.field(), b.field(), c.field(), 28, rc)
}
func PsNmadd(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryPS, d.field(), a.field(), b.field(), c.field(), 31, rc)
}
func PsNmsub(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryPS, d.field(), a.field(), b.field(), c.field(), 30, rc)
}
func PsSel(d, a, b, c FPR, rc bool) uint32 {
	return aForm(primaryPS, d.field(), a.field(), b.field(), c.field(), 23, rc)
}

func PsNeg(d, b FPR, rc bool) uint32  { return aForm(primaryPS, d.field(), 0, b.field(), 0, 40, rc) }
func PsAbs(d, b FPR, rc bool) uint32  { return aForm(primaryPS, d.field(), 0, b.field(), 0, 264, rc) }
func PsMr(d, b FPR, rc bool) uint32   { return aForm(primaryPS, d.field(), 0, b.field(), 0, 72, rc) }

// PsMerge00/01/10/11 interleave the high/low lanes of two paired-single
// registers into a new register.
func PsMerge00(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 528, rc) }
func PsMerge01(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 560, rc) }
func PsMerge10(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 592, rc) }
func PsMerge11(d, a, b FPR, rc bool) uint32 { return aForm(primaryPS, d.field(), a.field(), b.field(), 0, 624, rc) }
