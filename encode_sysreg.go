package ppc32asm

// System-register moves and condition-register bit ops. X-form/XL-form
// layout following the same shift table as encode_intops.go.

// sprFields splits a 10-bit SPR number into the two 5-bit halves the ISA
// packs in swapped order (low 5 bits first, then high 5 bits).
func sprFields(spr uint32) (lo, hi uint32) {
	unsignedBits("spr", spr, 10)
	return spr & 0x1f, (spr >> 5) & 0x1f
}

const (
	sprLR   = 8
	sprCTR  = 9
)

func Mtspr(spr uint32, rs GPR) uint32 {
	lo, hi := sprFields(spr)
	return xForm(31, rs.field(), lo, hi, 467, false)
}

func Mfspr(rt GPR, spr uint32) uint32 {
	lo, hi := sprFields(spr)
	return xForm(31, rt.field(), lo, hi, 339, false)
}

func Mtlr(rs GPR) uint32  { return Mtspr(sprLR, rs) }
func Mflr(rt GPR) uint32  { return Mfspr(rt, sprLR) }
func Mtctr(rs GPR) uint32 { return Mtspr(sprCTR, rs) }
func Mfctr(rt GPR) uint32 { return Mfspr(rt, sprCTR) }

func Mtmsr(rs GPR) uint32 { return xForm(31, rs.field(), 0, 0, 146, false) }
func Mfmsr(rt GPR) uint32 { return xForm(31, rt.field(), 0, 0, 83, false) }

// Mtcrf writes the 8-bit field mask fxm into CR from rs.
func Mtcrf(fxm uint32, rs GPR) uint32 {
	return 31<<26 | rs.field()<<shiftA | unsignedBits("fxm", fxm, 8)<<12 | 144<<1
}

// MtcrField writes a single CR field (0..7) from rs -- a convenience
// wrapper over Mtcrf with the field-mask bit computed for the caller.
func MtcrField(crf CRField, rs GPR) uint32 {
	return Mtcrf(1<<(7-crf.field()), rs)
}

func Mfcr(rt GPR) uint32 { return xForm(31, rt.field(), 0, 0, 19, false) }

func Mtsr(sr SR, rs GPR) uint32 {
	return 31<<26 | rs.field()<<shiftA | sr.field()<<16 | 210<<1
}

func Mtsrin(rs, rb GPR) uint32 {
	return xForm(31, rs.field(), 0, rb.field(), 242, false)
}

// Mfsr reads segment register sr into rt -- Mtsr's move-from counterpart.
func Mfsr(rt GPR, sr SR) uint32 {
	return xForm(31, rt.field(), sr.field(), 0, 595, false)
}

// Mfsrin reads the segment register selected by the top 4 bits of rb into
// rt -- Mtsrin's move-from counterpart.
func Mfsrin(rt, rb GPR) uint32 {
	return xForm(31, rt.field(), 0, rb.field(), 659, false)
}

// --- condition-register bit ops (XL-form) ---
//
// Operands are raw CR-bit numbers 0..31 (8 fields of 4 bits each) rather
// than a CRField, since these instructions address individual condition
// bits, not whole fields.

func crOp(bt, ba, bb uint32, xo uint32) uint32 {
	unsignedBits("crbit", bt, 5)
	unsignedBits("crbit", ba, 5)
	unsignedBits("crbit", bb, 5)
	return 19<<26 | bt<<shiftA | ba<<shiftB | bb<<shiftC | xo<<1
}

func CrAnd(bt, ba, bb uint32) uint32  { return crOp(bt, ba, bb, 257) }
func CrOr(bt, ba, bb uint32) uint32   { return crOp(bt, ba, bb, 449) }
func CrXor(bt, ba, bb uint32) uint32  { return crOp(bt, ba, bb, 193) }
func CrNand(bt, ba, bb uint32) uint32 { return crOp(bt, ba, bb, 225) }
func CrNor(bt, ba, bb uint32) uint32  { return crOp(bt, ba, bb, 33) }
func CrEqv(bt, ba, bb uint32) uint32  { return crOp(bt, ba, bb, 289) }
func CrAndC(bt, ba, bb uint32) uint32 { return crOp(bt, ba, bb, 129) }
func CrOrC(bt, ba, bb uint32) uint32  { return crOp(bt, ba, bb, 417) }
