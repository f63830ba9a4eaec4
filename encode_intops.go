package ppc32asm

// Integer arithmetic, logical, shift, and compare encodings: one small
// function per mnemonic, each building its word from the primary-opcode
// plus extended-opcode (X-form/XO-form) layout those instructions share.

// xForm packs a 10-bit-extended-opcode X-form word: the shape shared by
// logical ops, shifts, compares, and non-overflow-tracking instructions.
func xForm(primary, fA, fB, fC, xo uint32, rc bool) uint32 {
	return pack(pack(pack(pack(primary<<26, fA, shiftA), fB, shiftB), fC, shiftC), xo<<1|recordBit(rc), 0)
}

// xoForm packs a 9-bit-extended-opcode XO-form word: the shape used by
// the overflow-enabled (`o` suffix) arithmetic family, where bit 10 is
// the OE flag sitting between the extended opcode and the RB field.
func xoForm(primary, d, a, b uint32, xo uint32, oe, rc bool) uint32 {
	w := primary<<26 | d<<shiftA | a<<shiftB | b<<shiftC
	w |= oeBit(oe) << shiftOE
	w |= xo << 1
	w |= recordBit(rc)
	return w
}

// dForm packs a D-form word: primary opcode, two register fields, and a
// 16-bit immediate occupying the low half.
func dForm(primary, rt, ra, imm uint32) uint32 {
	return primary<<26 | rt<<shiftA | ra<<shiftB | (imm & 0xffff)
}

// --- Addition family ---

func Add(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 266, oe, rc)
}

func AddC(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 10, oe, rc)
}

func AddE(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 138, oe, rc)
}

func AddME(d, a GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), 0, 234, oe, rc)
}

func AddZE(d, a GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), 0, 202, oe, rc)
}

// Addi implements the D-form ADDI: addi d, a, simm. Per the ISA, a
// literal RA=0 means "use the literal 0", not r0's contents -- callers
// that want that special case use Li/Lis in pseudo.go instead of calling
// this directly with a=0.
func Addi(d, a GPR, simm int32) uint32 {
	return dForm(14, d.field(), a.field(), signedImm16(simm))
}

func Addis(d, a GPR, simm int32) uint32 {
	return dForm(15, d.field(), a.field(), signedImm16(simm))
}

// Addic and Addic. use distinct primary opcodes (12 and 13) rather than a
// shared opcode with the Rc bit OR'ed in -- that is what the ISA
// actually does; 12 and 13 are themselves separate primary opcodes.
func Addic(d, a GPR, simm int32) uint32 {
	return dForm(12, d.field(), a.field(), signedImm16(simm))
}

func AddicDot(d, a GPR, simm int32) uint32 {
	return dForm(13, d.field(), a.field(), signedImm16(simm))
}

// --- Subtraction family ---
//
// subf exposes the ISA's native "subtract from" operand order
// (result = b - a); sub wraps it with the natural order (result = a - b)
// that most callers expect. Both forms are kept since they serve
// different callers.

func SubF(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 40, oe, rc)
}

func Sub(d, a, b GPR, oe, rc bool) uint32 {
	return SubF(d, b, a, oe, rc)
}

func SubFC(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 8, oe, rc)
}

func SubFE(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 136, oe, rc)
}

func SubFME(d, a GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), 0, 232, oe, rc)
}

func SubFZE(d, a GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), 0, 200, oe, rc)
}

func SubFic(d, a GPR, simm int32) uint32 {
	return dForm(8, d.field(), a.field(), signedImm16(simm))
}

func Neg(d, a GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), 0, 104, oe, rc)
}

// --- Multiply / divide ---

func MulLI(d, a GPR, simm int32) uint32 {
	return dForm(7, d.field(), a.field(), signedImm16(simm))
}

func MulLW(d, a, b GPR, oe, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 235, oe, rc)
}

func MulHW(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 75, false, rc)
}

func MulHWU(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 11, false, rc)
}

// DivW and DivWO are distinct entry points: the ISA has both an
// overflow-tracking and a non-overflow-tracking divide, differing only
// in the OE bit.
func DivW(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 491, false, rc)
}

func DivWO(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 491, true, rc)
}

func DivWU(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 459, false, rc)
}

func DivWUO(d, a, b GPR, rc bool) uint32 {
	return xoForm(31, d.field(), a.field(), b.field(), 459, true, rc)
}

// --- Logical ---

func And(d, s, b GPR, rc bool) uint32  { return xForm(31, s.field(), d.field(), b.field(), 28, rc) }
func Or(d, s, b GPR, rc bool) uint32   { return xForm(31, s.field(), d.field(), b.field(), 444, rc) }
func Xor(d, s, b GPR, rc bool) uint32  { return xForm(31, s.field(), d.field(), b.field(), 316, rc) }
func Nand(d, s, b GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), b.field(), 476, rc) }
func Nor(d, s, b GPR, rc bool) uint32  { return xForm(31, s.field(), d.field(), b.field(), 124, rc) }
func Eqv(d, s, b GPR, rc bool) uint32  { return xForm(31, s.field(), d.field(), b.field(), 284, rc) }
func AndC(d, s, b GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), b.field(), 60, rc) }
func OrC(d, s, b GPR, rc bool) uint32  { return xForm(31, s.field(), d.field(), b.field(), 412, rc) }

func Andi(d, s GPR, imm uint32) uint32  { return dForm(28, s.field(), d.field(), unsignedImm16(imm)) }
func Andis(d, s GPR, imm uint32) uint32 { return dForm(29, s.field(), d.field(), unsignedImm16(imm)) }
func Ori(d, s GPR, imm uint32) uint32   { return dForm(24, s.field(), d.field(), unsignedImm16(imm)) }
func Oris(d, s GPR, imm uint32) uint32  { return dForm(25, s.field(), d.field(), unsignedImm16(imm)) }
func Xori(d, s GPR, imm uint32) uint32  { return dForm(26, s.field(), d.field(), unsignedImm16(imm)) }
func Xoris(d, s GPR, imm uint32) uint32 { return dForm(27, s.field(), d.field(), unsignedImm16(imm)) }

func ExtSB(d, s GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), 0, 954, rc) }
func ExtSH(d, s GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), 0, 922, rc) }

func CntlzW(d, s GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), 0, 26, rc) }

// --- Shifts (non-immediate) ---

func Slw(d, s, b GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), b.field(), 24, rc) }
func Srw(d, s, b GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), b.field(), 536, rc) }
func Sraw(d, s, b GPR, rc bool) uint32 { return xForm(31, s.field(), d.field(), b.field(), 792, rc) }

func Srawi(d, s GPR, sh uint32, rc bool) uint32 {
	return xForm(31, s.field(), d.field(), unsignedBits("sh", sh, 5), 824, rc)
}

// --- Compare ---

func Cmpi(crf CRField, a GPR, simm int32) uint32 {
	return crf.field()<<shiftCRF | a.field()<<shiftB | signedImm16(simm) | 11<<26
}

func Cmpli(crf CRField, a GPR, imm uint32) uint32 {
	return crf.field()<<shiftCRF | a.field()<<shiftB | unsignedImm16(imm) | 10<<26
}

func Cmp(crf CRField, a, b GPR) uint32 {
	return 31<<26 | crf.field()<<shiftCRF | a.field()<<shiftB | b.field()<<shiftC | 0<<1
}

func Cmpl(crf CRField, a, b GPR) uint32 {
	return 31<<26 | crf.field()<<shiftCRF | a.field()<<shiftB | b.field()<<shiftC | 32<<1
}
