package ppc32asm

// AltiVec subset: vaddfp, vsubfp, the bitwise vector ops, vperm, vrefp,
// and the dss/dssall cache-hint pair -- a deliberately partial cut of the
// vector ISA rather than the full instruction set. All under primary
// opcode 4, VX-form (like X-form but with no Rc bit -- the 11-bit
// extended opcode occupies the low 11 bits whole).

const primaryVector = 4

func vxForm(vd, va, vb, xo uint32) uint32 {
	return primaryVector<<26 | vd<<shiftA | va<<shiftB | vb<<shiftC | xo
}

func Vaddfp(d, a, b VR) uint32 { return vxForm(d.field(), a.field(), b.field(), 10) }
func Vsubfp(d, a, b VR) uint32 { return vxForm(d.field(), a.field(), b.field(), 74) }
func Vand(d, a, b VR) uint32   { return vxForm(d.field(), a.field(), b.field(), 1028) }
func Vandc(d, a, b VR) uint32  { return vxForm(d.field(), a.field(), b.field(), 1092) }
func Vor(d, a, b VR) uint32    { return vxForm(d.field(), a.field(), b.field(), 1156) }
func Vnor(d, a, b VR) uint32   { return vxForm(d.field(), a.field(), b.field(), 1284) }
func Vxor(d, a, b VR) uint32   { return vxForm(d.field(), a.field(), b.field(), 1220) }

// Vrefp takes only a destination and source (VA is unused, encoded 0).
func Vrefp(d, b VR) uint32 { return vxForm(d.field(), 0, b.field(), 266) }

// Vperm is a VA-form instruction: four vector operands, 6-bit extended
// opcode at the low end instead of VX-form's 11-bit field.
func Vperm(d, a, b, c VR) uint32 {
	return primaryVector<<26 | d.field()<<shiftA | a.field()<<shiftB | b.field()<<shiftC | c.field()<<shiftD | 43
}

// Dss/Dssall are VX-form-shaped data-stream-stop hints. Dss's STRM
// selects which of the four stream-prefetch engines to stop (0..3) and
// sits in the low two bits of the first operand field; Dssall instead
// sets that field's top bit (the "all streams" bit) with STRM zero.
func Dss(strm uint32) uint32 {
	return vxForm(unsignedBits("strm", strm, 2), 0, 0, 822)
}

func Dssall() uint32 {
	return vxForm(1<<4, 0, 0, 822)
}
