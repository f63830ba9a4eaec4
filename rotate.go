package ppc32asm

// rlwinm is the PPC swiss-army knife: rotate-left-word-immediate then AND
// with mask. Every alias in this file computes (shift, mb, me) from a
// higher-level intent and calls Rlwinm so that the alias's word is
// bit-identical to calling Rlwinm directly with those fields -- the
// alias functions are therefore never allowed to duplicate the
// bit-packing, only to compute the three numbers.

// Rlwinm: d = ROTL32(s, shift) & MASK(mb, me). M-form: primary 21,
// RS at shiftA, RA at shiftB, SH at shiftC, MB and ME each 5 bits packed
// just above the Rc bit.
func Rlwinm(d, s GPR, shift, mb, me uint32, rc bool) uint32 {
	unsignedBits("shift", shift, 5)
	unsignedBits("mb", mb, 5)
	unsignedBits("me", me, 5)
	w := uint32(21)<<26 | s.field()<<shiftA | d.field()<<shiftB | shift<<shiftC
	w |= mb << shiftMB
	w |= me << shiftME
	w |= recordBit(rc)
	return w
}

// Rlwimi: rotate left then mask-insert (like Rlwinm but preserves bits
// outside the mask from the destination rather than clearing them).
func Rlwimi(d, s GPR, shift, mb, me uint32, rc bool) uint32 {
	unsignedBits("shift", shift, 5)
	unsignedBits("mb", mb, 5)
	unsignedBits("me", me, 5)
	w := uint32(20)<<26 | s.field()<<shiftA | d.field()<<shiftB | shift<<shiftC
	w |= mb << shiftMB
	w |= me << shiftME
	w |= recordBit(rc)
	return w
}

// Rlwnm: rotate left by a register-held shift amount then mask.
func Rlwnm(d, s, shiftReg GPR, mb, me uint32, rc bool) uint32 {
	unsignedBits("mb", mb, 5)
	unsignedBits("me", me, 5)
	w := uint32(23)<<26 | s.field()<<shiftA | d.field()<<shiftB | shiftReg.field()<<shiftC
	w |= mb << shiftMB
	w |= me << shiftME
	w |= recordBit(rc)
	return w
}

// Slwi: d = s << n (shift left immediate).
func Slwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, n, 0, 31-n, rc)
}

// Srwi: d = s >> n (shift right logical immediate).
func Srwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, 32-n, n, 31, rc)
}

// Clrlwi: clear the leftmost n bits of s.
func Clrlwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, 0, n, 31, rc)
}

// Clrrwi: clear the rightmost n bits of s.
func Clrrwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, 0, 0, 31-n, rc)
}

// Rotlwi: rotate left by n bits.
func Rotlwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, n, 0, 31, rc)
}

// Rotrwi: rotate right by n bits.
func Rotrwi(d, s GPR, n uint32, rc bool) uint32 {
	unsignedBits("n", n, 5)
	return Rlwinm(d, s, 32-n, 0, 31, rc)
}

// Extlwi: extract n bits starting at bit b and left-justify.
func Extlwi(d, s GPR, n, b uint32, rc bool) uint32 {
	unsignedBits("n", n, 6) // n==32 is a legal "whole word" extract
	unsignedBits("b", b, 5)
	return Rlwinm(d, s, b, 0, n-1, rc)
}

// Extrwi: extract n bits ending at bit b+n and right-justify.
func Extrwi(d, s GPR, n, b uint32, rc bool) uint32 {
	unsignedBits("n", n, 6)
	unsignedBits("b", b, 5)
	return Rlwinm(d, s, b+n, 32-n, 31, rc)
}
