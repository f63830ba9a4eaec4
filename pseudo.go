package ppc32asm

// Pseudo-ops: encoder-level conveniences that expand to one or more real
// instruction words rather than their own opcode. Each one picks the
// shortest legal encoding for what it's asked to do, never synthesizing
// more words than needed.

// Li loads a sign-extended 16-bit immediate: addi d, 0, imm.
func Li(d GPR, imm int16) uint32 {
	return Addi(d, R0, int32(imm))
}

// Lis loads imm into the high halfword, zeroing the low halfword:
// addis d, 0, imm.
func Lis(d GPR, imm int16) uint32 {
	return Addis(d, R0, int32(imm))
}

// Liu loads an unsigned 16-bit immediate into the low halfword, zeroing
// the high halfword. Below 0x8000 a single li already does this; for
// 0x8000..0xffff, which li would sign-extend to a negative value, it emits
// li d,0 followed by ori d,d,imm.
//
// The second case cannot be a single ori d,0,imm word: ori's RS field has no
// "register zero means literal zero" special case (unlike addi's RA, which
// Li relies on), so an ori with RS=r0 reads whatever r0 actually holds at
// execution time instead of a literal zero.
func Liu(d GPR, imm uint16) []uint32 {
	if imm < 0x8000 {
		return []uint32{Li(d, int16(imm))}
	}
	return []uint32{Li(d, 0), Ori(d, d, uint32(imm))}
}

// Liw loads an arbitrary 32-bit immediate in the fewest words: a single
// Li if it fits the signed 16-bit form, a single Lis if the low halfword
// is zero, otherwise Lis followed by Ori.
func Liw(d GPR, imm uint32) []uint32 {
	v := int32(imm)
	hi := uint16(imm >> 16)
	lo := uint16(imm)

	if v >= -0x8000 && v <= 0x7fff {
		return []uint32{Li(d, int16(v))}
	}
	if lo == 0 {
		return []uint32{Lis(d, int16(hi))}
	}
	return []uint32{Lis(d, int16(hi)), Ori(d, d, uint32(lo))}
}

// Mr copies s into d: or d, s, s.
func Mr(d, s GPR, rc bool) uint32 {
	return Or(d, s, s, rc)
}

// Setz computes d = 1 if s == 0, else d = 0, via cntlzw+srwi (counting the
// leading zero bits of s, which is 32 only when s is zero, then shifting
// that count down to a single 0/1 bit).
func Setz(d, s GPR) []uint32 {
	return []uint32{CntlzW(d, s, false), Srwi(d, d, 5, false)}
}

// Nop is the canonical no-op encoding: ori 0,0,0.
func Nop() uint32 {
	return Ori(R0, R0, 0)
}
