package ppc32asm

import "math"

// Data directives append raw bytes rather than encoded instructions, so
// they live on Buffer directly instead of going through the encoder --
// there is no mnemonic-to-word function backing them. One method per
// width, plus the string/alignment/padding forms.

// Db appends one or more bytes.
func (b *Buffer) Db(vs ...byte) {
	for _, v := range vs {
		b.AppendByte(v)
	}
}

// Dh appends one or more halfwords, host-endian.
func (b *Buffer) Dh(vs ...uint16) {
	for _, v := range vs {
		b.AppendHalf(v)
	}
}

// Dw appends one or more words, host-endian.
func (b *Buffer) Dw(vs ...uint32) {
	for _, v := range vs {
		b.AppendWord(v)
	}
}

// Dd appends one or more doublewords, host-endian.
func (b *Buffer) Dd(vs ...uint64) {
	for _, v := range vs {
		b.AppendDouble(v)
	}
}

// Df32 appends one or more IEEE-754 single-precision floats.
func (b *Buffer) Df32(vs ...float32) {
	for _, v := range vs {
		b.AppendWord(math.Float32bits(v))
	}
}

// Df64 appends one or more IEEE-754 double-precision floats.
func (b *Buffer) Df64(vs ...float64) {
	for _, v := range vs {
		b.AppendDouble(math.Float64bits(v))
	}
}

// Ds appends s's bytes followed by a single trailing NUL.
func (b *Buffer) Ds(s string) {
	b.AppendBytes([]byte(s))
	b.AppendByte(0)
}

// Align pads the buffer with zero bytes until the cursor is a multiple of
// n. n must be at least 1; n == 1 is a no-op (already aligned to 1 byte).
func (b *Buffer) Align(n int) {
	if n < 1 {
		fail(ErrIllegalArg, "align(%d): alignment must be at least 1", n)
	}
	if n == 1 {
		return
	}
	for b.cursor%n != 0 {
		b.AppendByte(0)
	}
}

// Ud appends one undefined/trap word (all zero bits -- not a legal
// PowerPC instruction, used to mark code that must never execute).
func (b *Buffer) Ud() {
	b.AppendWord(0)
}
