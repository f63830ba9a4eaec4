package ppc32asm

import "encoding/binary"

// Buffer owns a contiguous, word-aligned region of emitted code, a write
// cursor, and a growth policy. It is the leaf component of the engine: it
// knows nothing about instruction encoding, only about appending bytes and
// (optionally) growing.
type Buffer struct {
	mem      []byte
	cursor   int
	mode     GrowthMode
	growStep int
	external bool // true when mem was supplied by the caller via SetBuffer
}

// NewBuffer allocates a Buffer of the given byte count. size == 0 means
// "the caller will supply a buffer later" via SetBuffer; size must
// otherwise be a multiple of 4, since every instruction word is 4 bytes
// and the buffer never holds a partial word at its capacity boundary.
func NewBuffer(size int, mode GrowthMode) *Buffer {
	if size != 0 && size%4 != 0 {
		fail(ErrGeometry, "buffer size %d is not word-aligned", size)
	}
	b := &Buffer{
		mode:     mode,
		growStep: DefaultGrowStep,
	}
	if size > 0 {
		b.mem = make([]byte, size)
	}
	return b
}

// SetBuffer installs an externally-owned region. The Buffer never frees
// it; ownership stays with the caller. Any bytes already in the buffer
// are discarded along with the cursor.
func (b *Buffer) SetBuffer(mem []byte) {
	if len(mem)%4 != 0 {
		fail(ErrGeometry, "supplied buffer size %d is not word-aligned", len(mem))
	}
	b.mem = mem
	b.cursor = 0
	b.external = true
}

// SetGrowStep overrides the AutoGrow increment. Must be word-aligned and
// positive.
func (b *Buffer) SetGrowStep(step int) {
	if step <= 0 || step%4 != 0 {
		fail(ErrGeometry, "grow step %d is not a positive word-aligned size", step)
	}
	b.growStep = step
}

// Base returns the backing slice's base. Valid only until the next grow;
// callers that need a stable reference across growth should use a Label
// (index-based) instead of holding onto this slice.
func (b *Buffer) Base() []byte { return b.mem }

// Cursor returns the current write position in bytes from the base.
func (b *Buffer) Cursor() int { return b.cursor }

// Used returns the number of bytes written so far (cursor - base), i.e.
// the logical size of the emitted code.
func (b *Buffer) Used() int { return b.cursor }

// Reserved returns the current backing capacity in bytes.
func (b *Buffer) Reserved() int { return len(b.mem) }

// Bytes returns the emitted portion of the buffer (Used() bytes starting
// at Base()). The returned slice aliases the Buffer's storage; callers
// that will outlive further emission should copy it.
func (b *Buffer) Bytes() []byte { return b.mem[:b.cursor] }

// ensure grows the buffer (if AutoGrow) or fails (if FixedSize) so that at
// least n more bytes can be appended past the cursor.
func (b *Buffer) ensure(n int) {
	if b.cursor+n <= len(b.mem) {
		return
	}
	if b.mode == FixedSize {
		fail(ErrOverflow, "buffer overflow: cursor %d + %d exceeds reserved %d bytes (FixedSize)", b.cursor, n, len(b.mem))
	}
	b.grow(n)
}

// grow reallocates the backing store to current+growStep (repeated until
// the request fits), copies the used bytes across, and updates the
// cursor. This invalidates any raw pointer a caller took into the old
// backing array — Label tokens are index-based specifically so that they
// are unaffected (see label.go).
func (b *Buffer) grow(n int) {
	newSize := len(b.mem) + b.growStep
	for b.cursor+n > newSize {
		newSize += b.growStep
	}
	newMem := make([]byte, newSize)
	copy(newMem, b.mem[:b.cursor])
	b.mem = newMem
	tracef("ppc32asm: buffer grown to %d bytes (used %d)\n", newSize, b.cursor)
}

// AppendByte appends a single byte and advances the cursor by 1. Leaves
// the cursor sub-word-aligned; only directives (db/dh/ds/align) are
// expected to do this.
func (b *Buffer) AppendByte(v byte) {
	b.ensure(1)
	b.mem[b.cursor] = v
	b.cursor++
}

// AppendBytes appends a byte slice verbatim.
func (b *Buffer) AppendBytes(bs []byte) {
	b.ensure(len(bs))
	copy(b.mem[b.cursor:], bs)
	b.cursor += len(bs)
}

// AppendHalf appends a 16-bit value in host-endian order.
func (b *Buffer) AppendHalf(v uint16) {
	b.ensure(2)
	binary.NativeEndian.PutUint16(b.mem[b.cursor:], v)
	b.cursor += 2
}

// AppendWord appends a 32-bit value in host-endian order — the primitive
// every instruction-emitting operation in the package funnels through.
// Every non-directive mnemonic appends exactly one word.
func (b *Buffer) AppendWord(v uint32) {
	b.ensure(4)
	binary.NativeEndian.PutUint32(b.mem[b.cursor:], v)
	tracef(" %08x", v)
	b.cursor += 4
}

// AppendDouble appends a 64-bit value in host-endian order.
func (b *Buffer) AppendDouble(v uint64) {
	b.ensure(8)
	binary.NativeEndian.PutUint64(b.mem[b.cursor:], v)
	b.cursor += 8
}

// WordAt reads the 32-bit word at the given byte offset — used by the
// label fixup logic to read-modify-write a previously emitted branch word.
func (b *Buffer) WordAt(offset int) uint32 {
	return binary.NativeEndian.Uint32(b.mem[offset : offset+4])
}

// PatchWordAt overwrites the 32-bit word at the given byte offset in
// place. The cursor is not moved.
func (b *Buffer) PatchWordAt(offset int, v uint32) {
	binary.NativeEndian.PutUint32(b.mem[offset:offset+4], v)
}
