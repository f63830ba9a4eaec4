package ppc32asm

// Label is an opaque forward/backward-branch token. It carries a word
// index into the buffer's logical instruction stream rather than a
// pointer into the backing array -- so it survives a Buffer.grow
// reallocation untouched; resolving it later re-reads whatever backing
// slice the Buffer currently holds, it never dereferences a stale
// pointer.
type Label struct {
	instrIndex int // word index (byteOffset/4) of the emitted placeholder
	kind       BranchKind
}

// resolve patches the branch word at l.instrIndex so it targets
// targetOffset (a byte offset into the same buffer):
//  1. disp = target - instruction address, must be word-aligned.
//  2. if disp fits the form's signed relative range, patch it in place.
//  3. otherwise, if the absolute target address itself fits the same
//     signed range, patch it with the AA bit set.
//  4. otherwise, fail -- the package never synthesizes a long-branch
//     trampoline.
//
// This is idempotent: resolving the same Label to the same target twice
// produces the same final word, since the disp/AA bits are fully
// recomputed from (word-with-disp-cleared, target) each time rather than
// accumulated.
func (l Label) resolve(buf *Buffer, targetOffset int) {
	instrOffset := l.instrIndex * 4
	word := buf.WordAt(instrOffset)
	disp := int32(targetOffset - instrOffset)
	if disp&3 != 0 {
		fail(ErrUnaligned, "branch displacement %d is not word-aligned", disp)
	}

	switch l.kind {
	case Branch14:
		if InRangeBranch14(disp) {
			word = SetBranch14Disp(word, disp, false)
		} else if InRangeBranch14(int32(targetOffset)) {
			word = SetBranch14Disp(word, int32(targetOffset), true)
		} else {
			fail(ErrRange, "branch14 displacement %d (and absolute target %d) out of range", disp, targetOffset)
		}
	case Branch24:
		if InRangeBranch24(disp) {
			word = SetBranch24Disp(word, disp, false)
		} else if InRangeBranch24(int32(targetOffset)) {
			word = SetBranch24Disp(word, int32(targetOffset), true)
		} else {
			fail(ErrRange, "branch24 displacement %d (and absolute target %d) out of range", disp, targetOffset)
		}
	}

	buf.PatchWordAt(instrOffset, word)
}
