package ppc32asm

import "os"

// Assembler is the public façade: it owns a Buffer and, for every
// mnemonic, exposes a method that calls the pure encoder and appends the
// resulting word(s).
//
// Extension point: a host that needs a mnemonic this package doesn't
// expose can embed *Assembler in its own type and call EmitWord directly
// with a hand-built word.
//
// An Assembler has no internal synchronization and must not be shared
// between concurrent writers; separate instances are fully independent.
type Assembler struct {
	buf *Buffer
}

// NewAssembler creates an Assembler backed by a freshly allocated Buffer
// of size bytes (0 meaning "call SetBuffer before emitting").
func NewAssembler(size int, mode GrowthMode) *Assembler {
	return &Assembler{buf: NewBuffer(size, mode)}
}

// Buffer returns the underlying Buffer, for callers that want the raw
// data-directive or introspection methods directly.
func (a *Assembler) Buffer() *Buffer { return a.buf }

func (a *Assembler) SetBuffer(mem []byte)  { a.buf.SetBuffer(mem) }
func (a *Assembler) SetGrowStep(step int)  { a.buf.SetGrowStep(step) }
func (a *Assembler) Base() []byte          { return a.buf.Base() }
func (a *Assembler) Cursor() int           { return a.buf.Cursor() }
func (a *Assembler) Used() int             { return a.buf.Used() }
func (a *Assembler) Reserved() int         { return a.buf.Reserved() }
func (a *Assembler) Bytes() []byte         { return a.buf.Bytes() }

// EmitWord appends a single already-encoded instruction word. This is the
// primitive every mnemonic method in emitter_*.go funnels through, and
// the one a host extending the package with a custom mnemonic should
// call directly -- together with Cursor it is one of the two methods the
// Emitter interface requires, so a host type can satisfy Emitter just by
// embedding *Assembler or by forwarding to its own Buffer-backed equivalent.
func (a *Assembler) EmitWord(word uint32) {
	a.buf.AppendWord(word)
}

// Emitter is the extension point: a host package can hold any type
// satisfying this interface, letting it swap in a custom or test double
// while still using the concrete *Assembler for everything else. It is
// narrowed to the word-append primitive plus the cursor accessor.
type Emitter interface {
	EmitWord(uint32)
	Cursor() int
}

var _ Emitter = (*Assembler)(nil)

// EmitAll appends a sequence of words in order -- used by pseudo-ops
// (Liw, Setz) whose encoding is more than one instruction.
func (a *Assembler) EmitAll(words []uint32) {
	for _, w := range words {
		a.EmitWord(w)
	}
}

// Dump writes the emitted bytes to path as a raw, headerless binary --
// this package targets an embedding host (a JIT, a loader, a test
// harness) rather than producing a standalone executable, so there is
// no object-file container to write. Neither Dump nor Bytes marks memory
// executable or flushes the instruction cache; a host that runs the
// emitted code does that itself.
func (a *Assembler) Dump(path string) error {
	return os.WriteFile(path, a.Bytes(), 0o644)
}

// --- labels and branches ---

// Here returns the current cursor as a byte offset suitable as a label
// resolution target for a branch already emitted elsewhere (the backward
// branch case: capture the target with Here, emit the loop body and the
// branch after it, then resolve that branch's Label against the target).
func (a *Assembler) Here() int { return a.buf.Cursor() }

// Bc emits a placeholder conditional branch (14-bit-word form) and
// returns a Label token for later resolution via SetLabel.
func (a *Assembler) Bc(cond Condition, lk bool) Label {
	index := a.buf.Cursor() / 4
	a.EmitWord(BranchCondRaw(cond, lk))
	return Label{instrIndex: index, kind: Branch14}
}

// B emits a placeholder unconditional branch (24-bit-word form) and
// returns a Label token for later resolution via SetLabel.
func (a *Assembler) B(lk bool) Label {
	index := a.buf.Cursor() / 4
	a.EmitWord(BranchRaw(lk))
	return Label{instrIndex: index, kind: Branch24}
}

// SetLabel resolves l against target (a byte offset as returned by Here
// or Cursor). If no target is given, the current cursor is used -- the
// common "resolve this forward branch to land here" call. Passing more
// than one target is a caller error (SetLabel is not a multi-use token);
// only the first is honored.
func (a *Assembler) SetLabel(l Label, target ...int) {
	t := a.buf.Cursor()
	if len(target) > 0 {
		t = target[0]
	}
	l.resolve(a.buf, t)
}

// --- loop / repeat directives ---
//
// These combine Buffer and the branch/label machinery, so they live on
// Assembler rather than Buffer alongside the data directives.

// Repeat emits body n times in sequence. n == 0 emits nothing.
func (a *Assembler) Repeat(n int, body func(*Assembler)) {
	for i := 0; i < n; i++ {
		body(a)
	}
}

// Loop emits a counted loop: load counter with iterations, run body,
// decrement and branch back to the top while counter != 0. iterations
// == 0 emits nothing rather than looping 2^32 times on underflow.
func (a *Assembler) Loop(counter GPR, iterations uint32, body func(*Assembler)) {
	if iterations == 0 {
		return
	}
	a.EmitAll(Liw(counter, iterations))
	top := a.Here()
	body(a)
	a.EmitWord(AddicDot(counter, counter, -1))
	l := a.Bc(Ne, false)
	a.SetLabel(l, top)
}
