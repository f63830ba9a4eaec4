package main

import "github.com/xyproto/ppc32asm"

// buildDemoProgram emits a small, self-contained PowerPC function:
// r3 = max(r3, r4); blr. It exercises a representative cut of the
// mnemonic surface: compare, conditional branch resolved through a
// Label, register-to-register move, unconditional return.
func buildDemoProgram(a *ppc32asm.Assembler) {
	a.Cmp(ppc32asm.CRField(0), ppc32asm.ArgR0, ppc32asm.ArgR1)
	skip := a.Bc(ppc32asm.Le, false)
	a.Mr(ppc32asm.ArgR0, ppc32asm.ArgR0, false)
	done := a.B(false)
	a.SetLabel(skip)
	a.Mr(ppc32asm.ArgR0, ppc32asm.ArgR1, false)
	a.SetLabel(done)
	a.Blr()
}
