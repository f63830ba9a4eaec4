package ppc32asm

// AltiVec delegation methods, same shape as emitter_ops.go.

func (a *Assembler) Vaddfp(d, x, y VR) { a.EmitWord(Vaddfp(d, x, y)) }
func (a *Assembler) Vsubfp(d, x, y VR) { a.EmitWord(Vsubfp(d, x, y)) }
func (a *Assembler) Vand(d, x, y VR)   { a.EmitWord(Vand(d, x, y)) }
func (a *Assembler) Vandc(d, x, y VR)  { a.EmitWord(Vandc(d, x, y)) }
func (a *Assembler) Vor(d, x, y VR)    { a.EmitWord(Vor(d, x, y)) }
func (a *Assembler) Vnor(d, x, y VR)   { a.EmitWord(Vnor(d, x, y)) }
func (a *Assembler) Vxor(d, x, y VR)   { a.EmitWord(Vxor(d, x, y)) }
func (a *Assembler) Vrefp(d, x VR)     { a.EmitWord(Vrefp(d, x)) }
func (a *Assembler) Vperm(d, x, y, z VR) { a.EmitWord(Vperm(d, x, y, z)) }
func (a *Assembler) Dss(strm uint32)   { a.EmitWord(Dss(strm)) }
func (a *Assembler) Dssall()           { a.EmitWord(Dssall()) }
