package ppc32asm

// Floating-point and paired-single delegation methods, same shape as
// emitter_ops.go.

func (a *Assembler) Lfs(d FPR, disp int32, x GPR)  { a.EmitWord(Lfs(d, disp, x)) }
func (a *Assembler) Lfsu(d FPR, disp int32, x GPR) { a.EmitWord(Lfsu(d, disp, x)) }
func (a *Assembler) Lfsx(d FPR, x, y GPR)          { a.EmitWord(Lfsx(d, x, y)) }
func (a *Assembler) Lfsux(d FPR, x, y GPR)         { a.EmitWord(Lfsux(d, x, y)) }
func (a *Assembler) Lfd(d FPR, disp int32, x GPR)  { a.EmitWord(Lfd(d, disp, x)) }
func (a *Assembler) Lfdu(d FPR, disp int32, x GPR) { a.EmitWord(Lfdu(d, disp, x)) }
func (a *Assembler) Lfdx(d FPR, x, y GPR)          { a.EmitWord(Lfdx(d, x, y)) }
func (a *Assembler) Lfdux(d FPR, x, y GPR)         { a.EmitWord(Lfdux(d, x, y)) }

func (a *Assembler) Stfs(s FPR, disp int32, x GPR)  { a.EmitWord(Stfs(s, disp, x)) }
func (a *Assembler) Stfsu(s FPR, disp int32, x GPR) { a.EmitWord(Stfsu(s, disp, x)) }
func (a *Assembler) Stfsx(s FPR, x, y GPR)          { a.EmitWord(Stfsx(s, x, y)) }
func (a *Assembler) Stfsux(s FPR, x, y GPR)         { a.EmitWord(Stfsux(s, x, y)) }
func (a *Assembler) Stfd(s FPR, disp int32, x GPR)  { a.EmitWord(Stfd(s, disp, x)) }
func (a *Assembler) Stfdu(s FPR, disp int32, x GPR) { a.EmitWord(Stfdu(s, disp, x)) }
func (a *Assembler) Stfdx(s FPR, x, y GPR)          { a.EmitWord(Stfdx(s, x, y)) }
func (a *Assembler) Stfdux(s FPR, x, y GPR)         { a.EmitWord(Stfdux(s, x, y)) }

func (a *Assembler) Fadd(d, x, y FPR, rc bool) { a.EmitWord(Fadd(d, x, y, rc)) }
func (a *Assembler) Fsub(d, x, y FPR, rc bool) { a.EmitWord(Fsub(d, x, y, rc)) }
func (a *Assembler) Fmul(d, x, y FPR, rc bool) { a.EmitWord(Fmul(d, x, y, rc)) }
func (a *Assembler) Fdiv(d, x, y FPR, rc bool) { a.EmitWord(Fdiv(d, x, y, rc)) }

func (a *Assembler) Fneg(d, x FPR, rc bool)  { a.EmitWord(Fneg(d, x, rc)) }
func (a *Assembler) Fabs(d, x FPR, rc bool)  { a.EmitWord(Fabs(d, x, rc)) }
func (a *Assembler) Fnabs(d, x FPR, rc bool) { a.EmitWord(Fnabs(d, x, rc)) }
func (a *Assembler) Fmr(d, x FPR, rc bool)   { a.EmitWord(Fmr(d, x, rc)) }

func (a *Assembler) Frsp(d, x FPR, rc bool)    { a.EmitWord(Frsp(d, x, rc)) }
func (a *Assembler) Fctiw(d, x FPR, rc bool)   { a.EmitWord(Fctiw(d, x, rc)) }
func (a *Assembler) Fctiwz(d, x FPR, rc bool)  { a.EmitWord(Fctiwz(d, x, rc)) }
func (a *Assembler) Frsqrte(d, x FPR, rc bool) { a.EmitWord(Frsqrte(d, x, rc)) }

func (a *Assembler) Fmadd(d, x, y, z FPR, rc bool)  { a.EmitWord(Fmadd(d, x, y, z, rc)) }
func (a *Assembler) Fmsub(d, x, y, z FPR, rc bool)  { a.EmitWord(Fmsub(d, x, y, z, rc)) }
func (a *Assembler) Fnmadd(d, x, y, z FPR, rc bool) { a.EmitWord(Fnmadd(d, x, y, z, rc)) }
func (a *Assembler) Fnmsub(d, x, y, z FPR, rc bool) { a.EmitWord(Fnmsub(d, x, y, z, rc)) }
func (a *Assembler) Fsel(d, x, y, z FPR, rc bool)   { a.EmitWord(Fsel(d, x, y, z, rc)) }

func (a *Assembler) Fcmpu(crf CRField, x, y FPR) { a.EmitWord(Fcmpu(crf, x, y)) }
func (a *Assembler) Fcmpo(crf CRField, x, y FPR) { a.EmitWord(Fcmpo(crf, x, y)) }

func (a *Assembler) Fadds(d, x, y FPR, rc bool) { a.EmitWord(Fadds(d, x, y, rc)) }
func (a *Assembler) Fsubs(d, x, y FPR, rc bool) { a.EmitWord(Fsubs(d, x, y, rc)) }
func (a *Assembler) Fmuls(d, x, y FPR, rc bool) { a.EmitWord(Fmuls(d, x, y, rc)) }
func (a *Assembler) Fdivs(d, x, y FPR, rc bool) { a.EmitWord(Fdivs(d, x, y, rc)) }

func (a *Assembler) Fmadds(d, x, y, z FPR, rc bool)  { a.EmitWord(Fmadds(d, x, y, z, rc)) }
func (a *Assembler) Fmsubs(d, x, y, z FPR, rc bool)  { a.EmitWord(Fmsubs(d, x, y, z, rc)) }
func (a *Assembler) Fnmadds(d, x, y, z FPR, rc bool) { a.EmitWord(Fnmadds(d, x, y, z, rc)) }
func (a *Assembler) Fnmsubs(d, x, y, z FPR, rc bool) { a.EmitWord(Fnmsubs(d, x, y, z, rc)) }

func (a *Assembler) PsAdd(d, x, y FPR, rc bool) { a.EmitWord(PsAdd(d, x, y, rc)) }
func (a *Assembler) PsSub(d, x, y FPR, rc bool) { a.EmitWord(PsSub(d, x, y, rc)) }
func (a *Assembler) PsMul(d, x, y FPR, rc bool) { a.EmitWord(PsMul(d, x, y, rc)) }
func (a *Assembler) PsDiv(d, x, y FPR, rc bool) { a.EmitWord(PsDiv(d, x, y, rc)) }

func (a *Assembler) PsMadd(d, x, y, z FPR, rc bool)  { a.EmitWord(PsMadd(d, x, y, z, rc)) }
func (a *Assembler) PsMsub(d, x, y, z FPR, rc bool)  { a.EmitWord(PsMsub(d, x, y, z, rc)) }
func (a *Assembler) PsNmadd(d, x, y, z FPR, rc bool) { a.EmitWord(PsNmadd(d, x, y, z, rc)) }
func (a *Assembler) PsNmsub(d, x, y, z FPR, rc bool) { a.EmitWord(PsNmsub(d, x, y, z, rc)) }
func (a *Assembler) PsSel(d, x, y, z FPR, rc bool)   { a.EmitWord(PsSel(d, x, y, z, rc)) }

func (a *Assembler) PsNeg(d, x FPR, rc bool) { a.EmitWord(PsNeg(d, x, rc)) }
func (a *Assembler) PsAbs(d, x FPR, rc bool) { a.EmitWord(PsAbs(d, x, rc)) }
func (a *Assembler) PsMr(d, x FPR, rc bool)  { a.EmitWord(PsMr(d, x, rc)) }

func (a *Assembler) PsMerge00(d, x, y FPR, rc bool) { a.EmitWord(PsMerge00(d, x, y, rc)) }
func (a *Assembler) PsMerge01(d, x, y FPR, rc bool) { a.EmitWord(PsMerge01(d, x, y, rc)) }
func (a *Assembler) PsMerge10(d, x, y FPR, rc bool) { a.EmitWord(PsMerge10(d, x, y, rc)) }
func (a *Assembler) PsMerge11(d, x, y FPR, rc bool) { a.EmitWord(PsMerge11(d, x, y, rc)) }
