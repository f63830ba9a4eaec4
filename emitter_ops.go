package ppc32asm

// Thin per-mnemonic delegation: every method here calls the matching
// pure encoder function and appends the word through EmitWord.
// Mechanical by design -- each method just calls the encoder and appends
// the result to the buffer.

// --- integer arithmetic ---

func (a *Assembler) Add(d, x, y GPR, oe, rc bool)   { a.EmitWord(Add(d, x, y, oe, rc)) }
func (a *Assembler) AddC(d, x, y GPR, oe, rc bool)  { a.EmitWord(AddC(d, x, y, oe, rc)) }
func (a *Assembler) AddE(d, x, y GPR, oe, rc bool)  { a.EmitWord(AddE(d, x, y, oe, rc)) }
func (a *Assembler) AddME(d, x GPR, oe, rc bool)    { a.EmitWord(AddME(d, x, oe, rc)) }
func (a *Assembler) AddZE(d, x GPR, oe, rc bool)    { a.EmitWord(AddZE(d, x, oe, rc)) }
func (a *Assembler) Addi(d, x GPR, simm int32)      { a.EmitWord(Addi(d, x, simm)) }
func (a *Assembler) Addis(d, x GPR, simm int32)     { a.EmitWord(Addis(d, x, simm)) }
func (a *Assembler) Addic(d, x GPR, simm int32)     { a.EmitWord(Addic(d, x, simm)) }
func (a *Assembler) AddicDot(d, x GPR, simm int32)  { a.EmitWord(AddicDot(d, x, simm)) }

func (a *Assembler) SubF(d, x, y GPR, oe, rc bool)  { a.EmitWord(SubF(d, x, y, oe, rc)) }
func (a *Assembler) Sub(d, x, y GPR, oe, rc bool)   { a.EmitWord(Sub(d, x, y, oe, rc)) }
func (a *Assembler) SubFC(d, x, y GPR, oe, rc bool) { a.EmitWord(SubFC(d, x, y, oe, rc)) }
func (a *Assembler) SubFE(d, x, y GPR, oe, rc bool) { a.EmitWord(SubFE(d, x, y, oe, rc)) }
func (a *Assembler) SubFME(d, x GPR, oe, rc bool)   { a.EmitWord(SubFME(d, x, oe, rc)) }
func (a *Assembler) SubFZE(d, x GPR, oe, rc bool)   { a.EmitWord(SubFZE(d, x, oe, rc)) }
func (a *Assembler) SubFic(d, x GPR, simm int32)    { a.EmitWord(SubFic(d, x, simm)) }
func (a *Assembler) Neg(d, x GPR, oe, rc bool)      { a.EmitWord(Neg(d, x, oe, rc)) }

func (a *Assembler) MulLI(d, x GPR, simm int32)    { a.EmitWord(MulLI(d, x, simm)) }
func (a *Assembler) MulLW(d, x, y GPR, oe, rc bool) { a.EmitWord(MulLW(d, x, y, oe, rc)) }
func (a *Assembler) MulHW(d, x, y GPR, rc bool)     { a.EmitWord(MulHW(d, x, y, rc)) }
func (a *Assembler) MulHWU(d, x, y GPR, rc bool)    { a.EmitWord(MulHWU(d, x, y, rc)) }
func (a *Assembler) DivW(d, x, y GPR, rc bool)      { a.EmitWord(DivW(d, x, y, rc)) }
func (a *Assembler) DivWO(d, x, y GPR, rc bool)     { a.EmitWord(DivWO(d, x, y, rc)) }
func (a *Assembler) DivWU(d, x, y GPR, rc bool)     { a.EmitWord(DivWU(d, x, y, rc)) }
func (a *Assembler) DivWUO(d, x, y GPR, rc bool)    { a.EmitWord(DivWUO(d, x, y, rc)) }

// --- logical ---

func (a *Assembler) And(d, s, b GPR, rc bool)  { a.EmitWord(And(d, s, b, rc)) }
func (a *Assembler) Or(d, s, b GPR, rc bool)   { a.EmitWord(Or(d, s, b, rc)) }
func (a *Assembler) Xor(d, s, b GPR, rc bool)  { a.EmitWord(Xor(d, s, b, rc)) }
func (a *Assembler) Nand(d, s, b GPR, rc bool) { a.EmitWord(Nand(d, s, b, rc)) }
func (a *Assembler) Nor(d, s, b GPR, rc bool)  { a.EmitWord(Nor(d, s, b, rc)) }
func (a *Assembler) Eqv(d, s, b GPR, rc bool)  { a.EmitWord(Eqv(d, s, b, rc)) }
func (a *Assembler) AndC(d, s, b GPR, rc bool) { a.EmitWord(AndC(d, s, b, rc)) }
func (a *Assembler) OrC(d, s, b GPR, rc bool)  { a.EmitWord(OrC(d, s, b, rc)) }

func (a *Assembler) Andi(d, s GPR, imm uint32)  { a.EmitWord(Andi(d, s, imm)) }
func (a *Assembler) Andis(d, s GPR, imm uint32) { a.EmitWord(Andis(d, s, imm)) }
func (a *Assembler) Ori(d, s GPR, imm uint32)   { a.EmitWord(Ori(d, s, imm)) }
func (a *Assembler) Oris(d, s GPR, imm uint32)  { a.EmitWord(Oris(d, s, imm)) }
func (a *Assembler) Xori(d, s GPR, imm uint32)  { a.EmitWord(Xori(d, s, imm)) }
func (a *Assembler) Xoris(d, s GPR, imm uint32) { a.EmitWord(Xoris(d, s, imm)) }

func (a *Assembler) ExtSB(d, s GPR, rc bool)   { a.EmitWord(ExtSB(d, s, rc)) }
func (a *Assembler) ExtSH(d, s GPR, rc bool)   { a.EmitWord(ExtSH(d, s, rc)) }
func (a *Assembler) CntlzW(d, s GPR, rc bool)  { a.EmitWord(CntlzW(d, s, rc)) }

// --- shifts / rotates ---

func (a *Assembler) Slw(d, s, b GPR, rc bool)  { a.EmitWord(Slw(d, s, b, rc)) }
func (a *Assembler) Srw(d, s, b GPR, rc bool)  { a.EmitWord(Srw(d, s, b, rc)) }
func (a *Assembler) Sraw(d, s, b GPR, rc bool) { a.EmitWord(Sraw(d, s, b, rc)) }
func (a *Assembler) Srawi(d, s GPR, sh uint32, rc bool) { a.EmitWord(Srawi(d, s, sh, rc)) }

func (a *Assembler) Rlwinm(d, s GPR, shift, mb, me uint32, rc bool) { a.EmitWord(Rlwinm(d, s, shift, mb, me, rc)) }
func (a *Assembler) Rlwimi(d, s GPR, shift, mb, me uint32, rc bool) { a.EmitWord(Rlwimi(d, s, shift, mb, me, rc)) }
func (a *Assembler) Rlwnm(d, s, sr GPR, mb, me uint32, rc bool)     { a.EmitWord(Rlwnm(d, s, sr, mb, me, rc)) }

func (a *Assembler) Slwi(d, s GPR, n uint32, rc bool)   { a.EmitWord(Slwi(d, s, n, rc)) }
func (a *Assembler) Srwi(d, s GPR, n uint32, rc bool)   { a.EmitWord(Srwi(d, s, n, rc)) }
func (a *Assembler) Clrlwi(d, s GPR, n uint32, rc bool) { a.EmitWord(Clrlwi(d, s, n, rc)) }
func (a *Assembler) Clrrwi(d, s GPR, n uint32, rc bool) { a.EmitWord(Clrrwi(d, s, n, rc)) }
func (a *Assembler) Rotlwi(d, s GPR, n uint32, rc bool) { a.EmitWord(Rotlwi(d, s, n, rc)) }
func (a *Assembler) Rotrwi(d, s GPR, n uint32, rc bool) { a.EmitWord(Rotrwi(d, s, n, rc)) }
func (a *Assembler) Extlwi(d, s GPR, n, b uint32, rc bool) { a.EmitWord(Extlwi(d, s, n, b, rc)) }
func (a *Assembler) Extrwi(d, s GPR, n, b uint32, rc bool) { a.EmitWord(Extrwi(d, s, n, b, rc)) }

// --- compare ---

func (a *Assembler) Cmpi(crf CRField, x GPR, simm int32)  { a.EmitWord(Cmpi(crf, x, simm)) }
func (a *Assembler) Cmpli(crf CRField, x GPR, imm uint32) { a.EmitWord(Cmpli(crf, x, imm)) }
func (a *Assembler) Cmp(crf CRField, x, y GPR)            { a.EmitWord(Cmp(crf, x, y)) }
func (a *Assembler) Cmpl(crf CRField, x, y GPR)           { a.EmitWord(Cmpl(crf, x, y)) }

// --- load/store ---

func (a *Assembler) Lbz(d GPR, disp int32, x GPR)  { a.EmitWord(Lbz(d, disp, x)) }
func (a *Assembler) Lbzu(d GPR, disp int32, x GPR) { a.EmitWord(Lbzu(d, disp, x)) }
func (a *Assembler) Lbzx(d, x, y GPR)              { a.EmitWord(Lbzx(d, x, y)) }
func (a *Assembler) Lbzux(d, x, y GPR)             { a.EmitWord(Lbzux(d, x, y)) }
func (a *Assembler) Stb(s GPR, disp int32, x GPR)  { a.EmitWord(Stb(s, disp, x)) }
func (a *Assembler) Stbu(s GPR, disp int32, x GPR) { a.EmitWord(Stbu(s, disp, x)) }
func (a *Assembler) Stbx(s, x, y GPR)              { a.EmitWord(Stbx(s, x, y)) }
func (a *Assembler) Stbux(s, x, y GPR)             { a.EmitWord(Stbux(s, x, y)) }

func (a *Assembler) Lhz(d GPR, disp int32, x GPR)  { a.EmitWord(Lhz(d, disp, x)) }
func (a *Assembler) Lhzu(d GPR, disp int32, x GPR) { a.EmitWord(Lhzu(d, disp, x)) }
func (a *Assembler) Lhzx(d, x, y GPR)              { a.EmitWord(Lhzx(d, x, y)) }
func (a *Assembler) Lhzux(d, x, y GPR)             { a.EmitWord(Lhzux(d, x, y)) }
func (a *Assembler) Lha(d GPR, disp int32, x GPR)  { a.EmitWord(Lha(d, disp, x)) }
func (a *Assembler) Lhau(d GPR, disp int32, x GPR) { a.EmitWord(Lhau(d, disp, x)) }
func (a *Assembler) Lhax(d, x, y GPR)              { a.EmitWord(Lhax(d, x, y)) }
func (a *Assembler) Lhaux(d, x, y GPR)             { a.EmitWord(Lhaux(d, x, y)) }
func (a *Assembler) Sth(s GPR, disp int32, x GPR)  { a.EmitWord(Sth(s, disp, x)) }
func (a *Assembler) Sthu(s GPR, disp int32, x GPR) { a.EmitWord(Sthu(s, disp, x)) }
func (a *Assembler) Sthx(s, x, y GPR)              { a.EmitWord(Sthx(s, x, y)) }
func (a *Assembler) Sthux(s, x, y GPR)             { a.EmitWord(Sthux(s, x, y)) }

func (a *Assembler) Lwz(d GPR, disp int32, x GPR)  { a.EmitWord(Lwz(d, disp, x)) }
func (a *Assembler) Lwzu(d GPR, disp int32, x GPR) { a.EmitWord(Lwzu(d, disp, x)) }
func (a *Assembler) Lwzx(d, x, y GPR)              { a.EmitWord(Lwzx(d, x, y)) }
func (a *Assembler) Lwzux(d, x, y GPR)             { a.EmitWord(Lwzux(d, x, y)) }
func (a *Assembler) Stw(s GPR, disp int32, x GPR)  { a.EmitWord(Stw(s, disp, x)) }
func (a *Assembler) Stwu(s GPR, disp int32, x GPR) { a.EmitWord(Stwu(s, disp, x)) }
func (a *Assembler) Stwx(s, x, y GPR)              { a.EmitWord(Stwx(s, x, y)) }
func (a *Assembler) Stwux(s, x, y GPR)             { a.EmitWord(Stwux(s, x, y)) }

func (a *Assembler) Lhbrx(d, x, y GPR)  { a.EmitWord(Lhbrx(d, x, y)) }
func (a *Assembler) Sthbrx(s, x, y GPR) { a.EmitWord(Sthbrx(s, x, y)) }
func (a *Assembler) Lwbrx(d, x, y GPR)  { a.EmitWord(Lwbrx(d, x, y)) }
func (a *Assembler) Stwbrx(s, x, y GPR) { a.EmitWord(Stwbrx(s, x, y)) }

func (a *Assembler) Lwarx(d, x, y GPR) { a.EmitWord(Lwarx(d, x, y)) }
func (a *Assembler) Stwcx(s, x, y GPR) { a.EmitWord(Stwcx(s, x, y)) }

func (a *Assembler) Lmw(d GPR, disp int32, x GPR)  { a.EmitWord(Lmw(d, disp, x)) }
func (a *Assembler) Stmw(s GPR, disp int32, x GPR) { a.EmitWord(Stmw(s, disp, x)) }

// --- system register / CR moves ---

func (a *Assembler) Mtspr(spr uint32, rs GPR)   { a.EmitWord(Mtspr(spr, rs)) }
func (a *Assembler) Mfspr(rt GPR, spr uint32)   { a.EmitWord(Mfspr(rt, spr)) }
func (a *Assembler) Mtlr(rs GPR)                { a.EmitWord(Mtlr(rs)) }
func (a *Assembler) Mflr(rt GPR)                { a.EmitWord(Mflr(rt)) }
func (a *Assembler) Mtctr(rs GPR)               { a.EmitWord(Mtctr(rs)) }
func (a *Assembler) Mfctr(rt GPR)               { a.EmitWord(Mfctr(rt)) }
func (a *Assembler) Mtmsr(rs GPR)               { a.EmitWord(Mtmsr(rs)) }
func (a *Assembler) Mfmsr(rt GPR)               { a.EmitWord(Mfmsr(rt)) }
func (a *Assembler) Mtcrf(fxm uint32, rs GPR)   { a.EmitWord(Mtcrf(fxm, rs)) }
func (a *Assembler) MtcrField(crf CRField, rs GPR) { a.EmitWord(MtcrField(crf, rs)) }
func (a *Assembler) Mfcr(rt GPR)                { a.EmitWord(Mfcr(rt)) }
func (a *Assembler) Mtsr(sr SR, rs GPR)         { a.EmitWord(Mtsr(sr, rs)) }
func (a *Assembler) Mtsrin(rs, rb GPR)          { a.EmitWord(Mtsrin(rs, rb)) }
func (a *Assembler) Mfsr(rt GPR, sr SR)         { a.EmitWord(Mfsr(rt, sr)) }
func (a *Assembler) Mfsrin(rt, rb GPR)          { a.EmitWord(Mfsrin(rt, rb)) }

func (a *Assembler) CrAnd(bt, ba, bb uint32)  { a.EmitWord(CrAnd(bt, ba, bb)) }
func (a *Assembler) CrOr(bt, ba, bb uint32)   { a.EmitWord(CrOr(bt, ba, bb)) }
func (a *Assembler) CrXor(bt, ba, bb uint32)  { a.EmitWord(CrXor(bt, ba, bb)) }
func (a *Assembler) CrNand(bt, ba, bb uint32) { a.EmitWord(CrNand(bt, ba, bb)) }
func (a *Assembler) CrNor(bt, ba, bb uint32)  { a.EmitWord(CrNor(bt, ba, bb)) }
func (a *Assembler) CrEqv(bt, ba, bb uint32)  { a.EmitWord(CrEqv(bt, ba, bb)) }
func (a *Assembler) CrAndC(bt, ba, bb uint32) { a.EmitWord(CrAndC(bt, ba, bb)) }
func (a *Assembler) CrOrC(bt, ba, bb uint32)  { a.EmitWord(CrOrC(bt, ba, bb)) }

// --- cache / TLB / fixed system words ---

func (a *Assembler) Icbi(x, y GPR)   { a.EmitWord(Icbi(x, y)) }
func (a *Assembler) Dcbf(x, y GPR)   { a.EmitWord(Dcbf(x, y)) }
func (a *Assembler) Dcbi(x, y GPR)   { a.EmitWord(Dcbi(x, y)) }
func (a *Assembler) Dcbst(x, y GPR)  { a.EmitWord(Dcbst(x, y)) }
func (a *Assembler) Dcbt(x, y GPR)   { a.EmitWord(Dcbt(x, y)) }
func (a *Assembler) DcbTst(x, y GPR) { a.EmitWord(DcbTst(x, y)) }
func (a *Assembler) Dcbz(x, y GPR)   { a.EmitWord(Dcbz(x, y)) }
func (a *Assembler) DcbzL(x, y GPR)  { a.EmitWord(DcbzL(x, y)) }
func (a *Assembler) Tlbie(x GPR)     { a.EmitWord(Tlbie(x)) }
func (a *Assembler) Tlbsync()        { a.EmitWord(Tlbsync()) }

func (a *Assembler) Blr()   { a.EmitWord(Blr) }
func (a *Assembler) Bctr()  { a.EmitWord(Bctr) }
func (a *Assembler) Bctrl() { a.EmitWord(Bctrl) }
func (a *Assembler) Sc()    { a.EmitWord(Sc) }
func (a *Assembler) Rfi()   { a.EmitWord(Rfi) }
func (a *Assembler) Isync() { a.EmitWord(Isync) }
func (a *Assembler) Sync()  { a.EmitWord(Sync) }
func (a *Assembler) Eieio() { a.EmitWord(Eieio) }

// --- pseudo-ops ---

func (a *Assembler) Li(d GPR, imm int16)     { a.EmitWord(Li(d, imm)) }
func (a *Assembler) Lis(d GPR, imm int16)    { a.EmitWord(Lis(d, imm)) }
func (a *Assembler) Liu(d GPR, imm uint16)   { a.EmitAll(Liu(d, imm)) }
func (a *Assembler) Liw(d GPR, imm uint32)   { a.EmitAll(Liw(d, imm)) }
func (a *Assembler) Mr(d, s GPR, rc bool)    { a.EmitWord(Mr(d, s, rc)) }
func (a *Assembler) Setz(d, s GPR)           { a.EmitAll(Setz(d, s)) }
func (a *Assembler) Nop()                    { a.EmitWord(Nop()) }
