package ppc32asm

// Load/store byte, halfword, and word encodings: plain, update, indexed,
// indexed-update, byte-reversed, reserve (load/store-conditional), and
// multiple-word forms. D-form (plain/update) instructions place a signed
// 16-bit displacement in the low half; X-form (indexed) instructions
// replace it with a second index register at shiftC, following the same
// xForm helper used by encode_intops.go.

func dFormDisp(primary, rt, ra uint32, disp int32) uint32 {
	return primary<<26 | rt<<shiftA | ra<<shiftB | signedImm16(disp)
}

// --- byte ---

func Lbz(d GPR, disp int32, a GPR) uint32  { return dFormDisp(34, d.field(), a.field(), disp) }
func Lbzu(d GPR, disp int32, a GPR) uint32 { return dFormDisp(35, d.field(), a.field(), disp) }
func Lbzx(d, a, b GPR) uint32              { return xForm(31, d.field(), a.field(), b.field(), 87, false) }
func Lbzux(d, a, b GPR) uint32             { return xForm(31, d.field(), a.field(), b.field(), 119, false) }

func Stb(s GPR, disp int32, a GPR) uint32  { return dFormDisp(38, s.field(), a.field(), disp) }
func Stbu(s GPR, disp int32, a GPR) uint32 { return dFormDisp(39, s.field(), a.field(), disp) }
func Stbx(s, a, b GPR) uint32              { return xForm(31, s.field(), a.field(), b.field(), 215, false) }
func Stbux(s, a, b GPR) uint32             { return xForm(31, s.field(), a.field(), b.field(), 247, false) }

// --- halfword ---

func Lhz(d GPR, disp int32, a GPR) uint32  { return dFormDisp(40, d.field(), a.field(), disp) }
func Lhzu(d GPR, disp int32, a GPR) uint32 { return dFormDisp(41, d.field(), a.field(), disp) }
func Lhzx(d, a, b GPR) uint32              { return xForm(31, d.field(), a.field(), b.field(), 279, false) }
func Lhzux(d, a, b GPR) uint32             { return xForm(31, d.field(), a.field(), b.field(), 311, false) }

func Lha(d GPR, disp int32, a GPR) uint32  { return dFormDisp(42, d.field(), a.field(), disp) }
func Lhau(d GPR, disp int32, a GPR) uint32 { return dFormDisp(43, d.field(), a.field(), disp) }
func Lhax(d, a, b GPR) uint32              { return xForm(31, d.field(), a.field(), b.field(), 343, false) }
func Lhaux(d, a, b GPR) uint32             { return xForm(31, d.field(), a.field(), b.field(), 375, false) }

func Sth(s GPR, disp int32, a GPR) uint32  { return dFormDisp(44, s.field(), a.field(), disp) }
func Sthu(s GPR, disp int32, a GPR) uint32 { return dFormDisp(45, s.field(), a.field(), disp) }
func Sthx(s, a, b GPR) uint32              { return xForm(31, s.field(), a.field(), b.field(), 407, false) }
func Sthux(s, a, b GPR) uint32             { return xForm(31, s.field(), a.field(), b.field(), 439, false) }

// --- word ---

func Lwz(d GPR, disp int32, a GPR) uint32  { return dFormDisp(32, d.field(), a.field(), disp) }
func Lwzu(d GPR, disp int32, a GPR) uint32 { return dFormDisp(33, d.field(), a.field(), disp) }
func Lwzx(d, a, b GPR) uint32              { return xForm(31, d.field(), a.field(), b.field(), 23, false) }
func Lwzux(d, a, b GPR) uint32             { return xForm(31, d.field(), a.field(), b.field(), 55, false) }

func Stw(s GPR, disp int32, a GPR) uint32  { return dFormDisp(36, s.field(), a.field(), disp) }
func Stwu(s GPR, disp int32, a GPR) uint32 { return dFormDisp(37, s.field(), a.field(), disp) }
func Stwx(s, a, b GPR) uint32              { return xForm(31, s.field(), a.field(), b.field(), 151, false) }
func Stwux(s, a, b GPR) uint32             { return xForm(31, s.field(), a.field(), b.field(), 183, false) }

// --- byte-reversed ---

func Lhbrx(d, a, b GPR) uint32 { return xForm(31, d.field(), a.field(), b.field(), 790, false) }
func Sthbrx(s, a, b GPR) uint32 { return xForm(31, s.field(), a.field(), b.field(), 918, false) }
func Lwbrx(d, a, b GPR) uint32 { return xForm(31, d.field(), a.field(), b.field(), 534, false) }
func Stwbrx(s, a, b GPR) uint32 { return xForm(31, s.field(), a.field(), b.field(), 662, false) }

// --- reserve (load/store-conditional for atomic read-modify-write) ---

func Lwarx(d, a, b GPR) uint32 { return xForm(31, d.field(), a.field(), b.field(), 20, false) }

// Stwcx always sets Rc=1 per the ISA -- the "." is part of the mnemonic,
// not an optional suffix.
func Stwcx(s, a, b GPR) uint32 { return xForm(31, s.field(), a.field(), b.field(), 150, true) }

// --- multiple-word ---

func Lmw(d GPR, disp int32, a GPR) uint32 { return dFormDisp(46, d.field(), a.field(), disp) }
func Stmw(s GPR, disp int32, a GPR) uint32 { return dFormDisp(47, s.field(), a.field(), disp) }
