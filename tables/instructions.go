package tables

// OperandKind tags how an operand slot's extracted value should be
// rendered.
type OperandKind uint8

const (
	// OperandRegX is a general-purpose register: a 5-bit index into the
	// 32-entry register name table.
	OperandRegX OperandKind = iota
	// OperandImm is a signed or unsigned immediate, per its field's
	// recipe.
	OperandImm
)

// OperandSlot is one operand of an instruction: what kind it is, and
// which field it is extracted from.
type OperandSlot struct {
	Kind  OperandKind
	Field FieldID
}

// InstFlag carries the per-instruction flags from spec.md's instruction
// descriptor: whether an id is a preferred rendering of another
// (ALIAS) or matches but carries reserved semantics (RESERVED).
type InstFlag uint8

const (
	FlagNone     InstFlag = 0
	FlagAlias    InstFlag = 1 << 0
	FlagReserved InstFlag = 1 << 1
)

// HasFunc is the registry query an instruction's guard is evaluated
// against: "is (ext, major, minor) enabled". It is a function, not a
// concrete registry type, so this package stays free of any dependency
// on the (mutable) registry implementation.
type HasFunc func(ext Ext, major, minor int) bool

// InstEntry is one row of the instruction universe: its class, its
// opcode pattern as a (mask, match) pair over the instruction word with
// the stop bit always excluded, its mnemonic, its operand list, its
// flags, and the extension guard gating it.
//
// A (mask, match) pair generalizes a fixed-width opcode prefix match
// into an arbitrary bit pattern: a plain instruction's mask covers its
// opcode field plus the word-length discriminator bits, while an
// alias's mask additionally pins the operand bits that make it a strict
// subset of its base form's encoding.
type InstEntry struct {
	Class    Class
	Len      uint8 // opcode length in bytes: 2 or 4
	Mask     uint32
	Match    uint32
	Mnemonic string
	Operands []OperandSlot
	Flags    InstFlag
	Guard    func(has HasFunc) bool
}

// Opcode field layouts (see SPEC_FULL.md §3):
//
//	4-byte words, bit 31 is the stop bit and is never matched. Bits
//	[1:0] are a fixed 0b11 marker read before the decoder knows an
//	instruction's length at all (decode's top-level dispatch), and are
//	excluded from every field below them:
//	  opcode7  bits [30:24]
//	  rd       bits [23:19]   (FieldRD)
//	  rs1      bits [18:14]   (FieldRS1)
//	  rs2      bits [13:9]    (FieldRS2, register-register forms)
//	  imm7     bits [8:2]     (FieldIMM7, store value-less offset forms)
//	  imm12    bits [13:2]    (FieldIMM12, load/reg-imm/branch forms)
//	  imm17    bits [18:2]    (FieldIMM17, LUI/JAL/J forms)
//	  shamt3   bits [4:2]     (FieldSHAMT3)
//
//	2-byte words, bit 15 is the stop bit and is never matched. Bits
//	[1:0] are a fixed 0b00 marker, the complement of the 4-byte words'
//	0b11, and are excluded from every field below them:
//	  copcode4 bits [14:11]
//	  crd      bits [10:6]    (FieldCRD)
//	  cimm4    bits [5:2]     (FieldCIMM4)
//	  cjoff9   bits [10:2]    (FieldCJOFF9, CJ only — reuses CRD's range
//	           since CJ never carries a CRD operand)
const (
	opcode7Mask = uint32(0x7F) << 24
	rdMask      = uint32(0x1F) << 19
	rs1Mask     = uint32(0x1F) << 14
	rs2Mask     = uint32(0x1F) << 9
	imm7Mask    = uint32(0x7F) << 2
	imm12Mask   = uint32(0xFFF) << 2
	imm17Mask   = uint32(0x1FFFF) << 2

	copcode4Mask = uint32(0xF) << 11

	// word4Marker/word2Marker are the fixed bits [1:0] that tell
	// decode's top-level classifier a 4-byte word from a 2-byte one
	// before either one's opcode field has been inspected.
	lenMarkerMask  = uint32(0x3)
	word4Marker    = uint32(0x3)
	word2Marker    = uint32(0x0)
	op7FullMask    = opcode7Mask | lenMarkerMask
	cop4FullMask   = copcode4Mask | lenMarkerMask
)

func op7(v uint32) uint32  { return ((v << 24) & opcode7Mask) | word4Marker }
func cop4(v uint32) uint32 { return ((v << 11) & copcode4Mask) | word2Marker }

func reg(f FieldID) OperandSlot { return OperandSlot{Kind: OperandRegX, Field: f} }
func imm(f FieldID) OperandSlot { return OperandSlot{Kind: OperandImm, Field: f} }

func hasBase00(has HasFunc) bool     { return has(ExtSMOL64, 0, 0) }
func hasBase01(has HasFunc) bool     { return has(ExtSMOL64, 0, 1) }
func hasBase02(has HasFunc) bool     { return has(ExtSMOL64, 0, 2) }
func hasMUL(has HasFunc) bool        { return has(ExtMUL, 1, 0) }
func hasAtomic(has HasFunc) bool     { return has(ExtAtomic, 1, 0) }
func hasFloat0(has HasFunc) bool     { return has(ExtFloat, 1, 0) }
func hasFloat1(has HasFunc) bool     { return has(ExtFloat, 1, 1) }
func hasCompressed(has HasFunc) bool { return has(ExtCompressed, 1, 0) }

// Instruction id constants, in the exact order InstTable defines them.
// Aliases are declared before the base form they alias, and
// InstTable preserves that ordering for classifiers to search in.
const (
	InstLDB = iota
	InstLDH
	InstLDW
	InstLDD
	InstSTB
	InstSTH
	InstSTW
	InstSTD
	InstAMOSWAP
	InstAMOADD
	InstAMOXOR

	InstMV
	InstADD
	InstSUB
	InstAND
	InstOR
	InstXOR
	InstSLT
	InstSLTU
	InstNOP
	InstADDI
	InstANDI
	InstORI
	InstXORI
	InstSLTI
	InstSLLI
	InstSRLI
	InstSRAI
	InstLUI
	InstMUL
	InstMULH
	InstDIV
	InstREM

	InstJ
	InstBEQ
	InstBNE
	InstBLT
	InstBGE
	InstJAL
	InstJALR

	InstECALL
	InstEBREAK

	InstFADD
	InstFSUB
	InstFMUL
	InstFDIV

	InstCNOP
	InstCLI
	InstCADDI
	InstCJ

	InstCount
)

// InstTable is the universe of decodable instructions, indexed by the
// Inst* constants above.
var InstTable = [InstCount]InstEntry{
	InstLDB: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x00), Mnemonic: "ldb",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstLDH: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x01), Mnemonic: "ldh",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstLDW: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x02), Mnemonic: "ldw",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstLDD: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x03), Mnemonic: "ldd",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstSTB: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x04), Mnemonic: "stb",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS2), imm(FieldIMM7)}, Guard: hasBase00},
	InstSTH: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x05), Mnemonic: "sth",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS2), imm(FieldIMM7)}, Guard: hasBase00},
	InstSTW: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x06), Mnemonic: "stw",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS2), imm(FieldIMM7)}, Guard: hasBase00},
	InstSTD: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x07), Mnemonic: "std",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS2), imm(FieldIMM7)}, Guard: hasBase00},
	InstAMOSWAP: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x24), Mnemonic: "amoswap",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasAtomic},
	InstAMOADD: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x25), Mnemonic: "amoadd",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasAtomic},
	InstAMOXOR: {Class: ClassLoad, Len: 4, Mask: op7FullMask, Match: op7(0x26), Mnemonic: "amoxor",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Flags: FlagReserved, Guard: hasAtomic},

	// MV is ADD rd, rs1, x0: same opcode as ADD, with rs2 pinned to 0.
	InstMV: {Class: ClassInt, Len: 4, Mask: op7FullMask | rs2Mask, Match: op7(0x08), Mnemonic: "mv",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1)}, Flags: FlagAlias, Guard: hasBase00},
	InstADD: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x08), Mnemonic: "add",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstSUB: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x09), Mnemonic: "sub",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstAND: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0A), Mnemonic: "and",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstOR: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0B), Mnemonic: "or",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstXOR: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0C), Mnemonic: "xor",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstSLT: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0D), Mnemonic: "slt",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	InstSLTU: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0E), Mnemonic: "sltu",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasBase00},
	// NOP is ADDI x0, x0, 0: same opcode as ADDI, with rd, rs1 and the
	// immediate all pinned to zero.
	InstNOP: {Class: ClassInt, Len: 4, Mask: op7FullMask | rdMask | rs1Mask | imm12Mask, Match: op7(0x0F), Mnemonic: "nop",
		Operands: nil, Flags: FlagAlias, Guard: hasBase00},
	InstADDI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x0F), Mnemonic: "addi",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstANDI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x10), Mnemonic: "andi",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstORI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x11), Mnemonic: "ori",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstXORI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x12), Mnemonic: "xori",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstSLTI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x13), Mnemonic: "slti",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstSLLI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x14), Mnemonic: "slli",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldSHAMT3)}, Guard: hasBase02},
	InstSRLI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x15), Mnemonic: "srli",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldSHAMT3)}, Guard: hasBase02},
	InstSRAI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x16), Mnemonic: "srai",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldSHAMT3)}, Guard: hasBase02},
	InstLUI: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x17), Mnemonic: "lui",
		Operands: []OperandSlot{reg(FieldRD), imm(FieldIMM17)}, Guard: hasBase02},
	InstMUL: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x20), Mnemonic: "mul",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasMUL},
	InstMULH: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x21), Mnemonic: "mulh",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasMUL},
	InstDIV: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x22), Mnemonic: "div",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasMUL},
	InstREM: {Class: ClassInt, Len: 4, Mask: op7FullMask, Match: op7(0x23), Mnemonic: "rem",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasMUL},

	// J is JAL x0, offset: same opcode as JAL, with rd pinned to 0.
	InstJ: {Class: ClassBranch, Len: 4, Mask: op7FullMask | rdMask, Match: op7(0x1C), Mnemonic: "j",
		Operands: []OperandSlot{imm(FieldIMM17)}, Flags: FlagAlias, Guard: hasBase01},
	InstBEQ: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x18), Mnemonic: "beq",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstBNE: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x19), Mnemonic: "bne",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstBLT: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x1A), Mnemonic: "blt",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstBGE: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x1B), Mnemonic: "bge",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase00},
	InstJAL: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x1C), Mnemonic: "jal",
		Operands: []OperandSlot{reg(FieldRD), imm(FieldIMM17)}, Guard: hasBase01},
	InstJALR: {Class: ClassBranch, Len: 4, Mask: op7FullMask, Match: op7(0x1D), Mnemonic: "jalr",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), imm(FieldIMM12)}, Guard: hasBase01},

	InstECALL: {Class: ClassSystem, Len: 4, Mask: op7FullMask, Match: op7(0x1E), Mnemonic: "ecall",
		Guard: hasBase01},
	InstEBREAK: {Class: ClassSystem, Len: 4, Mask: op7FullMask, Match: op7(0x1F), Mnemonic: "ebreak",
		Guard: hasBase01},

	InstFADD: {Class: ClassFloat, Len: 4, Mask: op7FullMask, Match: op7(0x27), Mnemonic: "fadd",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasFloat0},
	InstFSUB: {Class: ClassFloat, Len: 4, Mask: op7FullMask, Match: op7(0x28), Mnemonic: "fsub",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasFloat0},
	InstFMUL: {Class: ClassFloat, Len: 4, Mask: op7FullMask, Match: op7(0x29), Mnemonic: "fmul",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasFloat0},
	InstFDIV: {Class: ClassFloat, Len: 4, Mask: op7FullMask, Match: op7(0x2A), Mnemonic: "fdiv",
		Operands: []OperandSlot{reg(FieldRD), reg(FieldRS1), reg(FieldRS2)}, Guard: hasFloat1},

	InstCNOP: {Class: ClassCompressed, Len: 2, Mask: cop4FullMask, Match: cop4(0x0), Mnemonic: "c.nop",
		Guard: hasCompressed},
	InstCLI: {Class: ClassCompressed, Len: 2, Mask: cop4FullMask, Match: cop4(0x1), Mnemonic: "c.li",
		Operands: []OperandSlot{reg(FieldCRD), imm(FieldCIMM4)}, Guard: hasCompressed},
	InstCADDI: {Class: ClassCompressed, Len: 2, Mask: cop4FullMask, Match: cop4(0x2), Mnemonic: "c.addi",
		Operands: []OperandSlot{reg(FieldCRD), imm(FieldCIMM4)}, Guard: hasCompressed},
	InstCJ: {Class: ClassCompressed, Len: 2, Mask: cop4FullMask, Match: cop4(0x3), Mnemonic: "c.j",
		Operands: []OperandSlot{imm(FieldCJOFF9)}, Guard: hasCompressed},
}

// ByClass groups instruction ids by class, preserving InstTable order (so
// aliases still precede their base forms within a class). Built once at
// package init, mirroring smol_init_inst_info's one-time offset pass.
var ByClass [classCount][]int

// AllFull lists every 4-byte instruction id, grouped by class in the
// same order as ByClass; used by the top-level classifier when no
// bundle is in progress yet.
var AllFull []int

func init() {
	for id, entry := range InstTable {
		ByClass[entry.Class] = append(ByClass[entry.Class], id)
		if entry.Len == 4 {
			AllFull = append(AllFull, id)
		}
	}
}
