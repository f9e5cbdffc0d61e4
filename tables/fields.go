package tables

// FieldID names a bitfield extraction recipe. Operand slots reference
// fields by id rather than carrying their own offset/length, the same
// indirection the source's smol_field enum gives the extractor.
type FieldID uint8

const (
	FieldRD FieldID = iota
	FieldRS1
	FieldRS2
	FieldIMM7
	FieldIMM12
	FieldIMM17
	FieldSHAMT3
	FieldCRD
	FieldCIMM4
	FieldCJOFF9

	fieldCount
)

// Field is a bitfield descriptor: offset and length in bits from the low
// end of the instruction word, and whether extraction sign-extends.
type Field struct {
	Offset uint8
	Length uint8
	Signed bool
}

// FieldTable is indexed by FieldID.
//
// Two ranges are reserved and never claimed by a FieldTable entry: the
// stop bit (bit 31 of a 4-byte word, bit 15 of a 2-byte word), and bits
// [1:0] of byte 0, which the decoder inspects before it knows an
// instruction's length at all (see tables.Inst* opcode layout doc and
// decode's top-level dispatch). Every field below starts at offset 2 or
// higher for exactly that reason.
var FieldTable = [fieldCount]Field{
	FieldRD:      {Offset: 19, Length: 5, Signed: false},
	FieldRS1:     {Offset: 14, Length: 5, Signed: false},
	FieldRS2:     {Offset: 9, Length: 5, Signed: false},
	FieldIMM7:    {Offset: 2, Length: 7, Signed: true},
	FieldIMM12:   {Offset: 2, Length: 12, Signed: true},
	FieldIMM17:   {Offset: 2, Length: 17, Signed: true},
	FieldSHAMT3:  {Offset: 2, Length: 3, Signed: false},
	FieldCRD:     {Offset: 6, Length: 5, Signed: false},
	FieldCIMM4:   {Offset: 2, Length: 4, Signed: true},
	FieldCJOFF9:  {Offset: 2, Length: 9, Signed: true},
}

// FieldName mirrors smol_field_names: a display name per field. Nothing
// in this module reads it (operand printing goes through OperandKind).
var FieldName = [fieldCount]string{
	FieldRD:      "rd",
	FieldRS1:     "rs1",
	FieldRS2:     "rs2",
	FieldIMM7:    "imm7",
	FieldIMM12:   "imm12",
	FieldIMM17:   "imm17",
	FieldSHAMT3:  "shamt3",
	FieldCRD:     "crd",
	FieldCIMM4:   "cimm4",
	FieldCJOFF9:  "cjoff9",
}
