// Package fields implements the bitfield extractor: a pure function from
// an instruction word and a field id to a signed 32-bit value.
package fields

import "github.com/smolarch/smol-disasm/tables"

// Extract pulls a field's value out of an instruction word. The word is
// widened to 64 bits, shifted left so the field's high bit lands at bit
// 63, then shifted back right — arithmetically for signed fields,
// logically for unsigned ones — so the field's low bit lands at bit 0.
// This is the same two-shift recipe as the source's SMOL_EXTRACT_S/Z
// macros, just spelled out as Go shifts instead of C macros.
func Extract(word uint32, id tables.FieldID) int32 {
	f := tables.FieldTable[id]
	return ExtractField(word, f)
}

// ExtractField extracts directly from a field descriptor, for callers
// that already have one (tests exercising the recipe itself, mainly).
func ExtractField(word uint32, f tables.Field) int32 {
	shiftLeft := 64 - int(f.Offset) - int(f.Length)
	shiftRight := 64 - int(f.Length)

	if f.Signed {
		v := int64(word) << uint(shiftLeft)
		v >>= uint(shiftRight)
		return int32(v)
	}

	v := uint64(word) << uint(shiftLeft)
	v >>= uint(shiftRight)
	return int32(v)
}

// SuppressOperand reports whether an IMM operand extracted from field id
// with the given value should be omitted from a listing. The only case
// is SHAMT3 == 0: a zero shift amount is noise in the printed form.
func SuppressOperand(id tables.FieldID, value int32) bool {
	return id == tables.FieldSHAMT3 && value == 0
}
