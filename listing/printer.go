// Package listing renders decoded instructions as text lines: hex
// address and bytes, bundle marker, mnemonic, and operand list.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smolarch/smol-disasm/bundle"
	"github.com/smolarch/smol-disasm/fields"
	"github.com/smolarch/smol-disasm/tables"
)

// Printer formats decoded instructions with a fixed marker set.
type Printer struct {
	Markers MarkerSet
}

// NewPrinter returns a printer using the given marker set.
func NewPrinter(markers MarkerSet) *Printer {
	return &Printer{Markers: markers}
}

// Line formats one decoded instruction: its address, raw bytes, bundle
// marker, mnemonic, and (if any) operand list.
func (p *Printer) Line(addr uint64, word uint32, id int, pos bundle.Position) string {
	entry := tables.InstTable[id]

	var b strings.Builder
	fmt.Fprintf(&b, "  %08x: %s   %s%s", addr, hexWord(word, entry.Len), p.Markers.For(pos), entry.Mnemonic)

	if ops := p.operands(word, entry); ops != "" {
		if len(entry.Mnemonic) <= 3 {
			b.WriteString("\t\t")
		} else {
			b.WriteString("\t")
		}
		b.WriteString(ops)
	}
	return b.String()
}

// hexWord renders an instruction's raw bytes as two 16-bit hex groups.
// A 2-byte instruction's unused high half-word prints as five spaces so
// the mnemonic column stays aligned across instruction lengths.
func hexWord(word uint32, length uint8) string {
	lo := fmt.Sprintf("%04x", word&0xFFFF)
	if length == 2 {
		return lo + "     "
	}
	hi := fmt.Sprintf("%04x", (word>>16)&0xFFFF)
	return lo + " " + hi
}

// operands renders an instruction's operand list, comma-separated,
// registers as ABI names and immediates as decimal, suppressing a zero
// SHAMT3.
func (p *Printer) operands(word uint32, entry tables.InstEntry) string {
	parts := make([]string, 0, len(entry.Operands))
	for _, slot := range entry.Operands {
		v := fields.Extract(word, slot.Field)
		switch slot.Kind {
		case tables.OperandRegX:
			parts = append(parts, tables.GPRABIName[v])
		case tables.OperandImm:
			if fields.SuppressOperand(slot.Field, v) {
				continue
			}
			parts = append(parts, strconv.Itoa(int(v)))
		}
	}
	return strings.Join(parts, ",")
}
