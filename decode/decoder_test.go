package decode_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smolarch/smol-disasm/decode"
	"github.com/smolarch/smol-disasm/ext"
	"github.com/smolarch/smol-disasm/tables"
)

func TestDecode(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Decoder Suite")
}

// wordBuffer is a minimal decode.Reader over an in-memory byte slice,
// standing in for the driver's real buffer in these unit tests.
type wordBuffer []byte

func (b wordBuffer) Read(from, to int) ([]byte, error) {
	if from < 0 || to > len(b) || from > to {
		return nil, errTruncated
	}
	return b[from:to], nil
}

var errTruncated = &truncatedErr{}

type truncatedErr struct{}

func (*truncatedErr) Error() string { return "truncated" }

// encodeOpcode builds the canonical encoding of id: opcode bits, the
// word-length marker, and every operand field's zero value, with the
// top bit set (tests only care about the opcode match, not bundling).
func encodeOpcode(id int) (word uint32, length int) {
	e := tables.InstTable[id]
	// Match already carries the fixed opcode bits and the length
	// marker; the top bit (bit 31 for 4-byte, bit 15 for 2-byte) is
	// set on top. No Mask covers it, so it never changes the match.
	word = e.Match
	if e.Len == 4 {
		word |= 1 << 31
	} else {
		word |= 1 << 15
	}
	return word, int(e.Len)
}

func wordBytes(word uint32, length int) []byte {
	b := make([]byte, length)
	for i := 0; i < length; i++ {
		b[i] = byte(word >> uint(8*i))
	}
	return b
}

var _ = Describe("Decoder", func() {
	var registry *ext.Registry

	fullRegistry := func() *ext.Registry {
		r := ext.New()
		r.Add(tables.ExtSMOL64, 0, 2)
		r.Add(tables.ExtMUL, 1, 0)
		r.Add(tables.ExtCompressed, 1, 0)
		r.Add(tables.ExtAtomic, 1, 0)
		r.Add(tables.ExtFloat, 1, 1)
		return r
	}

	BeforeEach(func() {
		registry = fullRegistry()
	})

	Describe("soundness", func() {
		It("decodes every instruction's canonical opcode pattern back to its own id, with every extension enabled", func() {
			d := decode.New(decode.NewBitmap(registry.HasFunc()))
			for id, e := range tables.InstTable {
				word, length := encodeOpcode(id)

				class := tables.ClassNone
				if e.Flags&tables.FlagAlias == 0 {
					// A base form reached via its own class classifier
					// must also resolve, since real decode loops
					// dispatch that way once a bundle is in progress.
					class = e.Class
					// A base form's all-zero operand encoding is also
					// its alias's encoding, and the alias is tried
					// first; set the lowest operand bit the alias pins
					// so the base form itself is what gets decoded.
					for _, a := range tables.InstTable {
						if a.Flags&tables.FlagAlias != 0 && a.Match == e.Match {
							pinned := a.Mask &^ e.Mask
							word |= pinned & -pinned
						}
					}
				}
				buf := wordBuffer(wordBytes(word, length))

				got, err := d.Decode(buf, 0, class)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(id), "mnemonic %s", e.Mnemonic)
			}
		})
	})

	Describe("gating", func() {
		It("returns NoMatch when the governing extension is disabled", func() {
			bare := ext.New()
			bare.Add(tables.ExtSMOL64, 0, 0)
			d := decode.New(decode.NewBitmap(bare.HasFunc()))

			word, length := encodeOpcode(tables.InstMUL)
			buf := wordBuffer(wordBytes(word, length))

			got, err := d.Decode(buf, 0, tables.ClassNone)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(decode.NoMatch))
		})
	})

	Describe("truncated input", func() {
		It("reports ErrTruncated when fewer bytes remain than the classifier needs", func() {
			d := decode.New(decode.NewBitmap(registry.HasFunc()))
			buf := wordBuffer([]byte{0x03, 0x80}) // looks like a 4-byte opcode, only 2 bytes present
			_, err := d.Decode(buf, 0, tables.ClassNone)
			Expect(err).To(Equal(decode.ErrTruncated))
		})
	})

	Describe("aliases", func() {
		It("prefers MV over ADD when the operand bits match MV's pinned pattern", func() {
			d := decode.New(decode.NewBitmap(registry.HasFunc()))
			word, length := encodeOpcode(tables.InstMV)
			buf := wordBuffer(wordBytes(word, length))

			got, err := d.Decode(buf, 0, tables.ClassInt)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(tables.InstMV))
		})

		It("falls back to ADD when the rs2 bits don't match MV's zero pattern", func() {
			d := decode.New(decode.NewBitmap(registry.HasFunc()))
			word, length := encodeOpcode(tables.InstADD)
			word |= 5 << 9 // rs2 = 5, no longer MV's pinned zero
			buf := wordBuffer(wordBytes(word, length))

			got, err := d.Decode(buf, 0, tables.ClassInt)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(tables.InstADD))
		})
	})
})
