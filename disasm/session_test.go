package disasm_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smolarch/smol-disasm/disasm"
	"github.com/smolarch/smol-disasm/ext"
	"github.com/smolarch/smol-disasm/listing"
	"github.com/smolarch/smol-disasm/loader"
	"github.com/smolarch/smol-disasm/tables"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Disassembly Session Suite")
}

var _ = Describe("Session", func() {
	var registry *ext.Registry

	BeforeEach(func() {
		registry = ext.New()
		registry.Add(tables.ExtSMOL64, 0, 0)
	})

	It("decodes the built-in bundle, demoting to INT on the second load", func() {
		session := disasm.NewSession(registry, listing.DefaultMarkers)
		buf := loader.NewBuffer(disasm.BuiltinTestBuffer)

		res := session.Decode(buf, nil)

		Expect(res.Diagnostics).To(BeEmpty())
		Expect(res.Lines).To(HaveLen(3))
		Expect(res.Lines[0]).To(ContainSubstring("ldb"))
		Expect(res.Lines[1]).To(ContainSubstring("ldh"))
		Expect(res.Lines[2]).To(ContainSubstring("add"))
	})

	It("reports a decode miss and advances by 2 bytes", func() {
		session := disasm.NewSession(registry, listing.DefaultMarkers)
		buf := loader.NewBuffer([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00})

		res := session.Decode(buf, nil)

		Expect(len(res.Diagnostics)).To(BeNumerically(">", 0))
		Expect(res.Diagnostics[0].Message).To(Equal("failed to decode"))
		Expect(res.Diagnostics[0].Offset).To(Equal(0))
	})

	It("reports a truncated read and stops the session", func() {
		session := disasm.NewSession(registry, listing.DefaultMarkers)
		// A valid 4-byte LDB opcode, but only 3 bytes are present.
		full := disasm.BuiltinTestBuffer[:4]
		buf := loader.NewBuffer(full[:3])

		res := session.Decode(buf, nil)

		Expect(res.Diagnostics).To(HaveLen(1))
		Expect(res.Diagnostics[0].Message).To(Equal("unexpected end"))
	})

	It("suppresses a zero SHAMT3 operand in the rendered line", func() {
		registry.Add(tables.ExtSMOL64, 0, 2)
		session := disasm.NewSession(registry, listing.DefaultMarkers)

		entry := tables.InstTable[tables.InstSLLI]
		word := entry.Match // rd=0, rs1=0, shamt3=0; stop bit clear, terminates the bundle
		b := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}

		res := session.Decode(loader.NewBuffer(b), nil)

		Expect(res.Lines).To(HaveLen(1))
		Expect(res.Lines[0]).To(HaveSuffix("zero,zero"))
		Expect(strings.Count(res.Lines[0], ",")).To(Equal(1))
	})
})
