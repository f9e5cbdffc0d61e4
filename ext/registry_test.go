package ext_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smolarch/smol-disasm/ext"
	"github.com/smolarch/smol-disasm/tables"
)

func TestExt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Extension Registry Suite")
}

var _ = Describe("Registry", func() {
	var r *ext.Registry

	BeforeEach(func() {
		r = ext.New()
	})

	Describe("Add", func() {
		It("pulls in a direct dependency", func() {
			r.Add(tables.ExtMUL, 1, 0)
			Expect(r.Has(tables.ExtSMOL64, 0, 0)).To(BeTrue())
		})

		It("pulls in a transitive dependency", func() {
			r.Add(tables.ExtAtomic, 1, 0)
			Expect(r.Has(tables.ExtSMOL64, 0, 1)).To(BeTrue())
			Expect(r.Has(tables.ExtMUL, 1, 0)).To(BeTrue())
			Expect(r.Has(tables.ExtSMOL64, 0, 0)).To(BeTrue())
		})

		It("is idempotent", func() {
			r.Add(tables.ExtSMOL64, 0, 1)
			before := r.Enumerate()
			r.Add(tables.ExtSMOL64, 0, 1)
			Expect(r.Enumerate()).To(Equal(before))
		})

		It("raises an existing entry's minor instead of duplicating it", func() {
			r.Add(tables.ExtSMOL64, 0, 0)
			r.Add(tables.ExtSMOL64, 0, 1)
			Expect(r.Len()).To(Equal(1))
			Expect(r.Has(tables.ExtSMOL64, 0, 1)).To(BeTrue())
		})

		It("reaches the same state through a direct jump as through each intermediate minor", func() {
			direct := ext.New()
			direct.Add(tables.ExtFloat, 1, 1)

			stepped := ext.New()
			stepped.Add(tables.ExtFloat, 1, 0)
			stepped.Add(tables.ExtFloat, 1, 1)

			Expect(direct.Has(tables.ExtMUL, 1, 0)).To(Equal(stepped.Has(tables.ExtMUL, 1, 0)))
			Expect(direct.Has(tables.ExtSMOL64, 0, 1)).To(Equal(stepped.Has(tables.ExtSMOL64, 0, 1)))
			Expect(direct.Has(tables.ExtSMOL64, 0, 0)).To(Equal(stepped.Has(tables.ExtSMOL64, 0, 0)))
		})

		It("never loses a dependency once an extension is added (bitmap monotonicity precondition)", func() {
			r.Add(tables.ExtSMOL64, 0, 0)
			lenBefore := r.Len()
			r.Add(tables.ExtCompressed, 1, 0)
			Expect(r.Len()).To(BeNumerically(">=", lenBefore))
			Expect(r.Has(tables.ExtSMOL64, 0, 0)).To(BeTrue())
		})
	})

	Describe("Has", func() {
		It("is false for an extension never added", func() {
			Expect(r.Has(tables.ExtMUL, 1, 0)).To(BeFalse())
		})

		It("is true for any minor at or below the registered one", func() {
			r.Add(tables.ExtSMOL64, 0, 2)
			Expect(r.Has(tables.ExtSMOL64, 0, 0)).To(BeTrue())
			Expect(r.Has(tables.ExtSMOL64, 0, 1)).To(BeTrue())
			Expect(r.Has(tables.ExtSMOL64, 0, 2)).To(BeTrue())
		})
	})

	Describe("Enumerate", func() {
		It("preserves insertion order", func() {
			r.Add(tables.ExtCompressed, 1, 0)
			r.Add(tables.ExtFloat, 1, 0)
			entries := r.Enumerate()
			Expect(entries[0].Ext).To(Equal(tables.ExtSMOL64)) // pulled in as a dependency first
		})
	})
})

var _ = Describe("ParseSpec", func() {
	It("parses a bare name with default version 1.0", func() {
		e, major, minor, err := ext.ParseSpec("MUL")
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(Equal(tables.ExtMUL))
		Expect(major).To(Equal(1))
		Expect(minor).To(Equal(0))
	})

	It("parses a name with an explicit major.minor", func() {
		e, major, minor, err := ext.ParseSpec("SMOL64-0.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(Equal(tables.ExtSMOL64))
		Expect(major).To(Equal(0))
		Expect(minor).To(Equal(1))
	})

	It("rejects an unknown extension name", func() {
		_, _, _, err := ext.ParseSpec("NOPE-1.0")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a minor above the highest defined for that major", func() {
		_, _, _, err := ext.ParseSpec("SMOL64-0.9")
		Expect(err).To(HaveOccurred())
	})
})
