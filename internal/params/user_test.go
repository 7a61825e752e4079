package params_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flavorsim/internal/params"
)

var _ = Describe("User", func() {
	var u params.User

	BeforeEach(func() {
		u = params.User{}
	})

	It("ignores repeated ids", func() {
		u.Uses(3)
		once := u.Len()
		u.Uses(3)
		Expect(u.Len()).To(Equal(once))
		Expect(u.Has(3)).To(BeTrue())
		Expect(u.Has(4)).To(BeFalse())
	})

	It("merges other users", func() {
		var a, b params.User
		a.Uses(1)
		a.Uses(5)
		b.Uses(5)
		b.Uses(2)

		u.UsesAll(&a)
		u.UsesAll(&b)
		u.UsesAll(&b)
		u.UsesAll(nil)
		Expect(slices.Collect(u.IDs())).To(Equal([]params.ID{1, 2, 5}))
	})

	It("yields ids in ascending order", func() {
		for _, id := range []params.ID{9, 2, 7, 0} {
			u.Uses(id)
		}
		Expect(slices.Collect(u.IDs())).To(Equal([]params.ID{0, 2, 7, 9}))
	})

	Describe("Use", func() {
		It("registers the handle's id", func() {
			p := params.Defaults()
			mb, _ := p.ByName("mass::B_d")
			used := params.Use(mb, &u)
			Expect(u.Has(mb.ID())).To(BeTrue())
			Expect(used.Value()).To(Equal(mb.Value()))

			used.Set(5.0)
			Expect(mb.Value()).To(Equal(5.0))
		})
	})

	Describe("Acquire", func() {
		It("looks up and registers in one step", func() {
			p := params.Defaults()
			used, err := u.Acquire(p, "CKM::A")
			Expect(err).NotTo(HaveOccurred())
			Expect(used.Name()).To(Equal("CKM::A"))
			Expect(u.Has(used.ID())).To(BeTrue())
		})

		It("registers nothing when the name is unknown", func() {
			_, err := u.Acquire(params.Defaults(), "CKM::B")
			Expect(err).To(MatchError(params.ErrUnknownParameter))
			Expect(u.Len()).To(Equal(0))
		})
	})
})
