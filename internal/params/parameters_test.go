package params_test

import (
	"errors"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flavorsim/internal/params"
)

var _ = Describe("Parameters", func() {
	var p params.Parameters

	BeforeEach(func() {
		p = params.Defaults()
	})

	Describe("construction", func() {
		It("starts every value at its central value", func() {
			Expect(p.Len()).To(Equal(len(params.DefaultTemplates)))
			for par := range p.All() {
				Expect(par.Value()).To(Equal(par.Central()), par.Name())
			}
		})

		It("accepts bounds that are out of order", func() {
			ms, err := p.ByName("mass::s(2GeV)")
			Expect(err).NotTo(HaveOccurred())
			Expect(ms.Min()).To(BeNumerically(">", ms.Max()))
			Expect(ms.Value()).To(Equal(0.095))
		})

		It("assigns ids in seed order", func() {
			i := 0
			for par := range p.All() {
				Expect(par.ID()).To(Equal(params.ID(i)))
				Expect(par.Name()).To(Equal(params.DefaultTemplates[i].Name))
				i++
			}
		})

		It("rejects duplicate names", func() {
			_, err := params.New(
				params.Template{Name: "a", Central: 1},
				params.Template{Name: "a", Central: 2},
			)
			Expect(err).To(MatchError(params.ErrDuplicateName))
		})

		It("builds a new store on every Defaults call", func() {
			Expect(params.Defaults().Equal(p)).To(BeFalse())
		})
	})

	Describe("lookup", func() {
		It("resolves names and ids to the same record", func() {
			for _, name := range []string{"hbar", "mass::B_d", "CKM::lambda", "exp::Admixture-BR(B->X_sll)"} {
				byName, err := p.ByName(name)
				Expect(err).NotTo(HaveOccurred())
				byID, err := p.ByID(byName.ID())
				Expect(err).NotTo(HaveOccurred())
				Expect(byID.Name()).To(Equal(name))

				byID.Set(42)
				Expect(byName.Value()).To(Equal(42.0))
			}
		})

		It("reports unknown names", func() {
			_, err := p.ByName("does-not-exist")
			Expect(err).To(MatchError(params.ErrUnknownParameter))

			var unknown *params.UnknownParameterError
			Expect(errors.As(err, &unknown)).To(BeTrue())
			Expect(unknown.Name).To(Equal("does-not-exist"))
			Expect(err.Error()).To(ContainSubstring("does-not-exist"))
		})

		It("reports out of range ids as internal errors", func() {
			for _, id := range []params.ID{-1, params.ID(p.Len()), 10000} {
				_, err := p.ByID(id)
				Expect(err).To(MatchError(params.ErrInvalidID))
				Expect(errors.Is(err, params.ErrInternal)).To(BeTrue())
				Expect(errors.Is(err, params.ErrUnknownParameter)).To(BeFalse())

				var invalid *params.InvalidIDError
				Expect(errors.As(err, &invalid)).To(BeTrue())
				Expect(invalid.ID).To(Equal(id))
				Expect(invalid.Len).To(Equal(p.Len()))
			}
		})

		It("treats the zero view as empty", func() {
			var empty params.Parameters
			Expect(empty.Len()).To(Equal(0))
			_, err := empty.ByName("hbar")
			Expect(err).To(MatchError(params.ErrUnknownParameter))
			_, err = empty.ByID(0)
			Expect(err).To(MatchError(params.ErrInvalidID))
			Expect(empty.Clone().Len()).To(Equal(0))
		})
	})

	Describe("Set", func() {
		It("is visible through every view sharing the store", func() {
			alias := p
			Expect(p.Set("mass::B_d", 5.3)).To(Succeed())

			mb, err := alias.ByName("mass::B_d")
			Expect(err).NotTo(HaveOccurred())
			Expect(mb.Value()).To(Equal(5.3))
			Expect(alias == p).To(BeTrue())
		})

		It("leaves range and name untouched", func() {
			Expect(p.Set("mass::B_d", 100)).To(Succeed())
			mb, _ := p.ByName("mass::B_d")
			Expect(mb.Min()).To(Equal(5.27941))
			Expect(mb.Central()).To(Equal(5.27958))
			Expect(mb.Max()).To(Equal(5.27975))
			Expect(mb.Value()).To(Equal(100.0))
		})

		It("fails for unknown names without touching the store", func() {
			before := p.Snapshot()
			Expect(p.Set("mass::B_x", 1)).To(MatchError(params.ErrUnknownParameter))
			Expect(p.Snapshot()).To(Equal(before))
		})

		It("applies overrides all or nothing", func() {
			before := p.Snapshot()
			err := p.Apply(map[string]float64{"mass::B_d": 5.0, "nope": 1})
			Expect(err).To(MatchError(params.ErrUnknownParameter))
			Expect(p.Snapshot()).To(Equal(before))

			Expect(p.Apply(map[string]float64{"mass::B_d": 5.0, "mass::B_u": 5.1})).To(Succeed())
			Expect(p.Snapshot()).To(HaveKeyWithValue("mass::B_d", 5.0))
			Expect(p.Snapshot()).To(HaveKeyWithValue("mass::B_u", 5.1))
		})

		It("restores central values on Reset", func() {
			Expect(p.Set("CKM::A", 0.9)).To(Succeed())
			p.Reset()
			a, _ := p.ByName("CKM::A")
			Expect(a.Value()).To(Equal(a.Central()))
		})
	})

	Describe("Clone", func() {
		It("is never equal to its origin", func() {
			c := p.Clone()
			Expect(c.Equal(p)).To(BeFalse())
			Expect(c == p).To(BeFalse())
			Expect(c.Snapshot()).To(Equal(p.Snapshot()))
			Expect(c.Names()).To(Equal(p.Names()))
		})

		It("diverges from its origin after cloning", func() {
			Expect(p.Set("mass::B_d", 5.3)).To(Succeed())
			c := p.Clone()
			Expect(p.Set("mass::B_d", 5.4)).To(Succeed())

			mb, _ := c.ByName("mass::B_d")
			Expect(mb.Value()).To(Equal(5.3))

			Expect(c.Set("mass::B_u", 1)).To(Succeed())
			mu, _ := p.ByName("mass::B_u")
			Expect(mu.Value()).To(Equal(5.27925))
		})

		It("keeps ids meaningful but binds handles to their own store", func() {
			orig, _ := p.ByName("CKM::etabar")
			k := orig.ID()

			c := p.Clone()
			fromClone, err := c.ByID(k)
			Expect(err).NotTo(HaveOccurred())
			Expect(fromClone.Name()).To(Equal(orig.Name()))

			fromClone.Set(0.5)
			Expect(orig.Value()).To(Equal(0.350))
			orig.Set(0.1)
			Expect(fromClone.Value()).To(Equal(0.5))
		})

		It("iterates the clone in the same order", func() {
			c := p.Clone()
			var ids []params.ID
			for par := range c.All() {
				ids = append(ids, par.ID())
			}
			Expect(ids).To(HaveLen(p.Len()))
			Expect(slices.IsSorted(ids)).To(BeTrue())
		})
	})

	Describe("All", func() {
		It("can be restarted and stopped early", func() {
			first := slices.Collect(p.All())
			second := slices.Collect(p.All())
			Expect(first).To(HaveLen(len(second)))

			n := 0
			for range p.All() {
				n++
				if n == 3 {
					break
				}
			}
			Expect(n).To(Equal(3))
		})
	})
})

var _ = Describe("Parameter", func() {
	It("reads central, min, max and name", func() {
		p := params.MustNew(params.Template{Name: "x", Min: -1, Central: 0.5, Max: 2})
		x, err := p.ByName("x")
		Expect(err).NotTo(HaveOccurred())
		Expect(x.Valid()).To(BeTrue())
		Expect(x.Name()).To(Equal("x"))
		Expect(x.Min()).To(Equal(-1.0))
		Expect(x.Central()).To(Equal(0.5))
		Expect(x.Max()).To(Equal(2.0))
		Expect(x.ID()).To(Equal(params.ID(0)))
		Expect(x.String()).To(ContainSubstring("x = 0.5"))
	})

	It("accepts values outside its range", func() {
		p := params.MustNew(params.Template{Name: "x", Min: 0, Central: 0.5, Max: 1})
		x, _ := p.ByName("x")
		x.Set(7)
		Expect(x.Value()).To(Equal(7.0))
	})

	It("clones as an alias of the same record", func() {
		p := params.Defaults()
		mb, _ := p.ByName("mass::B_d")
		alias := mb.Clone()
		alias.Set(6)
		Expect(mb.Value()).To(Equal(6.0))
		Expect(alias.ID()).To(Equal(mb.ID()))
	})

	It("is invalid when zero", func() {
		var zero params.Parameter
		Expect(zero.Valid()).To(BeFalse())
		Expect(zero.String()).To(Equal("<unbound parameter>"))
	})
})

var _ = Describe("end to end", func() {
	It("follows a value through set and clone", func() {
		p := params.Defaults()
		mb, err := p.ByName("mass::B_d")
		Expect(err).NotTo(HaveOccurred())
		Expect(mb.Value()).To(Equal(5.27958))

		Expect(p.Set("mass::B_d", 5.3)).To(Succeed())
		mb, _ = p.ByName("mass::B_d")
		Expect(mb.Value()).To(Equal(5.3))

		c := p.Clone()
		Expect(p.Set("mass::B_d", 5.4)).To(Succeed())

		cb, _ := c.ByName("mass::B_d")
		Expect(cb.Value()).To(Equal(5.3))
		Expect(mb.Value()).To(Equal(5.4))
	})
})
