package instance_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/model"
)

var _ = Describe("ParseProblem", func() {
	It("decodes a construction instance", func() {
		p, err := instance.ParseProblem("9000 4 100 18 114 42 136 88 192 3 223")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(model.Problem{
			ID:       9000,
			Capacity: 100,
			Items:    []model.Item{{Weight: 18, Cost: 114}, {Weight: 42, Cost: 136}, {Weight: 88, Cost: 192}, {Weight: 3, Cost: 223}},
		}))
	})

	It("reads the threshold announced by a negative id", func() {
		p, err := instance.ParseProblem("-12 2 10 50 4 30 7 21")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.ID).To(Equal(12))
		Expect(p.HasThreshold).To(BeTrue())
		Expect(p.Threshold).To(Equal(50))
		Expect(p.Items).To(Equal([]model.Item{{Weight: 4, Cost: 30}, {Weight: 7, Cost: 21}}))
	})

	It("tolerates repeated whitespace and empty instances", func() {
		p, err := instance.ParseProblem("  3\t0   7 ")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.ID).To(Equal(3))
		Expect(p.Capacity).To(Equal(7))
		Expect(p.Items).To(BeEmpty())
	})

	DescribeTable("rejects malformed lines",
		func(line string, want error) {
			_, err := instance.ParseProblem(line)
			Expect(err).To(MatchError(want))
		},
		Entry("zero id", "0 1 10 1 1", instance.ErrZeroID),
		Entry("empty line", "", instance.ErrMalformedLine),
		Entry("missing capacity", "1 2", instance.ErrMalformedLine),
		Entry("missing threshold", "-1 0", instance.ErrMalformedLine),
		Entry("missing cost", "1 2 10 1 1 2", instance.ErrMalformedLine),
		Entry("trailing token", "1 1 10 1 1 9", instance.ErrMalformedLine),
		Entry("not a number", "1 1 ten 1 1", instance.ErrMalformedLine),
		Entry("negative size", "1 -1 10", instance.ErrMalformedLine),
		Entry("size beyond the line", "1 1000000000 10 1 1", instance.ErrMalformedLine),
	)

	It("round-trips through FormatProblem", func() {
		for _, line := range []string{
			"9000 4 100 18 114 42 136 88 192 3 223",
			"-12 2 10 50 4 30 7 21",
			"5 0 0",
		} {
			p, err := instance.ParseProblem(line)
			Expect(err).NotTo(HaveOccurred())
			Expect(instance.FormatProblem(p)).To(Equal(line))
		}
	})
})

var _ = Describe("ParseSolution", func() {
	It("decodes bits in item order", func() {
		s, err := instance.ParseSolution("9000 4 473 1 1 0 1")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(model.Solution{ID: 9000, Size: 4, Cost: 473, Selection: []bool{true, true, false, true}}))
		Expect(instance.FormatSolution(s)).To(Equal("9000 4 473 1 1 0 1"))
	})

	It("formats a missing selection without bits", func() {
		Expect(instance.FormatSolution(model.None(7, 3))).To(Equal("7 3 0"))
	})

	DescribeTable("rejects malformed lines",
		func(line string, want error) {
			_, err := instance.ParseSolution(line)
			Expect(err).To(MatchError(want))
		},
		Entry("zero id", "0 1 0 0", instance.ErrZeroID),
		Entry("negative id", "-3 1 0 0", instance.ErrMalformedLine),
		Entry("too few bits", "1 3 5 1 0", instance.ErrMalformedLine),
		Entry("no bits for a positive size", "1 2 5", instance.ErrMalformedLine),
		Entry("too many bits", "1 1 5 1 0", instance.ErrMalformedLine),
		Entry("bad bit", "1 2 5 1 2", instance.ErrMalformedLine),
		Entry("negative cost", "1 1 -5 1", instance.ErrMalformedLine),
	)
})

var _ = Describe("ReadProblems", func() {
	It("skips blank lines and validates instances", func() {
		ps, err := instance.ReadProblems(strings.NewReader("1 1 5 2 3\n\n-2 1 5 3 2 3\n"), "set.dat")
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(HaveLen(2))
		Expect(ps[1].HasThreshold).To(BeTrue())
	})

	It("reports the source line of a parse error", func() {
		_, err := instance.ReadProblems(strings.NewReader("1 1 5 2 3\n2 1 5 2\n"), "set.dat")
		Expect(err).To(MatchError(instance.ErrMalformedLine))
		Expect(err.Error()).To(HavePrefix("set.dat:2: "))
	})

	It("rejects values the solvers cannot take", func() {
		_, err := instance.ReadProblems(strings.NewReader("1 1 5 -2 3\n"), "set.dat")
		Expect(err).To(MatchError(model.ErrNegativeValue))
	})
})

var _ = Describe("ReadSolutions", func() {
	It("indexes solutions by id and refuses duplicates", func() {
		sols, err := instance.ReadSolutions(strings.NewReader("1 2 5 1 0\n2 1 0 0\n"), "ref.dat")
		Expect(err).NotTo(HaveOccurred())
		idx, err := instance.IndexSolutions(sols)
		Expect(err).NotTo(HaveOccurred())
		Expect(idx).To(HaveKey(2))

		_, err = instance.IndexSolutions(append(sols, sols[0]))
		Expect(err).To(MatchError(instance.ErrDuplicateID))
	})
})
