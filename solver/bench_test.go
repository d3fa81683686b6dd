package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

func benchProblems(n int) []model.Problem {
	rng := rand.New(rand.NewSource(1))
	ps := make([]model.Problem, 16)
	for i := range ps {
		ps[i] = randomProblem(rng, i+1, n)
	}

	return ps
}

func benchMethod(b *testing.B, n int, m solver.Method, opts ...solver.Option) {
	var (
		ps = benchProblems(n)
		s  = mustNew(b, m, opts...)
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Construct(ps[i%len(ps)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNaive_n16(b *testing.B)         { benchMethod(b, 16, solver.Naive) }
func BenchmarkPruning_n30(b *testing.B)       { benchMethod(b, 30, solver.Pruning) }
func BenchmarkDynamicWeight_n30(b *testing.B) { benchMethod(b, 30, solver.DynamicWeight) }
func BenchmarkDynamicCost_n30(b *testing.B)   { benchMethod(b, 30, solver.DynamicCost) }
func BenchmarkRedux_n30(b *testing.B)         { benchMethod(b, 30, solver.Redux) }
func BenchmarkFTPAS_n30(b *testing.B) {
	benchMethod(b, 30, solver.FTPAS, solver.WithPrecision(8))
}
func BenchmarkApproxPruning_n30(b *testing.B) {
	benchMethod(b, 30, solver.ApproxPruning, solver.WithPrecision(4))
}
func BenchmarkTabu_n30(b *testing.B) {
	benchMethod(b, 30, solver.TabuSearch, solver.WithMemorySize(8), solver.WithIterations(200))
}
