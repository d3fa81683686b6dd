// Package report - batch statistics.
package report

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the timings and comparisons of a batch.
//
// Mean, StdDev, Median and P95 are computed over per-instance durations;
// StdDev is 0 for fewer than two records. The error fields cover only
// approximate comparisons.
type Summary struct {
	Count  int
	Total  time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration
	P95    time.Duration

	Selected    int // records carrying a selection
	Unreachable int // decision records whose threshold was not met
	None        int // construction records without selection

	Compared      int
	SameCost      int
	Mismatches    int
	MeanRelError  float64
	MaxRelError   float64
	MaxBoundRatio float64
}

// Summarize computes the statistics of records.
//
// Complexity: O(n log n) for the quantiles.
func Summarize(records []Record) Summary {
	var (
		s    = Summary{Count: len(records)}
		secs = make([]float64, 0, len(records))
		rels []float64
	)
	for _, r := range records {
		s.Total += r.Elapsed
		if r.Elapsed > s.Max {
			s.Max = r.Elapsed
		}
		secs = append(secs, r.Elapsed.Seconds())

		switch r.Outcome() {
		case "selected":
			s.Selected++
		case "unreachable":
			s.Unreachable++
		default:
			s.None++
		}

		c := r.Comparison
		if c == nil {
			continue
		}
		s.Compared++
		if c.Exact {
			switch c.Match {
			case MatchSameCost:
				s.SameCost++
			case MatchMismatch:
				s.Mismatches++
			}
			continue
		}
		rels = append(rels, c.RelativeError)
		s.MaxRelError = math.Max(s.MaxRelError, c.RelativeError)
		s.MaxBoundRatio = math.Max(s.MaxBoundRatio, c.BoundRatio)
	}
	if len(secs) == 0 {
		return s
	}

	sort.Float64s(secs)
	s.Mean = seconds(stat.Mean(secs, nil))
	if len(secs) > 1 {
		s.StdDev = seconds(stat.StdDev(secs, nil))
	}
	s.Median = seconds(stat.Quantile(0.5, stat.Empirical, secs, nil))
	s.P95 = seconds(stat.Quantile(0.95, stat.Empirical, secs, nil))
	if len(rels) > 0 {
		s.MeanRelError = stat.Mean(rels, nil)
	}

	return s
}

func seconds(f float64) time.Duration {
	return time.Duration(math.Round(f * float64(time.Second)))
}
