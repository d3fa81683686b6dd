// Package report - console and file output.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/instance"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// RenderText writes, per record, a timing line (with errors or warnings when
// a reference was given) followed by the solution line, then the batch
// summary ending with a machine-readable "max avg" line in seconds.
func RenderText(w io.Writer, b Batch) error {
	ew := &errWriter{w: w}
	for _, r := range b.Records {
		ew.printf("time: %v%s\n%s\n", r.Elapsed, comparisonText(r.Comparison), instance.FormatSolution(r.Solution))
	}

	s := Summarize(b.Records)
	ew.printf("Maximum time: %v Average time: %v\n", s.Max, s.Mean)
	ew.printf("Total time: %v\n", s.Total)
	ew.printf("%s %s\n", secondsText(s.Max), secondsText(s.Mean))

	return errors.Wrap(ew.err, "render text")
}

func comparisonText(c *Comparison) string {
	switch {
	case c == nil:
		return ""
	case c.Exact && c.Match == MatchSameCost:
		return " " + yellow("same cost, but different solution")
	case c.Exact && c.Match == MatchMismatch:
		return " " + red(fmt.Sprintf("reference mismatch: want cost %d", c.ReferenceCost))
	case c.Exact:
		return ""
	case c.HasPracticalBound:
		return fmt.Sprintf(" errors: ratio: %g absolute: %d max possible: %d ratio: %g",
			c.RelativeError, c.AbsoluteError, c.PracticalBound, c.BoundRatio)
	default:
		return fmt.Sprintf(" errors: ratio: %g absolute: %d", c.RelativeError, c.AbsoluteError)
	}
}

// RenderTable writes one aligned row per record and a summary block.
func RenderTable(w io.Writer, b Batch) error {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "MODE", "COST", "PICKED", "ELAPSED", "REFERENCE", "ERROR")
	for _, r := range b.Records {
		ref, errCol := "-", "-"
		if c := r.Comparison; c != nil {
			ref = strconv.Itoa(c.ReferenceCost)
			if c.Exact {
				errCol = c.Match.String()
			} else {
				errCol = fmt.Sprintf("%d (%.4f)", c.AbsoluteError, c.RelativeError)
			}
		}
		cost := "none"
		if r.Solution.HasSelection() {
			cost = strconv.Itoa(r.Solution.Cost)
		}
		table.AddRow(r.ID, r.Mode, cost, r.Solution.Picked(), r.Elapsed, ref, errCol)
	}

	s := Summarize(b.Records)
	summary := uitable.New()
	summary.AddRow("METHOD:", b.Method)
	summary.AddRow("INSTANCES:", s.Count)
	summary.AddRow("TOTAL:", s.Total)
	summary.AddRow("WALL:", b.Wall)
	summary.AddRow("MEAN ± SD:", fmt.Sprintf("%v ± %v", s.Mean, s.StdDev))
	summary.AddRow("MEDIAN / P95 / MAX:", fmt.Sprintf("%v / %v / %v", s.Median, s.P95, s.Max))
	if s.Compared > 0 {
		summary.AddRow("COMPARED:", s.Compared)
		summary.AddRow("MISMATCHES:", s.Mismatches)
		summary.AddRow("MEAN / MAX REL ERROR:", fmt.Sprintf("%.4f / %.4f", s.MeanRelError, s.MaxRelError))
	}

	ew := &errWriter{w: w}
	ew.printf("%s\n\n%s\n", table, summary)

	return errors.Wrap(ew.err, "render table")
}

// WriteDurations writes "id seconds" lines, one per record.
func WriteDurations(w io.Writer, records []Record) error {
	ew := &errWriter{w: w}
	for _, r := range records {
		ew.printf("%d %s\n", r.ID, secondsText(r.Elapsed))
	}

	return errors.Wrap(ew.err, "write durations")
}

func secondsText(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
