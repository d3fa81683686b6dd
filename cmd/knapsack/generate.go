package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

const generateDesc = `
Generate random instances in the problem line format. The same seed always
produces the same instances. With --reference, every instance is also solved
with an exact method and the solutions are written as a reference file.
`

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate random instances",
		Long:  generateDesc,
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			o := instance.GenerateOptions{
				Count:          a.v.GetInt("count"),
				Size:           a.v.GetInt("size"),
				MaxWeight:      a.v.GetInt("max-weight"),
				MaxCost:        a.v.GetInt("max-cost"),
				CapacityRatio:  a.v.GetFloat64("capacity-ratio"),
				Decision:       a.v.GetBool("decision"),
				ThresholdRatio: a.v.GetFloat64("threshold-ratio"),
				Seed:           a.v.GetInt64("seed"),
				FirstID:        a.v.GetInt("first-id"),
			}
			problems, err := instance.Generate(o)
			if err != nil {
				return err
			}

			if out := a.v.GetString("output"); out != "" {
				err = writeFile(out, func(w io.Writer) error { return instance.WriteProblems(w, problems) })
			} else {
				err = instance.WriteProblems(a.out, problems)
			}
			if err != nil {
				return err
			}
			a.logger.WithField("count", len(problems)).Debug("instances written")

			if ref := a.v.GetString("reference"); ref != "" {
				return writeFile(ref, func(w io.Writer) error {
					return writeReferences(w, problems, a.v.GetString("reference-method"))
				})
			}

			return nil
		}),
	}

	d := instance.DefaultGenerateOptions()
	f := cmd.Flags()
	f.IntP("count", "n", d.Count, "number of instances")
	f.Int("size", d.Size, "items per instance")
	f.Int("max-weight", d.MaxWeight, "largest item weight")
	f.Int("max-cost", d.MaxCost, "largest item cost")
	f.Float64("capacity-ratio", d.CapacityRatio, "capacity as a fraction of the total weight")
	f.Bool("decision", false, "emit decision instances with a threshold")
	f.Float64("threshold-ratio", d.ThresholdRatio, "threshold as a fraction of the total cost")
	f.Int64("seed", 0, "random seed (0 = default)")
	f.Int("first-id", d.FirstID, "id of the first instance")
	f.StringP("output", "o", "", "write instances to this file instead of stdout")
	f.String("reference", "", "also write reference solutions to this file")
	f.String("reference-method", solver.DynamicWeight.String(), "exact method used for --reference")

	return cmd
}

// writeReferences solves every problem as a construction instance and writes
// the solution lines.
func writeReferences(w io.Writer, problems []model.Problem, method string) error {
	m, err := solver.ParseMethod(method)
	if err != nil {
		return err
	}
	if !m.IsExact() {
		return errors.Errorf("reference method %s is not exact", m)
	}
	s, err := solver.New(m)
	if err != nil {
		return err
	}
	for _, p := range problems {
		sol, err := s.Construct(p)
		if err != nil {
			return errors.Wrapf(err, "problem %d", p.ID)
		}
		if !sol.HasSelection() {
			return errors.Errorf("problem %d: %s returned no selection", p.ID, m)
		}
		if _, err = io.WriteString(w, instance.FormatSolution(sol)+"\n"); err != nil {
			return errors.Wrap(err, "write reference")
		}
	}

	return nil
}
