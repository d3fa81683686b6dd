package main

import (
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/solver"
)

// methodParams lists the parameters each strategy requires.
var methodParams = map[solver.Method]string{
	solver.FTPAS:         "--precision",
	solver.ApproxPruning: "--precision",
	solver.TabuSearch:    "--memory-size --iterations",
}

func newMethodsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "list the solving strategies",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			table := uitable.New()
			table.AddRow("METHOD", "EXACT", "REQUIRES")
			for _, m := range solver.Methods() {
				req := methodParams[m]
				if req == "" {
					req = "-"
				}
				table.AddRow(m, m.IsExact(), req)
			}
			_, err := a.out.Write(append(table.Bytes(), '\n'))

			return err
		}),
	}
}
