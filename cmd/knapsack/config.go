package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/knapsack/solver"
)

// Viper keys of the solve command. Flag names are identical.
const (
	keyMethod            = "method"
	keyPrecision         = "precision"
	keyMemorySize        = "memory-size"
	keyIterations        = "iterations"
	keyMemoryLimit       = "memory-limit"
	keyWorkers           = "workers"
	keyForceConstruction = "force-construction"
	keyVerify            = "verify"
	keyStrict            = "strict"
	keyFormat            = "format"
	keySaveDurations     = "save-durations"
	keyMetricsFile       = "metrics-file"
)

const (
	formatText  = "text"
	formatTable = "table"
)

// solveConfig is the resolved configuration of one solve run.
type solveConfig struct {
	Method            solver.Method
	Options           []solver.Option
	Precision         int
	Workers           int
	ForceConstruction bool
	Verify            bool
	Strict            bool
	Format            string
	SaveDurations     string
	MetricsFile       string
}

func addSolveFlags(f *pflag.FlagSet) {
	f.StringP(keyMethod, "m", solver.Pruning.String(), "solving strategy (see 'knapsack methods')")
	f.Int(keyPrecision, 0, "FTPAS cost divisor or approx-pruning precision (required by both)")
	f.Int(keyMemorySize, 0, "tabu-search memory size (required by tabu-search)")
	f.Int(keyIterations, 0, "tabu-search iterations (required by tabu-search)")
	f.Int(keyMemoryLimit, solver.DefaultMemoryLimit, "table cell ceiling of dynamic-weight, dynamic-cost and ftpas")
	f.IntP(keyWorkers, "j", 1, "instances solved in parallel")
	f.Bool(keyForceConstruction, false, "solve decision instances as construction instances")
	f.Bool(keyVerify, false, "check every returned selection against its instance")
	f.Bool(keyStrict, false, "fail when an exact result differs from its reference")
	f.String(keyFormat, formatText, "output format: text or table")
	f.String(keySaveDurations, "", "write 'id seconds' lines to this file")
	f.String(keyMetricsFile, "", "write Prometheus text metrics to this file")
}

// loadSolveConfig resolves the solve configuration. Strategy parameters are
// passed to the selector only when set by flag, environment or config file,
// so a missing one is reported instead of defaulted.
func loadSolveConfig(v *viper.Viper) (solveConfig, error) {
	var c solveConfig
	m, err := solver.ParseMethod(v.GetString(keyMethod))
	if err != nil {
		return c, err
	}
	c.Method = m

	if v.IsSet(keyPrecision) {
		c.Precision = v.GetInt(keyPrecision)
		c.Options = append(c.Options, solver.WithPrecision(c.Precision))
	}
	if v.IsSet(keyMemorySize) {
		c.Options = append(c.Options, solver.WithMemorySize(v.GetInt(keyMemorySize)))
	}
	if v.IsSet(keyIterations) {
		c.Options = append(c.Options, solver.WithIterations(v.GetInt(keyIterations)))
	}
	c.Options = append(c.Options, solver.WithMemoryLimit(v.GetInt(keyMemoryLimit)))

	c.Workers = v.GetInt(keyWorkers)
	c.ForceConstruction = v.GetBool(keyForceConstruction)
	c.Verify = v.GetBool(keyVerify)
	c.Strict = v.GetBool(keyStrict)
	c.SaveDurations = v.GetString(keySaveDurations)
	c.MetricsFile = v.GetString(keyMetricsFile)

	c.Format = v.GetString(keyFormat)
	if c.Format != formatText && c.Format != formatTable {
		return c, errors.Errorf("unknown format %q (valid: %s, %s)", c.Format, formatText, formatTable)
	}

	return c, nil
}
