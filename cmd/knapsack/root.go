package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "KNAPSACK"

var globalUsage = `Solve 0/1 knapsack instances with interchangeable strategies.

Every flag can also be given as a KNAPSACK_* environment variable
(KNAPSACK_METHOD, KNAPSACK_MEMORY_SIZE, ...) or in the file passed with --config.
`

// app carries what every command shares.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger
	out    io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		a = &app{
			v:      viper.New(),
			logger: logrus.New(),
			out:    out,
		}
		cfgFile string
	)
	a.logger.SetOutput(errOut)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "knapsack",
		Short:         "0/1 knapsack solver suite",
		Long:          globalUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Only the running command's flags are bound, so commands may
			// reuse flag names without clashing.
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrap(err, "bind flags")
			}
			if cfgFile != "" {
				a.v.SetConfigFile(cfgFile)
				if err := a.v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "read config %s", cfgFile)
				}
			}
			if a.v.GetBool("debug") {
				a.logger.SetLevel(logrus.DebugLevel)
			}
			a.logger.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.Bool("debug", false, "enable debug logging")
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	cmd.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newMethodsCmd(a),
	)

	return cmd
}

// run wraps a command body so failures are logged once, the way the
// command line reports them.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			a.logger.Errorf("%s: %v", cmd.Name(), err)
			a.logger.Debugf("%+v", err)
		}

		return err
	}
}
