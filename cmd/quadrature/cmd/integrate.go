// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrature/integrand"
	"github.com/katalvlaran/quadrature/internal/report"
	"github.com/katalvlaran/quadrature/quadrature"
)

// runFlags are the per-run overrides shared by integrate and compare.
type runFlags struct {
	method    string
	mode      string
	integrand string
	a, b      float64
	n         []int
}

func (rf *runFlags) register(cmd *cobra.Command, withMethod bool) {
	f := cmd.Flags()
	if withMethod {
		f.StringVarP(&rf.method, "method", "m", "", "rule: left, right, mid, random, trapezoidal, simpson, rectangle, all")
		f.StringVar(&rf.mode, "mode", "", "evaluation point for -m rectangle: left, right, mid, random")
	}
	f.StringVarP(&rf.integrand, "integrand", "f", "", "catalogue function (see 'quadrature integrands')")
	f.Float64VarP(&rf.a, "a", "a", 0, "lower bound")
	f.Float64VarP(&rf.b, "b", "b", 1, "upper bound")
	f.IntSliceVarP(&rf.n, "n", "n", nil, "partition counts, comma separated")
}

// apply copies changed flags over the loaded configuration.
func (rf *runFlags) apply(cmd *cobra.Command, st *state) {
	flags := cmd.Flags()
	if flags.Changed("method") {
		st.cfg.Method = rf.method
	}
	if flags.Changed("mode") {
		st.cfg.Mode = rf.mode
	}
	if flags.Changed("integrand") {
		st.cfg.Integrand = rf.integrand
	}
	if flags.Changed("a") {
		st.cfg.A = rf.a
	}
	if flags.Changed("b") {
		st.cfg.B = rf.b
	}
	if flags.Changed("n") {
		st.cfg.N = rf.n
	}
}

func newIntegrateCmd(st *state) *cobra.Command {
	rf := &runFlags{}
	c := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate with one rule",
		Example: `  quadrature integrate -m simpson -f cube -a 0 -b 1 -n 2
  quadrature integrate -m random -f square -n 10,100,1000 --seed 42
  quadrature integrate -m rectangle --mode mid -f sin -n 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rf.apply(cmd, st)
			rep, err := evaluate(cmd, st, nil)
			if err != nil {
				return err
			}
			for _, row := range rep.Rows {
				if row.Err != nil {
					return row.Err
				}
			}
			return nil
		},
	}
	rf.register(c, true)
	return c
}

func newCompareCmd(st *state) *cobra.Command {
	rf := &runFlags{}
	c := &cobra.Command{
		Use:     "compare",
		Short:   "Integrate with every rule and tabulate the errors",
		Example: `  quadrature compare -f sin -a 0 -b 3.141592653589793 -n 4,16,64`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rf.apply(cmd, st)
			_, err := evaluate(cmd, st, quadrature.Names())
			return err
		},
	}
	rf.register(c, false)
	return c
}

// evaluate validates the configuration, runs the report and prints it.
// A nil methods list means the rules named by the configuration.
// Rows rejected by their rule are logged, not fatal.
func evaluate(cmd *cobra.Command, st *state, methods []string) (*report.Report, error) {
	if err := st.cfg.Validate(); err != nil {
		return nil, err
	}
	if methods == nil {
		methods = st.cfg.Methods()
	}
	in, err := integrand.Lookup(st.cfg.Integrand)
	if err != nil {
		return nil, err
	}

	rep, err := report.Run(methods, in, st.cfg.A, st.cfg.B, st.cfg.N, st.cfg.Options()...)
	if err != nil {
		return nil, err
	}

	log := st.log.With("run_id", rep.RunID.String())
	log.Info("integrated",
		"integrand", in.Name,
		"a", st.cfg.A,
		"b", st.cfg.B,
		"methods", len(methods),
		"partitions", len(st.cfg.N))
	for _, row := range rep.Rows {
		if row.Err != nil {
			log.Warn("rule rejected arguments", "method", row.Method, "n", row.N, "err", row.Err)
			continue
		}
		log.Debug("row", "method", row.Method, "n", row.N, "value", row.Value, "abs_err", row.AbsErr)
	}

	if err := rep.WriteTable(cmd.OutOrStdout()); err != nil {
		return nil, err
	}
	return rep, nil
}
