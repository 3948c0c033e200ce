// SPDX-License-Identifier: MIT

// Package cmd wires the cobra command tree of the quadrature CLI.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadrature/internal/config"
	"github.com/katalvlaran/quadrature/internal/logging"
)

// state is shared by the subcommands of one root command.
type state struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger

	// flag overrides
	logLevel string
	noColor  bool
	seed     int64
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "quadrature",
		Short: "Fixed-step numerical integration",
		Long: `quadrature approximates definite integrals of catalogue functions with
the rectangle (left, right, mid, random), trapezoidal and Simpson rules.

Settings come from --config (TOML or YAML), else $QUADRATURE_CONFIG,
else built-in defaults; flags override both.`,
		SilenceUsage:      true,
		PersistentPreRunE: st.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfgFile, "config", "", "config file (.toml, .yaml, .yml)")
	pf.StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&st.noColor, "no-color", false, "disable coloured log output")
	pf.Int64Var(&st.seed, "seed", 0, "seed for the random rectangle rule (0 = unseeded)")

	root.AddCommand(
		newIntegrateCmd(st),
		newCompareCmd(st),
		newMethodsCmd(),
		newIntegrandsCmd(),
	)
	return root
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger.
func (st *state) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if st.cfgFile != "" {
		cfg, err = config.Load(st.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = st.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = st.noColor
	}
	if flags.Changed("seed") {
		cfg.Seed = st.seed
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.log = logging.New(cmd.ErrOrStderr(), level, cfg.NoColor)
	st.log.Debug("configuration loaded",
		"file", st.cfgFile,
		"method", cfg.Method,
		"integrand", cfg.Integrand,
		"seed", cfg.Seed)
	return nil
}
