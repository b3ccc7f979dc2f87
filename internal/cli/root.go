package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/fdr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewRootCommand builds the fdr command.
// When logger is nil one is built from the resolved --verbose setting.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fdr [p-values...]",
		Short: "Benjamini-Hochberg false discovery rate correction",
		Long: `fdr decides which tests are significant after controlling the
False Discovery Rate with the Benjamini-Hochberg step-up procedure, or the
Benjamini-Hochberg-Yekutieli variant for dependent tests (--dependent).

P-values are taken from the arguments, or from stdin when none are given
(separated by whitespace, commas or newlines; '#' starts a comment line).
Each input produces one line: index, p-value, reject.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			log := logger
			if log == nil {
				log, err = newLogger(cfg.Verbose)
				if err != nil {
					return fmt.Errorf("building logger: %w", err)
				}
				defer func() { _ = log.Sync() }()
			}
			if used := v.ConfigFileUsed(); used != "" {
				log.Debug("using config file", zap.String("path", used))
			}

			return run(cmd, args, cfg, log)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fdr.yaml)")
	flags.Float64("alpha", fdr.DefaultAlpha, "target false discovery rate, 0 < alpha < 1")
	flags.Bool("dependent", false, "tests may be arbitrarily dependent (Benjamini-Hochberg-Yekutieli)")
	flags.Bool("strict", fdr.DefaultStrictPValues, "reject p-values that are NaN, infinite or outside [0,1]")
	flags.BoolP("verbose", "v", false, "verbose output")

	for _, name := range []string{"alpha", "dependent", "strict", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCommand(nil).Execute()
}

// run reads the input, applies the correction and prints aligned decisions.
// Failures are returned, not logged above Debug; the caller prints them once.
func run(cmd *cobra.Command, args []string, cfg Config, log *zap.Logger) error {
	var (
		pvalues []float64
		err     error
	)
	if len(args) > 0 {
		pvalues, err = parseArgs(args)
	} else {
		pvalues, err = readPValues(cmd.InOrStdin())
	}
	if err != nil {
		log.Debug("parsing input failed", zap.Error(err))

		return err
	}

	log.Debug("running correction",
		zap.Int("n", len(pvalues)),
		zap.Float64("alpha", cfg.Alpha),
		zap.Stringer("method", cfg.Method()),
		zap.Bool("strict", cfg.Strict),
	)

	res, err := fdr.Run(pvalues, cfg.Options()...)
	if err != nil {
		log.Debug("correction failed",
			zap.Int("n", len(pvalues)),
			zap.Float64("alpha", cfg.Alpha),
			zap.Stringer("method", cfg.Method()),
			zap.Error(err),
		)

		return err
	}

	if err := writeDecisions(cmd.OutOrStdout(), pvalues, res.Reject); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.Info("correction done",
		zap.Int("n", len(pvalues)),
		zap.Stringer("method", cfg.Method()),
		zap.Float64("cutoff", res.Cutoff),
		zap.Int("rejected", res.Rejected),
	)

	return nil
}

// writeDecisions prints "index<TAB>pvalue<TAB>reject" per input, in input order.
func writeDecisions(w io.Writer, pvalues []float64, reject []bool) error {
	for i, p := range pvalues {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%t\n", i, strconv.FormatFloat(p, 'g', -1, 64), reject[i]); err != nil {
			return err
		}
	}

	return nil
}
