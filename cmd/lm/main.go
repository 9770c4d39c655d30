// Command lm fits an ordinary least squares model to a comma separated
// table whose first column is the response.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/golm/config"
	"github.com/YuminosukeSato/golm/partition"
	"github.com/YuminosukeSato/golm/pipeline"
	"github.com/YuminosukeSato/golm/pkg/errors"
	"github.com/YuminosukeSato/golm/pkg/log"
	"github.com/YuminosukeSato/golm/report"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "lm [file]",
		Short: "Fit a linear model to a CSV table",
		Long: `lm reads a comma separated table (first line is the header, first column
is the response) from a file or standard input, encodes categorical predictors,
fits an ordinary least squares model and prints the coefficients with their
p-values and model diagnostics.

Encodings: none, onehot, mean, median.
Response transforms: none, log, log_offset.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set(config.KeyInput, args[0])
			}
			err := run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), v)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "lm: %v\n", err)
			}
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "Configuration file path")
	flags.StringP("encoding", "e", "none", "Categorical encoding (none, onehot, mean, median)")
	flags.Float64P("test-ratio", "t", 0, "Fraction of rows held out for evaluation, in [0,1]")
	flags.Int64("seed", 0, "Random seed for the held-out split (0 seeds from the clock)")
	flags.String("transform", "none", "Response transform (none, log, log_offset)")
	flags.StringP("output", "o", "", "Base path for .coef, .json and .state files")
	flags.String("plot", "", "Write a residual plot to this PNG file")
	flags.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")

	for key, name := range map[string]string{
		config.KeyConfig:    "config",
		config.KeyEncoding:  "encoding",
		config.KeyTestRatio: "test-ratio",
		config.KeySeed:      "seed",
		config.KeyTransform: "transform",
		config.KeyOutput:    "output",
		config.KeyPlot:      "plot",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return rootCmd
}

func run(stdin io.Reader, stdout, stderr io.Writer, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	var provider *log.ZerologProvider
	if cfg.LogFormat == config.FormatJSON {
		provider = log.NewZerologProvider(level, stderr)
	} else {
		provider = log.NewConsoleProvider(level, stderr)
	}
	log.SetProvider(provider)
	log.InstallWarnHandler(provider.GetLoggerWithName("warning"))
	logger := provider.GetLoggerWithName("lm")

	transform, err := cfg.ResponseTransform()
	if err != nil {
		return err
	}
	rng, seed := partition.NewSource(cfg.Seed, func() int64 { return time.Now().UnixNano() })

	in, closeInput, err := openInput(cfg, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	opts := pipeline.Options{
		Strategy:  cfg.Strategy(),
		Transform: transform,
		TestRatio: cfg.TestRatio,
		Rand:      rng,
		Logger:    logger,
	}
	logger.Info("run configured",
		log.StrategyKey, opts.Strategy.String(),
		log.TransformKey, transform.String(),
		log.TestRatioKey, cfg.TestRatio,
		log.RandomSeedKey, seed,
	)

	prep, err := pipeline.Read(in, opts)
	if err != nil {
		return err
	}
	m, err := pipeline.Fit(prep, logger)
	if err != nil {
		return err
	}

	coef := m.OLS.Coefficients()
	if err := report.WriteCoefficients(stdout, m.Names, coef, m.PValues); err != nil {
		return err
	}
	if err := report.WriteDiagnostics(stdout, m.Diagnostics); err != nil {
		return err
	}
	if m.HeldOut != nil {
		if err := report.WriteHeldOut(stdout, *m.HeldOut); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		if err := report.SaveCoefficients(cfg.Output, m.Names, coef); err != nil {
			return err
		}
		w := report.Weights(m.Names, coef, m.PValues, prep.State, transform, m.Diagnostics)
		w.Metadata["run_id"] = prep.RunID
		w.Metadata["seed"] = seed
		if err := report.SaveWeights(cfg.Output, w); err != nil {
			return err
		}
		if err := report.SaveState(cfg.Output, prep.State); err != nil {
			return err
		}
		logger.Info("model saved", log.PathKey, cfg.Output)
	}

	if cfg.Plot != "" {
		if err := report.PlotResiduals(cfg.Plot, m.Response, m.Fitted, m.Residuals); err != nil {
			return err
		}
		logger.Info("residual plot saved", log.PathKey, cfg.Plot)
	}
	return nil
}

func openInput(cfg *config.Config, stdin io.Reader) (io.Reader, func(), error) {
	if cfg.Stdin() {
		return stdin, func() {}, nil
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", cfg.Input)
	}
	return f, func() { _ = f.Close() }, nil
}
