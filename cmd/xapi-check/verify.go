package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/xapiverbs/internal/adapters/fixture"
	app "github.com/okian/xapiverbs/internal/app"
	"github.com/okian/xapiverbs/pkg/logger"
	"github.com/okian/xapiverbs/pkg/metrics"
)

const reportFilePermission = 0o600

var errChecksFailed = errors.New("verb checks failed")

func (c *cli) verifyCmd() *cobra.Command {
	var (
		samples, statements, report, format, metricsFile string
		failFast                                         bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Validate captured statements against the sample events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := c.cfg
			flags := cmd.Flags()
			if flags.Changed("samples") {
				cfg.SamplesPath = samples
			}
			if flags.Changed("statements") {
				cfg.StatementsPath = statements
			}
			if flags.Changed("format") {
				cfg.ReportFormat = format
			}
			if flags.Changed("fail-fast") {
				cfg.FailFast = failFast
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.StatementsPath == "" {
				return fmt.Errorf("statements path is required (--statements or statements_path)")
			}

			log := logger.Named("verify")
			svc := app.New(
				app.WithLogger(log),
				app.WithFailFast(cfg.FailFast),
				app.WithLoader(fixture.New(
					fixture.WithLogger(log),
					fixture.WithMaxLineSize(cfg.MaxLineBytes),
				)),
			)

			rep, runErr := svc.Run(ctx, cfg.SamplesPath, cfg.StatementsPath)
			if rep != nil {
				if err := emitReport(cmd.OutOrStdout(), rep, report, cfg.ReportFormat); err != nil {
					return err
				}
			}
			if cfg.MetricsFile != "" {
				if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
					log.Warn(ctx, "failed to write metrics textfile", logger.String("path", cfg.MetricsFile), logger.Error(err))
				}
			}
			if runErr != nil {
				return runErr
			}
			if !rep.OK() {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, rep.Failed, rep.Total)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&samples, "samples", "", "mapped events fixture (newline-delimited JSON)")
	f.StringVar(&statements, "statements", "", "captured xAPI statements (newline-delimited JSON)")
	f.StringVar(&report, "report", "", "write the full report to this file, or - for stdout")
	f.StringVar(&format, "format", "", "report format: json or yaml")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus textfile metrics here")
	f.BoolVar(&failFast, "fail-fast", false, "stop at the first event without a validator")
	return cmd
}

// emitReport prints a one-line summary plus failures to out, and the full
// report to dest when set.
func emitReport(out io.Writer, rep *app.Report, dest, format string) error {
	for _, r := range rep.Failures() {
		if r.Error != "" {
			fmt.Fprintf(out, "FAIL #%d %s: %s\n", r.Index, r.EventID, r.Error)
			continue
		}
		fmt.Fprintf(out, "FAIL #%d %s: expected %s, got %s\n", r.Index, r.EventID, r.Expected, r.Actual)
	}
	fmt.Fprintf(out, "run %s: %d checked, %d passed, %d failed\n", rep.RunID, rep.Total, rep.Passed, rep.Failed)

	switch dest {
	case "":
		return nil
	case "-":
		return app.WriteReport(out, rep, format)
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFilePermission)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := app.WriteReport(f, rep, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
