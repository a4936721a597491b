package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/xapiverbs/internal/config"
	"github.com/okian/xapiverbs/pkg/logger"
)

// cli holds state shared between the root command and its subcommands.
type cli struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "xapi-check",
		Short:        "Check meeting event to xAPI verb mappings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "YAML config file (default: $XAPI_CONFIG)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(c.verifyCmd())
	root.AddCommand(c.eventsCmd())
	root.AddCommand(c.expectCmd())
	return root
}

// setup initializes logging and loads configuration (defaults -> file -> env).
func (c *cli) setup(cmd *cobra.Command) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
		return err
	}
	cfg, err := config.Load(cmd.Context(), c.cfgFile)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	return nil
}
