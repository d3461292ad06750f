// Package cli implements the bigdecimal command line tool.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	configFlagName   = "config"
	scaleFlagName    = "scale"
	logLevelFlagName = "log-level"
	absFlagName      = "abs"
)

type app struct {
	cfg        Config
	log        *zap.Logger
	configPath string
}

// NewRootCmd returns the command tree of the tool.
// If log is nil, a logger is built from the configured log level.
func NewRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:   "bigdecimal",
		Short: "Exact arithmetic on arbitrary-precision decimals",
		Long: `Exact arithmetic on arbitrary-precision decimals.

Quotients are truncated to the configured scale, they are never rounded.
Negative operands must follow "--", for example:

	bigdecimal add -- -5 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, configFlagName, "", "Path to a TOML configuration file")
	flags.IntVar(&a.cfg.Scale, scaleFlagName, 0, "Number of digits after the decimal point kept by division")
	flags.StringVar(&a.cfg.LogLevel, logLevelFlagName, "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		a.newBinaryCmd("add", "Add two decimals", addOp, addAbsOp),
		a.newBinaryCmd("sub", "Subtract the second decimal from the first", subOp, subAbsOp),
		a.newBinaryCmd("mul", "Multiply two decimals", mulOp, mulAbsOp),
		a.newBinaryCmd("quo", "Divide the first decimal by the second", quoOp, quoAbsOp),
		a.newBinaryCmd("cmp", "Compare two decimals, printing -1, 0 or 1", cmpOp, cmpAbsOp),
		a.newShiftCmd(),
		a.newTruncCmd(),
		a.newShowCmd(),
		a.newEvalCmd(),
	)
	return rootCmd
}

// setup merges the configuration file, the defaults and the flags.
// Flags set on the command line take precedence over the file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := NewDefaultConfig()
	if a.configPath != "" {
		var err error
		cfg, err = LoadConfig(a.configPath)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed(scaleFlagName) {
		cfg.Scale = a.cfg.Scale
	}
	if flags.Changed(logLevelFlagName) {
		cfg.LogLevel = a.cfg.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		log, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.log = log
	}
	a.log.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("scale", cfg.Scale),
		zap.String("level", cfg.LogLevel),
	)
	return nil
}

// Execute runs the tool with the process arguments.
// Usually called by the `main.main()`.
func Execute() error {
	rootCmd := NewRootCmd(nil)
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		log, lerr := newLogger(defaultLogLevel)
		if lerr != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		name := rootCmd.Name()
		if cmd != nil {
			name = cmd.CommandPath()
		}
		log.Error("command failed", zap.String("command", name), zap.Error(err))
	}
	return err
}
