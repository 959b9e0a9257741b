// Package commands implements the copent CLI subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/copent/config"
	"github.com/katalvlaran/copent/internal/observability"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagOutput   = "output"

	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// ErrUnknownOutput is returned for an --output value other than table, json or yaml.
var ErrUnknownOutput = errors.New("output must be table, json or yaml")

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	output     string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the copent command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "copent",
		Short: "Copula entropy estimation on synthetic workloads",
		Long: `copent estimates copula entropy and the statistics built on it.

Commands:
  ce     copula entropy of a correlated Gaussian pair
  ci     conditional independence on a z → (x, y) chain
  te     transfer entropy between coupled autoregressive series
  mvnt   multivariate normality statistic
  tst    two-sample statistic on mean-shifted samples
  cpd    single change point between two Gaussian blocks
  mcpd   multiple change points across Gaussian blocks`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, flagConfig, "c", "", "config file (default ./copent.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, flagLogLevel, "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&a.output, flagOutput, "o", outputTable, "output format: table, json, yaml")

	rootCmd.AddCommand(
		newCECommand(a),
		newCICommand(a),
		newTECommand(a),
		newMVNTCommand(a),
		newTSTCommand(a),
		newCPDCommand(a),
		newMCPDCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// init loads configuration and builds the logger.
func (a *app) init(stderr io.Writer) error {
	switch a.output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, a.output)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = observability.NewLogger(level, cfg.Logging.Format, stderr)

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "copent %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
