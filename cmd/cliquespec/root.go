package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquespec/config"
)

// app is the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	logFormat   string
	logFile     string
	metricsAddr string

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cliquespec",
		Short:         "Clique-transition spectral invariants of small graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to a rotated file instead of stderr")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address during a search")

	root.AddCommand(
		newGraphCmd(a),
		newBlowupCmd(a),
		newUnblowupCmd(a),
		newStarCmd(a),
		newJoinCmd(a),
		newInvariantsCmd(a),
		newCliquesCmd(a),
		newSearchCmd(a),
		newArchiveCmd(a),
	)

	return root
}

// setup loads the configuration, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usageError("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || cfg.Log.Level == "" {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") || cfg.Log.Format == "" {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err = cfg.Validate(); err != nil {
		return usageError("%v", err)
	}
	a.cfg = cfg

	logger, closer, err := newLogger(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	a.logger = logger
	slog.SetDefault(logger)

	return nil
}

// teardown closes everything opened by setup and the commands, last first.
func (a *app) teardown() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil

	return first
}

// newLogger builds the slog handler from cfg. When cfg.File is set the
// returned closer owns the rotating file.
func newLogger(cfg config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      = stderr
		closer io.Closer
	)
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		w, closer = rotated, rotated
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), closer, nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), closer, nil
	}

	return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
}
