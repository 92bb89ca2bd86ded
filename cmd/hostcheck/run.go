package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vshulcz/hostcheck/internal/adapters/output/passive"
	"github.com/vshulcz/hostcheck/internal/adapters/probe/host"
	"github.com/vshulcz/hostcheck/internal/config"
	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/logging"
	"github.com/vshulcz/hostcheck/internal/services/check"
	"github.com/vshulcz/hostcheck/pkg/util"
)

// run returns the process exit code. The report is always OK: probe
// failures only shrink it and are reported on stderr through the logger.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, src host.Source) int {
	cfg, err := config.LoadHostcheckConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return domain.OK.ExitCode()
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: Unable to parse arguments: %v\n", domain.Unknown, err)
		return domain.Unknown.ExitCode()
	}
	if cfg.ShowVersion {
		util.PrintBuildInfo(stdout, buildVersion, buildDate, buildCommit)
		return domain.OK.ExitCode()
	}

	logger, err := logging.NewTo(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to create logger: %v\n", domain.Unknown, err)
		return domain.Unknown.ExitCode()
	}
	defer func() { _ = logger.Sync() }()

	probes, err := host.Build(cfg.Probes, src, host.Options{
		Logger:      logger,
		MountFilter: host.MountFilterFor(runtime.GOOS),
		MapperDir:   cfg.MapperDir,
		NetInterval: cfg.NetInterval,
		CPUInterval: cfg.CPUInterval,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", domain.Unknown, err)
		return domain.Unknown.ExitCode()
	}

	runner := check.New(logger, probes...)
	runner.Observe(check.LogObserver(logger))

	report, outcomes := runner.Run(ctx)
	if down := outcomes.Unavailable(); len(down) > 0 {
		logger.Info("check finished with unavailable probes",
			zap.Strings("probes", down),
			zap.Int("metrics", len(report)),
			zap.Error(outcomes.Err()),
		)
	}

	if err := passive.Write(stdout, domain.OK.String(), report); err != nil {
		logger.Error("write report", zap.Error(err))
		return domain.Unknown.ExitCode()
	}
	return domain.OK.ExitCode()
}
