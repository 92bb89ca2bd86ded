package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/vshulcz/hostcheck/internal/config"
	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/logging"
	"github.com/vshulcz/hostcheck/internal/ports"
	"github.com/vshulcz/hostcheck/internal/services/puppet"
	"github.com/vshulcz/hostcheck/pkg/util"
)

func run(args []string, stdout, stderr io.Writer, reader ports.SummaryReader) int {
	cfg, err := config.LoadPuppetConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return domain.OK.ExitCode()
	}
	if err != nil {
		return report(stdout, domain.Verdict{
			Status:  domain.Unknown,
			Message: fmt.Sprintf("Unable to parse arguments: %v", err),
		})
	}
	if cfg.ShowVersion {
		util.PrintBuildInfo(stdout, buildVersion, buildDate, buildCommit)
		return domain.OK.ExitCode()
	}

	logger, err := logging.NewTo(stderr, cfg.LogLevel)
	if err != nil {
		return report(stdout, domain.Verdict{Status: domain.Unknown, Message: err.Error()})
	}
	defer func() { _ = logger.Sync() }()

	return report(stdout, puppet.NewChecker(reader, logger).Check(cfg.SummaryPath, cfg.Thresholds))
}

func report(w io.Writer, v domain.Verdict) int {
	fmt.Fprintln(w, v.Line())
	return v.Status.ExitCode()
}
