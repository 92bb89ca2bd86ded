package config

import (
	"io"

	"github.com/vshulcz/hostcheck/internal/adapters/summary/yamlfile"
	"github.com/vshulcz/hostcheck/internal/domain"
	"github.com/vshulcz/hostcheck/internal/logging"
)

const (
	defaultWarnSeconds = 1200
	defaultCritSeconds = 2700
)

type PuppetConfig struct {
	LogLevel    string
	SummaryPath string
	Thresholds  domain.Thresholds
	ShowVersion bool
}

// LoadPuppetConfig parses args for the Puppet run checker.
// ENV > CLI > defaults
func LoadPuppetConfig(args []string, out io.Writer) (PuppetConfig, error) {
	if out == nil {
		out = io.Discard
	}

	fs := newFlagSet("puppetcheck", out)

	warnOpt := fs.Int64P("warn", "w", defaultWarnSeconds, "seconds after last Puppet run which issues a warning (env PUPPET_WARN)")
	critOpt := fs.Int64P("crit", "c", defaultCritSeconds, "seconds after last Puppet run which are critical (env PUPPET_CRIT)")
	summaryOpt := fs.StringP("summary", "s", yamlfile.DefaultPath, "path to last_run_summary.yaml (env PUPPET_SUMMARY)")
	levelOpt := fs.String("log-level", logging.DefaultLevel, "log level written to stderr (env LOG_LEVEL)")
	versionOpt := fs.BoolP("version", "v", false, "print build information and exit")

	if err := fs.Parse(args); err != nil {
		return PuppetConfig{}, err
	}
	if *versionOpt {
		return PuppetConfig{ShowVersion: true}, nil
	}

	warn, err := FromEnvOrFlagSeconds("PUPPET_WARN", "warn", *warnOpt)
	if err != nil {
		return PuppetConfig{}, err
	}
	crit, err := FromEnvOrFlagSeconds("PUPPET_CRIT", "crit", *critOpt)
	if err != nil {
		return PuppetConfig{}, err
	}

	level, err := logLevel(*levelOpt)
	if err != nil {
		return PuppetConfig{}, err
	}

	return PuppetConfig{
		LogLevel:    level,
		SummaryPath: FromEnvOrFlag("PUPPET_SUMMARY", *summaryOpt, yamlfile.DefaultPath),
		Thresholds:  domain.Thresholds{Warn: warn, Crit: crit},
	}, nil
}
