package config

import (
	"io"
	"time"

	"github.com/vshulcz/hostcheck/internal/adapters/probe/host"
	"github.com/vshulcz/hostcheck/internal/logging"
)

const (
	defaultNetInterval = time.Second
	defaultCPUInterval = time.Second
)

type HostcheckConfig struct {
	LogLevel    string
	MapperDir   string
	Probes      []string
	NetInterval time.Duration
	CPUInterval time.Duration
	ShowVersion bool
}

// LoadHostcheckConfig parses args for the host sampler.
// ENV > CLI > defaults
func LoadHostcheckConfig(args []string, out io.Writer) (HostcheckConfig, error) {
	if out == nil {
		out = io.Discard
	}

	fs := newFlagSet("hostcheck", out)

	netOpt := fs.DurationP("net-interval", "i", defaultNetInterval, "network throughput sampling window (env NET_INTERVAL)")
	cpuOpt := fs.Duration("cpu-interval", defaultCPUInterval, "CPU sampling window (env CPU_INTERVAL)")
	probesOpt := fs.StringSliceP("probes", "p", nil, "comma separated probes to run in order (env PROBES), default: all")
	mapperOpt := fs.String("mapper-dir", host.DefaultMapperDir, "device-mapper directory for disk I/O aliases (env MAPPER_DIR)")
	levelOpt := fs.String("log-level", logging.DefaultLevel, "log level written to stderr (env LOG_LEVEL)")
	versionOpt := fs.BoolP("version", "v", false, "print build information and exit")

	if err := fs.Parse(args); err != nil {
		return HostcheckConfig{}, err
	}
	if *versionOpt {
		return HostcheckConfig{ShowVersion: true}, nil
	}

	netInterval, err := FromEnvOrFlagDuration("NET_INTERVAL", *netOpt)
	if err != nil {
		return HostcheckConfig{}, err
	}
	cpuInterval, err := FromEnvOrFlagDuration("CPU_INTERVAL", *cpuOpt)
	if err != nil {
		return HostcheckConfig{}, err
	}

	probes := FromEnvOrFlagList("PROBES", *probesOpt, host.DefaultOrder)
	if err := validateProbes(probes, host.DefaultOrder); err != nil {
		return HostcheckConfig{}, err
	}

	level, err := logLevel(*levelOpt)
	if err != nil {
		return HostcheckConfig{}, err
	}

	return HostcheckConfig{
		LogLevel:    level,
		MapperDir:   FromEnvOrFlag("MAPPER_DIR", *mapperOpt, host.DefaultMapperDir),
		Probes:      probes,
		NetInterval: netInterval,
		CPUInterval: cpuInterval,
	}, nil
}
