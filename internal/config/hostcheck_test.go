package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshulcz/hostcheck/internal/adapters/probe/host"
	"github.com/vshulcz/hostcheck/internal/domain"
)

func clearHostcheckEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NET_INTERVAL", "CPU_INTERVAL", "PROBES", "MAPPER_DIR", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadHostcheckConfig(t *testing.T) {
	tests := []struct {
		env       map[string]string
		name      string
		wantError error
		args      []string
		want      HostcheckConfig
	}{
		{
			name: "defaults",
			want: HostcheckConfig{
				LogLevel:    "warn",
				MapperDir:   host.DefaultMapperDir,
				Probes:      host.DefaultOrder,
				NetInterval: time.Second,
				CPUInterval: time.Second,
			},
		},
		{
			name: "only flags",
			args: []string{"-i", "2s", "--cpu-interval", "500ms", "-p", "net,disk", "--mapper-dir", "/tmp/mapper", "--log-level", "debug"},
			want: HostcheckConfig{
				LogLevel:    "debug",
				MapperDir:   "/tmp/mapper",
				Probes:      []string{"net", "disk"},
				NetInterval: 2 * time.Second,
				CPUInterval: 500 * time.Millisecond,
			},
		},
		{
			name: "env override flags",
			args: []string{"-i", "2s", "-p", "net"},
			env: map[string]string{
				"NET_INTERVAL": "3",
				"PROBES":       "load, memory",
				"MAPPER_DIR":   "/env/mapper",
				"LOG_LEVEL":    "error",
			},
			want: HostcheckConfig{
				LogLevel:    "error",
				MapperDir:   "/env/mapper",
				Probes:      []string{"load", "memory"},
				NetInterval: 3 * time.Second,
				CPUInterval: time.Second,
			},
		},
		{
			name:      "unknown probe",
			args:      []string{"--probes", "disk,gpu"},
			wantError: domain.ErrUnknownProbe,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearHostcheckEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			got, err := LoadHostcheckConfig(tc.args, nil)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadHostcheckConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "zero net interval", args: []string{"-i", "0s"}},
		{name: "bad cpu env", env: map[string]string{"CPU_INTERVAL": "fast"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearHostcheckEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadHostcheckConfig(tc.args, nil)
			require.Error(t, err)
		})
	}
}

func TestLoadHostcheckConfig_HelpAndVersion(t *testing.T) {
	clearHostcheckEnv(t)

	var out bytes.Buffer
	_, err := LoadHostcheckConfig([]string{"--help"}, &out)
	require.True(t, errors.Is(err, pflag.ErrHelp))
	assert.Contains(t, out.String(), "--net-interval")

	cfg, err := LoadHostcheckConfig([]string{"-v"}, nil)
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}
