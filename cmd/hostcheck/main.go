// Command hostcheck samples host resource counters and prints a single
// passive check line for a monitoring agent.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vshulcz/hostcheck/internal/adapters/probe/host"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var osExit = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, host.NewSystem())
	stop()
	osExit(code)
}
