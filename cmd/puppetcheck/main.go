// Command puppetcheck reports how long ago the Puppet agent last completed a
// run, using the monitoring plugin exit codes.
package main

import (
	"os"

	"github.com/vshulcz/hostcheck/internal/adapters/summary/yamlfile"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var osExit = os.Exit

func main() {
	osExit(run(os.Args[1:], os.Stdout, os.Stderr, yamlfile.New()))
}
