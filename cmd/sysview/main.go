// Command sysview shows local hardware and OS information, either as a
// split-pane terminal dashboard or as a one-shot report.
package main

import (
	"github.com/rileyhilliard/sysview/internal/cli"
)

// Stamped by the release build with -X main.version=..., -X main.commit=...
// and -X main.date=...; `sysview version` reports them.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
