// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -dir, -border, -deferred, -log-level, -explain, -version

package main

import (
	"flag"

	"github.com/mauromedda/winframe/internal/config"
)

type cliArgs struct {
	dir      string
	border   string
	deferred bool
	logLevel string
	explain  bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.dir, "dir", "", "Directory to browse (default: current directory)")
	flag.StringVar(&args.border, "border", "", "Border preset: default, normal, rounded, thick, double, block, hidden")
	flag.BoolVar(&args.deferred, "deferred", false, "Batch pane refreshes into one device flush per frame")
	flag.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&args.explain, "explain", false, "Print the effective configuration and exit")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// apply overlays flags that were set onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.border != "" {
		s.Border = a.border
	}
	if a.deferred {
		d := true
		s.Deferred = &d
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
}
