// Package cli implements the modchart command-line interface.
//
// This package provides commands for rendering module dependency graphs as
// D2, Graphviz or Mermaid diagrams, writing them next to a README, and
// keeping the README's chart region up to date. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Print or write diagram source for a graph file
//   - generate: Write chart and legend files and update the README region
//   - readme: Embed existing artifact files in the README region
//   - legend: Print the markdown legend for a graph
//   - serve: Run the HTTP render service
//   - cache: Manage the local render cache
//
// # Configuration
//
// Settings come from modchart.toml (see --config). Command-line flags
// override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The root
// command stores the logger in the command context with log.WithContext;
// commands fetch it with log.FromContext.
//
// # Example
//
//	import "github.com/matzehuels/modchart/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w with "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered d2 (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
