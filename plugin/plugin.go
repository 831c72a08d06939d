// Package plugin binds the optimizer, the default codec, and the reporter
// into the lifecycle hook a bundler host calls after emitting its bundle.
package plugin

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"chimbori.dev/imagepress/codec"
	"chimbori.dev/imagepress/optimize"
	"chimbori.dev/imagepress/report"
)

// Plugin is the bundler-facing surface. One Plugin may serve many builds;
// each GenerateBundle call runs an independent batch.
type Plugin struct {
	opts optimize.Options
}

// New creates the plugin with the given options merged over the defaults.
func New(opts optimize.Options) *Plugin {
	return &Plugin{opts: opts}
}

// Name identifies the plugin to the bundler host.
func (p *Plugin) Name() string {
	return "imagepress"
}

// GenerateBundle optimizes every eligible asset in the emitted bundle in
// place and returns the batch ledger. It never fails: per-asset errors are
// recorded in the ledger and logged, matching the bundler expectation that an
// optimization pass must not break the build.
func (p *Plugin) GenerateBundle(bundle optimize.Bundle) optimize.Ledger {
	optimizer := optimize.New(p.opts, codec.New())
	ledger := optimizer.Run(bundle)

	if logStats := optimizer.Options().LogStats; logStats == nil || *logStats {
		report.Print(ledger)
	}

	if err := optimizer.PruneCache(); err != nil {
		slog.Warn("result cache prune failed", tint.Err(err))
	}
	return ledger
}

// SetupLogging installs a tinted slog handler on stderr. Bundler hosts that
// configure slog themselves can skip this.
func SetupLogging(debug bool) {
	opts := &tint.Options{TimeFormat: "2006-01-02 15:04:05.000"}
	if debug {
		opts.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, opts)))
}
