// Package optimize implements the post-build image optimization pass: it
// selects emitted assets by path pattern, classifies them by extension,
// re-encodes eligible raster images through a codec, and replaces asset
// content in place only when the result is strictly smaller. A per-batch
// ledger records every outcome for reporting.
package optimize

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lmittmann/tint"
)

// Codec re-encodes raw image bytes of a declared format into compressed bytes
// of the same format, governed by a format-specific options record. The
// options record handed to Encode is always non-empty; the orchestrator
// short-circuits empty records before reaching the codec.
type Codec interface {
	Encode(content []byte, kind Kind, options EncodeOptions) ([]byte, error)
}

// Optimizer drives one batch over an emitted bundle.
type Optimizer struct {
	opts   Options
	codec  Codec
	filter *Filter
	cache  *ResultCache
}

// New builds an Optimizer from options and a codec. Options are merged over
// the built-in defaults; the filter is compiled once for the batch.
func New(opts Options, codec Codec) *Optimizer {
	merged := opts.ApplyDefaults()
	o := &Optimizer{
		opts:   merged,
		codec:  codec,
		filter: NewFilter(merged.Include, merged.Exclude),
	}
	if merged.CacheDir != "" {
		var cacheOpts []CacheOption
		if merged.CacheTTL > 0 {
			cacheOpts = append(cacheOpts, WithTTL(merged.CacheTTL))
		}
		if merged.CacheMaxSize > 0 {
			cacheOpts = append(cacheOpts, WithMaxSize(merged.CacheMaxSize))
		}
		o.cache = NewResultCache(merged.CacheDir, cacheOpts...)
	}
	return o
}

// PruneCache enforces the result cache's size limit, removing oldest entries
// first. A no-op when no cache is configured; callers run it after a batch.
func (o *Optimizer) PruneCache() error {
	if o.cache == nil {
		return nil
	}
	return o.cache.Prune()
}

// Options returns the merged batch options.
func (o *Optimizer) Options() Options {
	return o.opts
}

// Run processes every candidate asset in the bundle concurrently and returns
// the completed ledger once all per-asset tasks have reached a terminal
// state. A failure in one task never aborts its siblings or the batch; Run
// itself cannot fail. Accepted candidates are written back into the bundle's
// Asset.Source fields, the only mutation Run performs.
func (o *Optimizer) Run(bundle Bundle) Ledger {
	type candidate struct {
		path  string
		asset *Asset
	}

	var candidates []candidate
	for path, asset := range bundle {
		if asset.Type != TypeAsset {
			continue
		}
		if _, _, ok := asset.sourceBytes(); !ok {
			slog.Warn("skipping asset with unrecognized content representation",
				"path", path,
				"type", fmt.Sprintf("%T", asset.Source))
			continue
		}
		if !o.filter.ShouldProcess(path) {
			continue
		}
		candidates = append(candidates, candidate{path: path, asset: asset})
	}

	// Each task owns one slot, so results need no lock; the ledger map is
	// assembled after the join.
	results := make([]Entry, len(candidates))
	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, path string, asset *Asset) {
			defer wg.Done()
			results[i] = o.process(path, asset)
		}(i, c.path, c.asset)
	}
	wg.Wait()

	ledger := make(Ledger, len(results))
	for _, entry := range results {
		ledger[entry.Path] = entry
	}
	return ledger
}

// process takes one asset from classified to terminal. Panics from the codec
// are contained here and become a StatusError entry.
func (o *Optimizer) process(path string, asset *Asset) (entry Entry) {
	content, textual, _ := asset.sourceBytes()
	entry = Entry{
		Path:         path,
		OriginalSize: len(content),
		FinalSize:    len(content),
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while optimizing asset", "path", path, "panic", r)
			entry.FinalSize = entry.OriginalSize
			entry.Status = StatusError
		}
	}()

	kind := Classify(path)
	switch {
	case kind == KindSVG:
		// Vectors pass through untouched; textual SVG needs no conversion.
		entry.Status = StatusSkippedVector
		return
	case textual:
		slog.Warn("string payload for a non-vector image is unexpected",
			"path", path, "kind", kind)
		entry.Status = StatusSkippedText
		return
	case kind == KindOther:
		entry.Status = StatusSkippedUnsupported
		return
	}

	options := o.opts.ForKind(kind)
	if len(options) == 0 {
		entry.Status = StatusSkippedNoOptions
		return
	}

	candidate, err := o.encode(path, content, kind, options)
	if err != nil {
		slog.Error("failed to re-encode asset", tint.Err(err),
			"path", path, "kind", kind)
		entry.Status = StatusError
		return
	}

	accepted, finalSize, status := Decide(content, candidate)
	entry.FinalSize = finalSize
	entry.Status = status
	if status == StatusCompressed {
		asset.Source = accepted
	}
	slog.Debug("asset optimized",
		"path", path,
		"kind", kind,
		"original", entry.OriginalSize,
		"final", entry.FinalSize,
		"status", entry.Status)
	return
}

// encode invokes the codec, consulting the result cache first when one is
// configured. Cache read/write failures degrade to a plain codec call.
func (o *Optimizer) encode(path string, content []byte, kind Kind, options EncodeOptions) ([]byte, error) {
	if o.cache == nil {
		return o.codec.Encode(content, kind, options)
	}

	key := CacheKey(kind, options, content)
	if cached, err := o.cache.Find(key); err != nil {
		slog.Warn("result cache read failed", tint.Err(err), "path", path)
	} else if cached != nil {
		return cached, nil
	}

	candidate, err := o.codec.Encode(content, kind, options)
	if err != nil {
		return nil, err
	}
	if err := o.cache.Write(key, candidate); err != nil {
		slog.Warn("result cache write failed", tint.Err(err), "path", path)
	}
	return candidate, nil
}
