package optimize

import "time"

// EncodeOptions is an opaque options record handed to the codec for one
// raster kind. Well-known keys ("quality", "compression-level", "lossless",
// "speed") are interpreted by the codec; unknown keys are ignored there.
// An empty or absent record means assets of that kind are never re-encoded.
type EncodeOptions map[string]any

// Int reads an integer-valued option, tolerating the numeric types YAML
// decoding produces.
func (o EncodeOptions) Int(key string, fallback int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// Bool reads a boolean-valued option.
func (o EncodeOptions) Bool(key string, fallback bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return fallback
}

// Options configures one batch. The zero value is usable: every field falls
// back to its default in ApplyDefaults.
type Options struct {
	// Include/Exclude select candidate paths. A nil Include falls back to
	// DefaultInclude; a nil Exclude excludes nothing.
	Include []Pattern
	Exclude []Pattern

	// One options record per raster kind. A nil record keeps the built-in
	// default for that kind; a non-nil record replaces it wholesale, so an
	// explicitly empty record disables re-encoding for that kind.
	JPEG EncodeOptions
	PNG  EncodeOptions
	WebP EncodeOptions
	GIF  EncodeOptions
	AVIF EncodeOptions

	// LogStats controls whether the plugin prints the savings table after a
	// batch. nil means true.
	LogStats *bool

	// CacheDir, when non-empty, enables the on-disk encoded-result cache.
	// CacheTTL and CacheMaxSize tune it; zero values keep the cache defaults
	// (no expiry, 512MB cap).
	CacheDir     string
	CacheTTL     time.Duration
	CacheMaxSize int64
}

// DefaultOptions returns the built-in per-kind codec options. GIF defaults to
// an empty record, so GIF assets are left alone unless the caller opts in.
func DefaultOptions() Options {
	enabled := true
	return Options{
		JPEG:     EncodeOptions{"quality": 75},
		PNG:      EncodeOptions{"quality": 75, "compression-level": 6},
		WebP:     EncodeOptions{"quality": 75},
		GIF:      EncodeOptions{},
		AVIF:     EncodeOptions{"quality": 50},
		LogStats: &enabled,
	}
}

// ApplyDefaults merges o over DefaultOptions. A caller-supplied record
// replaces the entire default record for its kind; defaults are never merged
// key-by-key into an override.
func (o Options) ApplyDefaults() Options {
	merged := DefaultOptions()
	merged.Include = o.Include
	merged.Exclude = o.Exclude
	merged.CacheDir = o.CacheDir
	merged.CacheTTL = o.CacheTTL
	merged.CacheMaxSize = o.CacheMaxSize
	if o.JPEG != nil {
		merged.JPEG = o.JPEG
	}
	if o.PNG != nil {
		merged.PNG = o.PNG
	}
	if o.WebP != nil {
		merged.WebP = o.WebP
	}
	if o.GIF != nil {
		merged.GIF = o.GIF
	}
	if o.AVIF != nil {
		merged.AVIF = o.AVIF
	}
	if o.LogStats != nil {
		merged.LogStats = o.LogStats
	}
	return merged
}

// ForKind returns the options record for a raster kind, or nil for kinds the
// codec never sees.
func (o Options) ForKind(kind Kind) EncodeOptions {
	switch kind {
	case KindJPEG:
		return o.JPEG
	case KindPNG:
		return o.PNG
	case KindWebP:
		return o.WebP
	case KindGIF:
		return o.GIF
	case KindAVIF:
		return o.AVIF
	}
	return nil
}
