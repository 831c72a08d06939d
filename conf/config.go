package conf

// Optional file-based configuration for imagepress.
// Must live in a package of its own so bundler hosts can load a config file
// without pulling in the codec or report packages.

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"chimbori.dev/imagepress/optimize"
)

// FileConfig mirrors the YAML shape of an imagepress config file. Absent
// per-kind records stay nil so the built-in defaults apply; an explicitly
// empty record (e.g. `gif: {}`) disables re-encoding for that kind.
type FileConfig struct {
	Include  []string       `yaml:"include"`
	Exclude  []string       `yaml:"exclude"`
	JPEG     map[string]any `yaml:"jpeg"`
	PNG      map[string]any `yaml:"png"`
	WebP     map[string]any `yaml:"webp"`
	GIF      map[string]any `yaml:"gif"`
	AVIF     map[string]any `yaml:"avif"`
	LogStats *bool          `yaml:"log-stats"`
	CacheDir string         `yaml:"cache-dir"`
	// CacheTTL is a Go duration string ("24h"); CacheMaxSize accepts
	// humanized sizes ("256 MB"). Both only apply when cache-dir is set.
	CacheTTL     string `yaml:"cache-ttl"`
	CacheMaxSize string `yaml:"cache-max-size"`
}

// ReadOptions parses a YAML config file into batch options. Pattern strings
// use doublestar glob syntax; strings delimited by slashes, e.g. `/\.webp$/`,
// compile as regular expressions instead.
func ReadOptions(configYmlFile string) (optimize.Options, error) {
	buf, err := os.ReadFile(configYmlFile)
	if err != nil {
		return optimize.Options{}, fmt.Errorf("Failed to read config file: %w", err)
	}

	c := &FileConfig{}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return optimize.Options{}, fmt.Errorf("Failed to parse config: %w", err)
	}

	return c.Options()
}

// Options converts the parsed file into optimize.Options.
func (c *FileConfig) Options() (optimize.Options, error) {
	include, err := compilePatterns(c.Include)
	if err != nil {
		return optimize.Options{}, fmt.Errorf("Invalid include pattern: %w", err)
	}
	exclude, err := compilePatterns(c.Exclude)
	if err != nil {
		return optimize.Options{}, fmt.Errorf("Invalid exclude pattern: %w", err)
	}

	opts := optimize.Options{
		Include:  include,
		Exclude:  exclude,
		JPEG:     optionsRecord(c.JPEG),
		PNG:      optionsRecord(c.PNG),
		WebP:     optionsRecord(c.WebP),
		GIF:      optionsRecord(c.GIF),
		AVIF:     optionsRecord(c.AVIF),
		LogStats: c.LogStats,
		CacheDir: c.CacheDir,
	}

	if c.CacheTTL != "" {
		ttl, err := time.ParseDuration(c.CacheTTL)
		if err != nil {
			return optimize.Options{}, fmt.Errorf("Invalid cache-ttl: %w", err)
		}
		opts.CacheTTL = ttl
	}
	if c.CacheMaxSize != "" {
		size, err := humanize.ParseBytes(c.CacheMaxSize)
		if err != nil {
			return optimize.Options{}, fmt.Errorf("Invalid cache-max-size: %w", err)
		}
		opts.CacheMaxSize = int64(size)
	}
	return opts, nil
}

func compilePatterns(patterns []string) ([]optimize.Pattern, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]optimize.Pattern, 0, len(patterns))
	for _, s := range patterns {
		if len(s) > 1 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
			re, err := regexp.Compile(s[1 : len(s)-1])
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, optimize.Regex(re))
			continue
		}
		compiled = append(compiled, optimize.Glob(s))
	}
	return compiled, nil
}

// optionsRecord preserves the nil-vs-empty distinction through the map
// conversion; a nil input must stay nil so defaults apply.
func optionsRecord(m map[string]any) optimize.EncodeOptions {
	if m == nil {
		return nil
	}
	return optimize.EncodeOptions(m)
}
