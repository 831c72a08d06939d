package optimize

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern decides whether an asset path is covered by an include or exclude
// rule. Three shapes are supported: glob strings, compiled regexps, and
// arbitrary predicate functions.
type Pattern interface {
	Matches(path string) bool
}

type globPattern string

func (g globPattern) Matches(path string) bool {
	ok, err := doublestar.Match(string(g), path)
	return err == nil && ok
}

// Glob returns a Pattern using doublestar glob syntax, e.g. "**/*.webp".
func Glob(pattern string) Pattern {
	return globPattern(pattern)
}

type regexPattern struct {
	re *regexp.Regexp
}

func (r regexPattern) Matches(path string) bool {
	return r.re.MatchString(path)
}

// Regex returns a Pattern backed by a compiled regular expression.
func Regex(re *regexp.Regexp) Pattern {
	return regexPattern{re: re}
}

// MatchFunc adapts a predicate function into a Pattern.
type MatchFunc func(path string) bool

func (f MatchFunc) Matches(path string) bool {
	return f(path)
}

// DefaultInclude matches the canonical raster + vector extension set.
var DefaultInclude = Regex(regexp.MustCompile(`(?i)\.(jpe?g|png|webp|gif|avif|svg)$`))

// Filter is built once per batch from the include/exclude configuration.
type Filter struct {
	include []Pattern
	exclude []Pattern
}

// NewFilter compiles the include/exclude rules. An empty include list falls
// back to DefaultInclude; an empty exclude list excludes nothing.
func NewFilter(include, exclude []Pattern) *Filter {
	if len(include) == 0 {
		include = []Pattern{DefaultInclude}
	}
	return &Filter{include: include, exclude: exclude}
}

// ShouldProcess reports whether the path matches any include rule and no
// exclude rule. Pure and deterministic.
func (f *Filter) ShouldProcess(path string) bool {
	return matchesAny(f.include, path) && !matchesAny(f.exclude, path)
}

func matchesAny(patterns []Pattern, path string) bool {
	for _, p := range patterns {
		if p.Matches(path) {
			return true
		}
	}
	return false
}
