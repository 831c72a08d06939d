package optimize

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
)

// ResultCache stores encoded candidates on disk so unchanged assets skip the
// codec on rebuilds. Entries are keyed by a digest of the kind, the options
// record, and the original content, so any change to either invalidates the
// entry. Files are sharded by the first two digest characters to prevent too
// many files in one directory.
type ResultCache struct {
	Root    string
	TTL     time.Duration
	MaxSize int64
}

// CacheOption configures the ResultCache.
type CacheOption func(*ResultCache)

// WithTTL sets the time-to-live for cached candidates.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *ResultCache) {
		c.TTL = ttl
	}
}

// WithMaxSize sets the maximum size of the cache in bytes.
func WithMaxSize(size int64) CacheOption {
	return func(c *ResultCache) {
		c.MaxSize = size
	}
}

// NewResultCache creates a ResultCache rooted at the given directory.
func NewResultCache(root string, opts ...CacheOption) *ResultCache {
	c := &ResultCache{
		Root:    root,
		MaxSize: 512 * 1024 * 1024, // Default 512MB
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheKey digests the inputs that determine an encode result.
func CacheKey(kind Kind, options EncodeOptions, content []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n", kind)
	// Options records are small; a sorted key=value dump keeps the digest
	// stable across map iteration order.
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v\n", k, options[k])
	}
	h.Write(content)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Find attempts to retrieve a cached candidate for the given key.
// Returns nil, nil for a cache miss (not an error).
func (c *ResultCache) Find(key string) ([]byte, error) {
	cachePath := c.buildPath(key)

	info, err := os.Stat(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // A cache miss is not an error.
		}
		return nil, err
	}

	if c.TTL > 0 && time.Since(info.ModTime()) > c.TTL {
		_ = os.Remove(cachePath) // Remove expired item
		return nil, nil          // Treat as cache miss
	}

	cached, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("error reading cache: %w", err)
	}
	return cached, nil
}

// Write stores an encoded candidate in the cache for the given key. The
// entry is staged in a temp file and renamed into place: duplicate assets in
// one batch share a key across concurrent tasks, and a concurrent Find must
// see either a miss or the complete bytes, never a partial write.
func (c *ResultCache) Write(key string, data []byte) error {
	cachePath := c.buildPath(key)
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(cachePath), "staged-*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	tmp.Sync()
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), cachePath)
}

func (c *ResultCache) buildPath(key string) string {
	return filepath.Join(c.Root, key[:2], key)
}

// pruningFile represents a file in the cache for pruning purposes.
type pruningFile struct {
	path    string
	size    int64
	modTime time.Time
}

// Prune enforces the MaxSize limit by removing oldest items.
func (c *ResultCache) Prune() error {
	if c.MaxSize <= 0 {
		return nil
	}

	var files []pruningFile
	var totalSize int64

	err := filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// If we can't read a directory/file, just skip it but don't fail the whole prune
			return nil
		}
		if !d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			size := info.Size()
			totalSize += size
			files = append(files, pruningFile{
				path:    path,
				size:    size,
				modTime: info.ModTime(),
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error walking cache dir: %w", err)
	}

	if totalSize <= c.MaxSize {
		slog.Debug("no need to prune",
			"root", filepath.Base(c.Root),
			"size", humanize.Bytes(uint64(totalSize)),
			"limit", humanize.Bytes(uint64(c.MaxSize)),
			"ttl", c.TTL,
		)
		return nil
	}

	// Sort by modification time, oldest first
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	for _, f := range files {
		if totalSize <= c.MaxSize {
			break
		}
		err := os.Remove(f.path)
		if err == nil {
			totalSize -= f.size
		}
	}

	return nil
}
