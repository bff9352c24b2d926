package tokenizer

import (
	"sync"

	"github.com/coregx/coregex"
)

// RegexConfig controls pattern matching behavior.
type RegexConfig struct {
	// POSIX enables leftmost-longest matching (POSIX ERE semantics).
	// When false, uses leftmost-first matching (faster, Perl-like).
	// Default: true.
	POSIX bool
}

// DefaultConfig returns the default POSIX-compliant configuration.
func DefaultConfig() RegexConfig {
	return RegexConfig{POSIX: true}
}

// FastConfig returns a performance-optimized configuration.
// Disables POSIX leftmost-longest matching for faster execution.
func FastConfig() RegexConfig {
	return RegexConfig{POSIX: false}
}

// Regex wraps a compiled coregex pattern used as a field separator.
type Regex struct {
	pattern string
	re      *coregex.Regexp
	posix   bool
}

// Compile creates a new Regex from pattern with default POSIX config.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig creates a new Regex with specified configuration.
// When config.POSIX is true, uses leftmost-longest matching (slower but
// POSIX compliant). When false, uses leftmost-first matching.
func CompileWithConfig(pattern string, config RegexConfig) (*Regex, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if config.POSIX {
		re.Longest()
	}
	return &Regex{pattern: pattern, re: re, posix: config.POSIX}, nil
}

// Pattern returns the original pattern string.
func (r *Regex) Pattern() string {
	return r.pattern
}

// IsPOSIX returns true if this regex uses POSIX leftmost-longest matching.
func (r *Regex) IsPOSIX() bool {
	return r.posix
}

// MatchString reports whether s contains any match.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// Split slices s into substrings separated by matches.
// Empty pieces between adjacent matches and at the boundaries are kept.
func (r *Regex) Split(s string, n int) []string {
	return r.re.Split(s, n)
}

// RegexCache provides thread-safe compiled regex caching with FIFO eviction.
// Lock-free reads via sync.Map; separator patterns recur across passes, so
// a small FIFO is enough.
type RegexCache struct {
	cache   sync.Map   // map[string]*Regex - lock-free reads
	orderMu sync.Mutex // Protects order slice for eviction
	order   []string   // FIFO order for eviction
	size    int32      // Approximate size (not atomic - orderMu protects it)
	maxSize int
	config  RegexConfig // Configuration for compiled regexes
}

// NewRegexCache creates a cache with specified max size and default POSIX config.
func NewRegexCache(maxSize int) *RegexCache {
	return NewRegexCacheWithConfig(maxSize, DefaultConfig())
}

// NewRegexCacheWithConfig creates a cache with specified max size and config.
func NewRegexCacheWithConfig(maxSize int, config RegexConfig) *RegexCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &RegexCache{
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		config:  config,
	}
}

// Get returns a compiled regex, compiling and caching if needed.
// Lock-free on cache hit.
func (c *RegexCache) Get(pattern string) (*Regex, error) {
	if re, ok := c.cache.Load(pattern); ok {
		return re.(*Regex), nil
	}

	re, err := CompileWithConfig(pattern, c.config)
	if err != nil {
		return nil, err
	}

	// Another goroutine might have stored it already
	if existing, loaded := c.cache.LoadOrStore(pattern, re); loaded {
		return existing.(*Regex), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, pattern)
	c.size++

	// Evict oldest if at capacity
	for int(c.size) > c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
		c.size--
	}
	c.orderMu.Unlock()

	return re, nil
}

// Len returns the approximate number of cached regexes.
func (c *RegexCache) Len() int {
	c.orderMu.Lock()
	n := int(c.size)
	c.orderMu.Unlock()
	return n
}

// Clear removes all cached regexes.
func (c *RegexCache) Clear() {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	for _, p := range c.order {
		c.cache.Delete(p)
	}
	c.order = c.order[:0]
	c.size = 0
}
