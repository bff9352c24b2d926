// Package tokenizer splits lines into fields.
//
// A Tokenizer is compiled once from a separator description and reused for
// every line of a pass. Literal separators use SIMD-friendly byte scanning,
// the default whitespace separator has a dedicated fast path, and arbitrary
// patterns run on the coregex engine. All paths preserve empty fields at the
// boundaries: a leading separator yields a leading empty field, and an empty
// line yields a single empty field. The one exception is the empty literal
// separator, which splits per rune and yields no fields for an empty line.
package tokenizer

import "strings"

type mode uint8

const (
	modeWhitespace mode = iota
	modeLiteral
	modePattern
)

const cacheSize = 64

// Shared per matching mode so repeated passes over the same input do not
// recompile their separator pattern.
var (
	posixCache = NewRegexCache(cacheSize)
	fastCache  = NewRegexCacheWithConfig(cacheSize, FastConfig())
)

func cacheFor(config RegexConfig) *RegexCache {
	if config.POSIX {
		return posixCache
	}
	return fastCache
}

// Tokenizer splits lines into fields according to a fixed separator.
// Construct with Whitespace, Literal or Pattern; the zero value is not usable.
type Tokenizer struct {
	mode mode
	sep  string // literal separator (modeLiteral)
	re   *Regex // compiled pattern (modePattern)
}

// Whitespace returns a Tokenizer that splits on runs of whitespace,
// equivalent to Pattern(`\s+`) but without the regex engine.
func Whitespace() *Tokenizer {
	return &Tokenizer{mode: modeWhitespace}
}

// Literal returns a Tokenizer that splits on every occurrence of sep.
// An empty sep splits after every UTF-8 rune.
func Literal(sep string) *Tokenizer {
	return &Tokenizer{mode: modeLiteral, sep: sep}
}

// Pattern returns a Tokenizer that splits on every match of expr.
func Pattern(expr string, config RegexConfig) (*Tokenizer, error) {
	re, err := cacheFor(config).Get(expr)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{mode: modePattern, re: re}, nil
}

// Split slices line into fields. The returned slice is freshly allocated;
// its elements share line's backing memory.
func (t *Tokenizer) Split(line string) []string {
	switch t.mode {
	case modeWhitespace:
		return splitSpaceRuns(line)
	case modeLiteral:
		switch len(t.sep) {
		case 0:
			return strings.Split(line, "")
		case 1:
			return splitSingleByte(line, t.sep[0])
		default:
			return strings.Split(line, t.sep)
		}
	default:
		return t.re.Split(line, -1)
	}
}

// spaceClass is a lookup table for the regex \s character class.
// Must stay in sync with the engine: \s is [\t\n\f\r ], which does
// not include \v.
var spaceClass = [256]bool{
	'\t': true,
	'\n': true,
	'\f': true,
	'\r': true,
	' ':  true,
}

// splitSpaceRuns splits line on runs of whitespace, producing exactly the
// pieces a \s+ regex split would: boundary empties included.
func splitSpaceRuns(line string) []string {
	n := len(line)
	fields := make([]string, 0, 8)
	start := 0
	i := 0
	for i < n {
		if !spaceClass[line[i]] {
			i++
			continue
		}
		fields = append(fields, line[start:i])
		i++
		for i < n && spaceClass[line[i]] {
			i++
		}
		start = i
	}
	return append(fields, line[start:])
}

// splitSingleByte splits line on a single byte.
// strings.IndexByte and strings.Count are SIMD-optimized on modern CPUs.
func splitSingleByte(line string, sep byte) []string {
	fields := make([]string, 0, strings.Count(line, string(sep))+1)
	for {
		idx := strings.IndexByte(line, sep)
		if idx < 0 {
			break
		}
		fields = append(fields, line[:idx])
		line = line[idx+1:]
	}
	return append(fields, line)
}
