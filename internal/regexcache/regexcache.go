// Package regexcache is a process-wide, lazily-populated cache of compiled
// regular expressions keyed by pattern string, mirroring the read-mostly
// memoization shape of a schema cache: a write-locked insert on miss, a
// read-locked lookup on hit, idempotent under races so concurrent misses on
// the same pattern just recompile harmlessly rather than corrupt anything.
package regexcache

import (
	"regexp"
	"sync"
)

var (
	mu    sync.RWMutex
	cache = make(map[string]*regexp.Regexp)
)

// Get compiles and memoizes pattern, or returns the memoized value from a
// prior call with the same pattern string. The corpus contains no
// backreferences, so Go's RE2-based regexp package (linear time in input
// length, no catastrophic backtracking) is a direct fit with no ecosystem
// substitute needed.
func Get(pattern string) (*regexp.Regexp, error) {
	mu.RLock()
	if re, ok := cache[pattern]; ok {
		mu.RUnlock()
		return re, nil
	}
	mu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	if existing, ok := cache[pattern]; ok {
		mu.Unlock()
		return existing, nil
	}
	cache[pattern] = re
	mu.Unlock()
	return re, nil
}

// MatchesFully reports whether pattern, anchored to match the entire
// subject, matches s. Validation patterns in the corpus are documented as
// matching the whole national significant number, never a substring. The
// anchored variant is memoized under its own key.
func MatchesFully(pattern, s string) bool {
	re, err := Get("^(?:" + pattern + ")$")
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// MatchesPrefix reports whether pattern matches s starting at position 0,
// without requiring the match to consume the whole subject. Leading-digits
// anchors (used as tie-break keys, not full validators) are matched this
// way, matching upstream's leadingDigitsPattern semantics.
func MatchesPrefix(pattern, s string) bool {
	re, err := Get(pattern)
	if err != nil {
		return false
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}
