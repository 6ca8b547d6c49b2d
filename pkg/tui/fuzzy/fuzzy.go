// ABOUTME: Fuzzy matching of a mistyped name against a set of registered names
// ABOUTME: Wraps sahilm/fuzzy; used for "did you mean" hints on failed lookups

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one candidate that matched the pattern.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find matches pattern against names, best score first. Ties keep the
// order of names.
func Find(pattern string, names []string) []Match {
	results := fuzzy.Find(pattern, names)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns the best match for pattern among names. An empty
// pattern, or one equal to a name, suggests nothing.
func Suggest(pattern string, names []string) (string, bool) {
	if pattern == "" {
		return "", false
	}
	m := Find(pattern, names)
	if len(m) == 0 || m[0].Str == pattern {
		return "", false
	}
	return m[0].Str, true
}
