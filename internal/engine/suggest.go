package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/dealradar/dealradar/internal/domain"
)

const (
	// maxSuggestions bounds the merged suggestion list.
	maxSuggestions = 8

	// trendingFallback is how many trending terms are returned for queries
	// too short to match against.
	trendingFallback = 5

	// minSuggestQueryLen is the minimum query length (in runes) required
	// before history, trending, and catalog names are consulted.
	minSuggestQueryLen = 2
)

// Suggest merges query suggestions from three sources in strict priority
// order: recent query history, trending terms, then catalog product names.
// Matching is plain case-insensitive substring containment, deliberately
// cheaper and stricter than the fuzzy scoring used for full search.
//
// Queries shorter than two runes get the first trendingFallback trending
// terms, unfiltered. The merged list is deduplicated case-insensitively
// (first occurrence wins) and truncated to maxSuggestions.
func (e *Engine) Suggest(query string, history, trending []string, products []domain.Product) []string {
	if utf8.RuneCountInString(query) < minSuggestQueryLen {
		n := min(trendingFallback, len(trending))
		return append([]string{}, trending[:n]...)
	}

	q := strings.ToLower(query)

	merged := make([]string, 0, len(history)+len(trending))
	for _, h := range history {
		if strings.Contains(strings.ToLower(h), q) {
			merged = append(merged, h)
		}
	}
	for _, t := range trending {
		if strings.Contains(strings.ToLower(t), q) {
			merged = append(merged, t)
		}
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			merged = append(merged, p.Name)
		}
	}

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{}, len(merged))
	for _, s := range merged {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions
}
