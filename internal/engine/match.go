package engine

import (
	"strings"

	"github.com/dealradar/dealradar/internal/domain"
)

// substringScore is returned when the query appears verbatim in the text.
// It is deliberately above the subsequence ratio range [0,1] so that
// substring containment always outranks any subsequence match.
const substringScore = 2.0

// Score measures how well query matches text, case-insensitively.
//
// A contiguous substring match returns substringScore. Otherwise the score
// is the ordered-subsequence match ratio: query characters are consumed in
// order against a forward-only cursor over text, and the score is the
// fraction of query characters that found a position. The cursor never
// resets, so characters appearing out of order in text do not count.
//
// This is not an edit distance. The asymmetry is intentional and search
// results depend on it; callers must not substitute a symmetric metric.
func Score(query, text string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(text)

	if strings.Contains(t, q) {
		return substringScore
	}

	queryRunes := []rune(q)
	textRunes := []rune(t)

	matched := 0
	ti := 0
	for _, ch := range queryRunes {
		for ti < len(textRunes) && textRunes[ti] != ch {
			ti++
		}
		if ti < len(textRunes) {
			matched++
			ti++
		}
	}

	return float64(matched) / float64(len(queryRunes))
}

// Relevance scores a product against a query as the maximum Score over its
// name, description, and category. A product should surface when it matches
// strongly on any one field, not require matches on all of them.
//
// Callers short-circuit empty queries before scoring; an empty query means
// "keep everything" and never reaches this function through Search.
func Relevance(query string, p domain.Product) float64 {
	score := Score(query, p.Name)
	if s := Score(query, p.Description); s > score {
		score = s
	}
	if s := Score(query, p.Category); s > score {
		score = s
	}
	return score
}
