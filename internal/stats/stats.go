// Package stats maintains the simple counters behind the admin dashboard:
// per-query search counts, queries that produced no results, and product
// view counts. All counters live behind one mutex so a stats snapshot is
// internally consistent.
package stats

import (
	"sort"
	"sync"
)

// QueryCount is a query paired with how often it was searched.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// ProductViews is a product ID paired with its view count.
type ProductViews struct {
	ProductID string `json:"productId"`
	Views     int    `json:"views"`
}

// Snapshot is a point-in-time view of the tracked counters. TotalSearches
// and NoResultsTotal come from the same tracker, so a rate derived from
// them refers to the same set of queries.
type Snapshot struct {
	TotalSearches  int            `json:"totalSearches"`
	NoResultsTotal int            `json:"noResultsTotal"`
	TopSearches    []QueryCount   `json:"topSearches"`
	NoResults      []QueryCount   `json:"noResultsQueries"`
	TopProducts    []ProductViews `json:"topProducts"`
}

// Tracker accumulates search and view counters. Safe for concurrent use.
type Tracker struct {
	mu            sync.Mutex
	totalSearches int
	searches      map[string]int
	noResults     map[string]int
	views         map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		searches:  make(map[string]int),
		noResults: make(map[string]int),
		views:     make(map[string]int),
	}
}

// RecordSearch counts one search for query. Searches that matched nothing
// are additionally counted as no-result queries. Empty queries (catalog
// browsing) are not counted.
func (t *Tracker) RecordSearch(query string, resultTotal int) {
	if query == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalSearches++
	t.searches[query]++
	if resultTotal == 0 {
		t.noResults[query]++
	}
}

// RecordView counts one product detail view.
func (t *Tracker) RecordView(productID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.views[productID]++
}

// TopSnapshot returns the current counters with each list sorted by count
// descending (ties in lexical query/ID order, so output is deterministic)
// and truncated to limit entries per list.
func (t *Tracker) TopSnapshot(limit int) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	noResultsTotal := 0
	for _, c := range t.noResults {
		noResultsTotal += c
	}

	return Snapshot{
		TotalSearches:  t.totalSearches,
		NoResultsTotal: noResultsTotal,
		TopSearches:    topQueries(t.searches, limit),
		NoResults:      topQueries(t.noResults, limit),
		TopProducts:    topViews(t.views, limit),
	}
}

func topQueries(counts map[string]int, limit int) []QueryCount {
	out := make([]QueryCount, 0, len(counts))
	for q, c := range counts {
		out = append(out, QueryCount{Query: q, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func topViews(counts map[string]int, limit int) []ProductViews {
	out := make([]ProductViews, 0, len(counts))
	for id, c := range counts {
		out = append(out, ProductViews{ProductID: id, Views: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
