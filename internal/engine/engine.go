package engine

import (
	"sort"
	"strings"

	"github.com/dealradar/dealradar/internal/domain"
)

// minRelevance is the score below which a subsequence match is considered
// noise and dropped. The boundary is inclusive: a product scoring exactly
// minRelevance is retained.
const minRelevance = 0.3

// DefaultPageSize is used when the request does not specify a page size.
const DefaultPageSize = 12

// maxPageSize caps a single page to keep responses bounded.
const maxPageSize = 100

// scoredProduct pairs a product with its relevance score so the score is
// computed once per product and reused by the ranking step.
type scoredProduct struct {
	product domain.Product
	score   float64
}

// Engine filters, ranks, and paginates catalog snapshots. It holds no
// state; every call is a pure, synchronous pass over its inputs.
type Engine struct{}

// New creates a search engine.
func New() *Engine {
	return &Engine{}
}

// Search runs a request against the given catalog snapshot. The snapshot's
// order defines tie order: two products with equal scores (or equal prices)
// never swap between requests.
func (e *Engine) Search(products []domain.Product, req *domain.SearchRequest) *domain.SearchResult {
	matched := e.filter(products, req)
	e.rank(matched, req)
	return e.paginate(matched, req.Page, req.PageSize)
}

// filter applies relevance, category, and price predicates in catalog order.
// An empty query skips relevance scoring entirely and keeps every product;
// category and price filters still apply.
func (e *Engine) filter(products []domain.Product, req *domain.SearchRequest) []scoredProduct {
	matched := make([]scoredProduct, 0, len(products))

	for _, p := range products {
		var score float64
		if req.Query != "" {
			score = Relevance(req.Query, p)
			if score < minRelevance {
				continue
			}
		}

		if req.Category != "" && !strings.EqualFold(p.Category, req.Category) {
			continue
		}

		price := p.MinPrice()
		if req.MinPrice != nil && price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && price > *req.MaxPrice {
			continue
		}

		matched = append(matched, scoredProduct{product: p, score: score})
	}

	return matched
}

// rank orders matches in place. Sorting is stable so that ties retain
// catalog order; that is a correctness property of the result contract,
// not an optimization.
func (e *Engine) rank(matched []scoredProduct, req *domain.SearchRequest) {
	switch req.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].product.MinPrice() < matched[j].product.MinPrice()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].product.MinPrice() > matched[j].product.MinPrice()
		})
	default:
		// Relevance, and any unrecognized sort mode. An empty query carries
		// no scores, so catalog order is preserved as-is.
		if req.Query == "" {
			return
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].score > matched[j].score
		})
	}
}

// paginate slices the ordered matches into the requested page. Out-of-range
// pages are valid and yield an empty page, never an error.
func (e *Engine) paginate(matched []scoredProduct, page, pageSize int) *domain.SearchResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(matched)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	products := make([]domain.Product, 0, end-start)
	for _, m := range matched[start:end] {
		products = append(products, m.product)
	}

	return &domain.SearchResult{
		Products: products,
		Total:    total,
		Page:     page,
		HasMore:  (page-1)*pageSize+pageSize < total,
	}
}
