package domain

// Offer is a single retailer listing for a product.
type Offer struct {
	ShopName string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Logo     string  `json:"logo,omitempty"`
	VisitURL string  `json:"visitUrl,omitempty"`
}

// Product is a catalog entry with one or more retailer offers.
// Products are immutable for the duration of a search; the catalog
// provider owns them.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	ImageURL       string            `json:"image,omitempty"`
	Offers         []Offer           `json:"shops"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// MinPrice returns the lowest offer price, the product's representative
// price for filtering and sorting. Returns 0 when the product has no offers.
func (p Product) MinPrice() float64 {
	if len(p.Offers) == 0 {
		return 0
	}
	min := p.Offers[0].Price
	for _, o := range p.Offers[1:] {
		if o.Price < min {
			min = o.Price
		}
	}
	return min
}

// Sort options for search results.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// IsValidSort checks whether the given sort string is a known sort option.
// Unknown sort modes are treated as relevance by the engine, so this is
// informational rather than a validation gate.
func IsValidSort(sort string) bool {
	switch sort {
	case SortRelevance, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// SearchRequest holds all parameters for a search request. MinPrice and
// MaxPrice are optional bounds; nil means unbounded on that side.
type SearchRequest struct {
	Query    string   `json:"query"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	SortBy   string   `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

// SearchResult is one page of matches. Total counts all matches before
// pagination; HasMore reports whether later pages exist.
type SearchResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	HasMore  bool      `json:"hasMore"`
}
