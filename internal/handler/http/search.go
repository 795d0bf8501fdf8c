package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dealradar/dealradar/internal/domain"
	"github.com/dealradar/dealradar/internal/service"
	"github.com/dealradar/dealradar/pkg/httputil"
)

// SearchHandler serves the public search, suggestion, and catalog browsing
// endpoints.
type SearchHandler struct {
	service *service.SearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a search HTTP handler.
func NewSearchHandler(svc *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: svc,
		logger:  logger,
	}
}

// Search handles GET /api/v1/search.
//
// Malformed or out-of-range page and pageSize values are coerced to their
// defaults, never rejected. Price bounds must parse as non-negative
// numbers when present.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &domain.SearchRequest{
		Query:    strings.TrimSpace(q.Get("query")),
		Category: strings.TrimSpace(q.Get("category")),
		SortBy:   q.Get("sort"),
		Page:     1,
		PageSize: 0, // service applies the default
	}

	minPrice, ok := parsePriceParam(w, q.Get("minPrice"), "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := parsePriceParam(w, q.Get("maxPrice"), "maxPrice")
	if !ok {
		return
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		httputil.WriteErrorCode(w, http.StatusBadRequest, "INVALID_PARAMETER", "minPrice must not exceed maxPrice")
		return
	}
	req.MinPrice = minPrice
	req.MaxPrice = maxPrice

	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			req.Page = page
		}
	}
	if v := q.Get("pageSize"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			req.PageSize = size
		}
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// Suggest handles GET /api/v1/search/suggest.
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	suggestions, err := h.service.Suggest(r.Context(), query)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

// Product handles GET /api/v1/products/{id}.
func (h *SearchHandler) Product(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.Product(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// Trending handles GET /api/v1/trending.
func (h *SearchHandler) Trending(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Trending(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, out)
}

// Categories handles GET /api/v1/categories.
func (h *SearchHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// Stats handles GET /api/v1/admin/stats.
func (h *SearchHandler) Stats(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, out)
}

// parsePriceParam parses an optional non-negative price bound. A write to
// w means the caller must return without further output.
func parsePriceParam(w http.ResponseWriter, raw, name string) (*float64, bool) {
	if raw == "" {
		return nil, true
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		httputil.WriteErrorCode(w, http.StatusBadRequest, "INVALID_PARAMETER", name+" must be a valid number")
		return nil, false
	}
	if price < 0 {
		httputil.WriteErrorCode(w, http.StatusBadRequest, "INVALID_PARAMETER", name+" must not be negative")
		return nil, false
	}

	return &price, true
}
