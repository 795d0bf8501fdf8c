package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dealradar/dealradar/internal/catalog"
	"github.com/dealradar/dealradar/internal/domain"
	"github.com/dealradar/dealradar/pkg/httputil"
	"github.com/dealradar/dealradar/pkg/validator"
)

// CatalogHandler is the write side of the catalog collaborator contract:
// it lets the external provider replace the snapshot in bulk.
type CatalogHandler struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewCatalogHandler creates a catalog HTTP handler.
func NewCatalogHandler(store *catalog.Store, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger,
	}
}

// catalogProduct mirrors domain.Product with validation tags for the
// replace request body.
type catalogProduct struct {
	ID             string            `json:"id" validate:"required"`
	Name           string            `json:"name" validate:"required,min=1"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	ImageURL       string            `json:"image"`
	Offers         []domain.Offer    `json:"shops" validate:"required,min=1"`
	Specifications map[string]string `json:"specifications"`
}

// ReplaceCatalogRequest is the JSON body for PUT /api/v1/catalog.
type ReplaceCatalogRequest struct {
	Products []catalogProduct `json:"products" validate:"required,min=1,max=1000,dive"`
}

// Replace handles PUT /api/v1/catalog. The submitted product order becomes
// the new catalog order, which the engine uses as tie order.
func (h *CatalogHandler) Replace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	var req ReplaceCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorCode(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body: "+err.Error())
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	products := make([]domain.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, domain.Product{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Category:       p.Category,
			ImageURL:       p.ImageURL,
			Offers:         p.Offers,
			Specifications: p.Specifications,
		})
	}

	h.store.Replace(products)

	h.logger.InfoContext(r.Context(), "catalog replaced",
		slog.Int("products", len(products)),
	)

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"status": "replaced", "products": len(products)})
}
