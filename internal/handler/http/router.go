package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dealradar/dealradar/internal/catalog"
	"github.com/dealradar/dealradar/internal/service"
	"github.com/dealradar/dealradar/pkg/health"
	"github.com/dealradar/dealradar/pkg/httputil"
	"github.com/dealradar/dealradar/pkg/middleware"
)

// RouterConfig carries the knobs the router needs beyond its handlers.
type RouterConfig struct {
	RateLimitRPS   int
	RateLimitBurst int
}

// NewRouter creates a chi router with all routes registered.
func NewRouter(
	searchService *service.SearchService,
	store *catalog.Store,
	healthHandler *health.Handler,
	cfg RouterConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("dealradar"))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	searchHandler := NewSearchHandler(searchService, logger)
	catalogHandler := NewCatalogHandler(store, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))

			r.Get("/search", searchHandler.Search)
			r.Get("/search/suggest", searchHandler.Suggest)
			r.Get("/products/{id}", searchHandler.Product)
			r.Get("/trending", searchHandler.Trending)
			r.Get("/categories", searchHandler.Categories)
		})

		r.Get("/admin/stats", searchHandler.Stats)

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Put("/catalog", catalogHandler.Replace)
		})
	})

	return r
}

// ContentTypeJSON rejects body-carrying requests without a JSON content type.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct != "" && !strings.HasPrefix(ct, "application/json") {
			httputil.WriteErrorCode(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}
