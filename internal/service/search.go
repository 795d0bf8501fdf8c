package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/dealradar/dealradar/internal/catalog"
	"github.com/dealradar/dealradar/internal/domain"
	"github.com/dealradar/dealradar/internal/engine"
	"github.com/dealradar/dealradar/internal/history"
	"github.com/dealradar/dealradar/internal/stats"
	"github.com/dealradar/dealradar/internal/trending"
	apperrors "github.com/dealradar/dealradar/pkg/errors"
)

// topStatsLimit bounds the per-list entries in the admin stats response.
const topStatsLimit = 5

// SearchService ties the pure search engine to its collaborators: the
// catalog provider, the query history, the trending-term source, and the
// stats counters. The engine itself stays stateless; all side effects of a
// search (history append, counters) happen here.
type SearchService struct {
	catalog    catalog.Provider
	engine     *engine.Engine
	history    *history.History
	trending   trending.Source
	stats      *stats.Tracker
	logger     *slog.Logger
	sampleSize int

	// rng drives the trending product sample. Seeded explicitly for
	// reproducible output; rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSearchService creates the service with all collaborators injected.
func NewSearchService(
	provider catalog.Provider,
	eng *engine.Engine,
	hist *history.History,
	trend trending.Source,
	tracker *stats.Tracker,
	sampleSize int,
	sampleSeed int64,
	logger *slog.Logger,
) *SearchService {
	return &SearchService{
		catalog:    provider,
		engine:     eng,
		history:    hist,
		trending:   trend,
		stats:      tracker,
		logger:     logger,
		sampleSize: sampleSize,
		rng:        rand.New(rand.NewSource(sampleSeed)),
	}
}

// Search normalizes the request, records the query, and runs the engine
// over the current catalog snapshot. Catalog unavailability propagates as
// an error; it is never reported as a legitimate zero-result search.
func (s *SearchService) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = engine.DefaultPageSize
	}
	if !domain.IsValidSort(req.SortBy) {
		req.SortBy = domain.SortRelevance
	}

	// Recorded before the catalog fetch: the user searched whether or not
	// the catalog could answer.
	s.history.Record(req.Query)

	products, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := s.engine.Search(products, req)
	s.stats.RecordSearch(req.Query, result.Total)

	s.logger.DebugContext(ctx, "search executed",
		slog.String("query", req.Query),
		slog.String("sort", req.SortBy),
		slog.Int("total", result.Total),
		slog.Int("page", result.Page),
	)

	return result, nil
}

// Suggest assembles autocomplete suggestions from history, trending terms,
// and catalog names.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]string, error) {
	terms, err := s.trending.Terms(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("trending source", err)
	}

	products, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.Suggest(query, s.history.Entries(), terms, products), nil
}

// Product looks up a single product by ID and counts the view. A missing
// ID is a NOT_FOUND error, distinct from an empty search result.
func (s *SearchService) Product(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.catalog.Product(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.Unavailable("catalog provider", err)
	}

	s.stats.RecordView(p.ID)
	return p, nil
}

// TrendingOutput is the trending endpoint payload: the current term list
// and a sample of catalog products.
type TrendingOutput struct {
	Searches []string         `json:"searches"`
	Products []domain.Product `json:"products"`
}

// Trending returns the trending terms and a deterministic random sample of
// products drawn with the seeded source.
func (s *SearchService) Trending(ctx context.Context) (*TrendingOutput, error) {
	terms, err := s.trending.Terms(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("trending source", err)
	}

	products, err := s.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	s.rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	s.rngMu.Unlock()

	n := s.sampleSize
	if n > len(products) {
		n = len(products)
	}

	return &TrendingOutput{
		Searches: terms,
		Products: products[:n],
	}, nil
}

// Categories returns the distinct catalog categories.
func (s *SearchService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("catalog provider", err)
	}
	return categories, nil
}

// ProductStat is a product annotated with its view count.
type ProductStat struct {
	domain.Product
	Views int `json:"views"`
}

// AdminStats is the admin dashboard payload. TotalSearches and
// NoResultsTotal are maintained by the same tracker under one lock, so
// rates derived from them refer to the same query set.
type AdminStats struct {
	TotalSearches    int                `json:"totalSearches"`
	NoResultsTotal   int                `json:"noResultsTotal"`
	TopSearches      []stats.QueryCount `json:"topSearches"`
	NoResultsQueries []stats.QueryCount `json:"noResultsQueries"`
	TopProducts      []ProductStat      `json:"topProducts"`
}

// Stats returns the current admin counters with the most-viewed products
// resolved against the catalog. Products that have since left the catalog
// are dropped from the view list.
func (s *SearchService) Stats(ctx context.Context) (*AdminStats, error) {
	snap := s.stats.TopSnapshot(topStatsLimit)

	out := &AdminStats{
		TotalSearches:    snap.TotalSearches,
		NoResultsTotal:   snap.NoResultsTotal,
		TopSearches:      snap.TopSearches,
		NoResultsQueries: snap.NoResults,
		TopProducts:      make([]ProductStat, 0, len(snap.TopProducts)),
	}

	for _, pv := range snap.TopProducts {
		p, err := s.catalog.Product(ctx, pv.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, apperrors.Unavailable("catalog provider", err)
		}
		out.TopProducts = append(out.TopProducts, ProductStat{Product: *p, Views: pv.Views})
	}

	return out, nil
}

// fetchCatalog fetches the snapshot, translating provider failures into a
// SERVICE_UNAVAILABLE error end to end.
func (s *SearchService) fetchCatalog(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("catalog provider", err)
	}
	return products, nil
}
