// Package catalog holds the in-memory product snapshot the search engine
// reads. The snapshot is supplied by an external collaborator: loaded from
// a JSON file at startup, replaced wholesale over HTTP, or kept current by
// catalog change events.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dealradar/dealradar/internal/domain"
	apperrors "github.com/dealradar/dealradar/pkg/errors"
)

// Provider is the catalog collaborator contract the service layer depends
// on. Implementations must preserve a stable product order across calls:
// the engine uses it as tie order for equal-score results.
type Provider interface {
	// Products returns the full current snapshot.
	Products(ctx context.Context) ([]domain.Product, error)

	// Product looks up a single product by ID.
	Product(ctx context.Context, id string) (*domain.Product, error)

	// Categories returns the distinct categories in catalog order.
	Categories(ctx context.Context) ([]string, error)
}

// Store is the in-memory Provider implementation. Thread-safe; the ordered
// slice is the source of truth and the ID index is derived from it.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
}

// NewStore creates a store holding the given snapshot.
func NewStore(products []domain.Product) *Store {
	s := &Store{}
	s.reindex(products)
	return s
}

// Load creates a store from a JSON file containing an array of products.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return NewStore(products), nil
}

// Products returns a copy of the snapshot in catalog order.
func (s *Store) Products(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Product returns the product with the given ID, or a NOT_FOUND error.
// A missing product is a distinct outcome from an empty search result.
func (s *Store) Product(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := s.products[i]
	return &p, nil
}

// Categories returns the distinct product categories, first occurrence
// order.
func (s *Store) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	categories := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// Replace swaps in a whole new snapshot.
func (s *Store) Replace(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reindex(products)
}

// Upsert inserts a product or updates it in place. Existing products keep
// their catalog position so tie order stays stable across updates.
func (s *Store) Upsert(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.byID[p.ID]; ok {
		s.products[i] = p
		return
	}
	s.byID[p.ID] = len(s.products)
	s.products = append(s.products, p)
}

// Delete removes a product by ID. Unknown IDs are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return
	}
	s.reindex(append(s.products[:i:i], s.products[i+1:]...))
}

// Len returns the number of products in the snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// reindex replaces the slice and rebuilds the ID index. Caller holds the
// write lock (or exclusive ownership during construction).
func (s *Store) reindex(products []domain.Product) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	s.products = products
	s.byID = byID
}
