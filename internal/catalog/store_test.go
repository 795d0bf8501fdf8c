package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar/internal/domain"
	apperrors "github.com/dealradar/dealradar/pkg/errors"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Phone", Category: "Smartphones"},
		{ID: "p2", Name: "Laptop", Category: "Laptops"},
		{ID: "p3", Name: "Other Phone", Category: "Smartphones"},
	}
}

func TestStore_ProductsReturnsCopyInOrder(t *testing.T) {
	s := NewStore(testProducts())

	got, err := s.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[2].ID)

	got[0].Name = "mutated"
	again, err := s.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Phone", again[0].Name)
}

func TestStore_ProductByID(t *testing.T) {
	s := NewStore(testProducts())

	p, err := s.Product(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
}

func TestStore_ProductNotFound(t *testing.T) {
	s := NewStore(testProducts())

	_, err := s.Product(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_CategoriesDistinctFirstOccurrenceOrder(t *testing.T) {
	s := NewStore(testProducts())

	got, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Smartphones", "Laptops"}, got)
}

func TestStore_Replace(t *testing.T) {
	s := NewStore(testProducts())

	s.Replace([]domain.Product{{ID: "new", Name: "New"}})

	assert.Equal(t, 1, s.Len())
	_, err := s.Product(context.Background(), "p1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	p, err := s.Product(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, "New", p.Name)
}

func TestStore_UpsertKeepsPosition(t *testing.T) {
	s := NewStore(testProducts())

	s.Upsert(domain.Product{ID: "p1", Name: "Phone v2", Category: "Smartphones"})

	got, err := s.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Phone v2", got[0].Name)
}

func TestStore_UpsertAppendsNew(t *testing.T) {
	s := NewStore(testProducts())

	s.Upsert(domain.Product{ID: "p4", Name: "Watch"})

	got, err := s.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "p4", got[3].ID)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(testProducts())

	s.Delete("p2")

	assert.Equal(t, 2, s.Len())
	_, err := s.Product(context.Background(), "p2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Remaining products keep catalog order and stay addressable.
	p, err := s.Product(context.Background(), "p3")
	require.NoError(t, err)
	assert.Equal(t, "Other Phone", p.Name)
}

func TestStore_DeleteUnknownIsNoop(t *testing.T) {
	s := NewStore(testProducts())
	s.Delete("nope")
	assert.Equal(t, 3, s.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[
		{"id": "p1", "name": "Phone", "category": "Smartphones",
		 "shops": [{"name": "shop", "price": 99.5, "currency": "USD"}]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	p, err := s.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Phone", p.Name)
	assert.Equal(t, 99.5, p.MinPrice())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	products := Seed()
	require.NotEmpty(t, products)

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Offers, "product %s has no offers", p.ID)
		assert.Positive(t, p.MinPrice(), "product %s", p.ID)

		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate product ID %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}
