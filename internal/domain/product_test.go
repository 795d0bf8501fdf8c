package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinPrice(t *testing.T) {
	p := Product{
		Offers: []Offer{
			{ShopName: "a", Price: 49.90, Currency: "USD"},
			{ShopName: "b", Price: 39.90, Currency: "USD"},
			{ShopName: "c", Price: 59.90, Currency: "USD"},
		},
	}
	assert.Equal(t, 39.90, p.MinPrice())
}

func TestMinPrice_NoOffers(t *testing.T) {
	assert.Equal(t, 0.0, Product{}.MinPrice())
}

func TestMinPrice_SingleOffer(t *testing.T) {
	p := Product{Offers: []Offer{{ShopName: "a", Price: 12.5}}}
	assert.Equal(t, 12.5, p.MinPrice())
}

func TestIsValidSort(t *testing.T) {
	assert.True(t, IsValidSort(SortRelevance))
	assert.True(t, IsValidSort(SortPriceAsc))
	assert.True(t, IsValidSort(SortPriceDesc))
	assert.False(t, IsValidSort(""))
	assert.False(t, IsValidSort("price_sideways"))
}
