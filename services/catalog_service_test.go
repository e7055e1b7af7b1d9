package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"freshmart-backend/repository"
)

func TestHotSaleQuery(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewCatalogService(repo)

	_, err := svc.HotSale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, repository.ProductQuery{
		DiscountedOnly: true,
		Sort:           repository.SortDiscountDesc,
		Limit:          5,
	}, repo.lastQuery)
}

func TestFreshPicksQuery(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewCatalogService(repo)

	_, err := svc.FreshPicks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Vegetables", "Fresh Fruits"}, repo.lastQuery.Categories)
	assert.Equal(t, int64(6), repo.lastQuery.Limit)
}

func TestFrozenAndDrinksQuery(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewCatalogService(repo)

	_, err := svc.FrozenAndDrinks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Frozen Food", "Drinks & Juice"}, repo.lastQuery.Categories)
	assert.Equal(t, int64(6), repo.lastQuery.Limit)
}
