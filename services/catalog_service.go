package services

import (
	"context"

	"freshmart-backend/models"
	"freshmart-backend/repository"
)

// Storefront section policies. These are fixed by the storefront layout, not
// user-configurable.
const (
	hotSaleLimit = 5
	sectionLimit = 6
)

var (
	freshPickCategories      = []string{"Vegetables", "Fresh Fruits"}
	frozenAndDrinkCategories = []string{"Frozen Food", "Drinks & Juice"}
)

// CatalogService composes read-only storefront views on top of the product
// repository. It adds no invariants of its own.
type CatalogService struct {
	repo repository.ProductRepo
}

func NewCatalogService(repo repository.ProductRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

// HotSale returns discounted products, highest discount first, capped at 5.
func (s *CatalogService) HotSale(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, repository.ProductQuery{
		DiscountedOnly: true,
		Sort:           repository.SortDiscountDesc,
		Limit:          hotSaleLimit,
	})
}

// FreshPicks returns up to 6 products from the produce categories in natural
// retrieval order.
func (s *CatalogService) FreshPicks(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, repository.ProductQuery{
		Categories: freshPickCategories,
		Limit:      sectionLimit,
	})
}

// FrozenAndDrinks returns up to 6 products from the frozen food and drinks
// categories.
func (s *CatalogService) FrozenAndDrinks(ctx context.Context) ([]models.Product, error) {
	return s.repo.Find(ctx, repository.ProductQuery{
		Categories: frozenAndDrinkCategories,
		Limit:      sectionLimit,
	})
}
