package controllers

import (
	"context"

	"freshmart-backend/models"
	"freshmart-backend/services"
)

// The controllers depend on narrow interfaces so tests can substitute
// in-memory fakes for the real services.

type CredentialValidator interface {
	Validate(username, password string) *models.AdminUser
}

type TokenIssuer interface {
	Issue(user *models.AdminUser) (string, error)
}

type ProductServiceAPI interface {
	Create(ctx context.Context, req services.ProductCreateRequest) (*models.Product, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Product, error)
	List(ctx context.Context, params services.ProductListParams) ([]models.Product, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context) (services.ProductCounts, error)
}

type CategoryServiceAPI interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, req services.CategoryCreateRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req services.CategoryUpdateRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CatalogServiceAPI interface {
	HotSale(ctx context.Context) ([]models.Product, error)
	FreshPicks(ctx context.Context) ([]models.Product, error)
	FrozenAndDrinks(ctx context.Context) ([]models.Product, error)
}
