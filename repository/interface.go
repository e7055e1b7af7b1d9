package repository

import (
	"context"

	"freshmart-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort orders understood by ProductQuery.
const (
	SortNewest       = "newest"        // createdAt descending
	SortDiscountDesc = "discount_desc" // discount descending
)

// ProductQuery describes a product listing in plain Go types so the service
// layer stays free of driver types and adapters can be swapped or faked.
type ProductQuery struct {
	// Category filters by exact category name.
	Category string
	// Categories filters by membership in a fixed set (storefront sections).
	Categories []string
	// Search is a free-text query matched against name and description.
	Search string
	// DiscountedOnly keeps products with discount > 0.
	DiscountedOnly bool
	// InStockOnly keeps products currently in stock.
	InStockOnly bool
	Sort  string
	Limit int64
}

// ProductRepo defines the persistence operations used by the product and
// catalog services. Lookups return an error satisfying apperrors.IsNotFound
// when no document matches.
type ProductRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	// SlugExists reports whether any product other than exclude holds slug.
	// Pass primitive.NilObjectID to check against all products.
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Find(ctx context.Context, q ProductQuery) ([]models.Product, error)
	Count(ctx context.Context, q ProductQuery) (int64, error)
	Insert(ctx context.Context, product *models.Product) error
	// Update applies a partial $set patch and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error)
	// Delete removes the document and reports whether anything was removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

// CategoryRepo defines the persistence operations used for category management.
type CategoryRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	// ConflictExists reports whether a category other than exclude already
	// uses the given name or slug. Empty strings are skipped.
	ConflictExists(ctx context.Context, name, slug string, exclude primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
