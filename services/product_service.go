package services

import (
	"context"
	"strings"
	"time"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/models"
	"freshmart-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// productPatchFields are the only keys an update may touch. Identity and
// bookkeeping fields are stripped before the patch reaches the database.
var productPatchFields = map[string]bool{
	"name":          true,
	"slug":          true,
	"price":         true,
	"originalPrice": true,
	"image":         true,
	"images":        true,
	"category":      true,
	"rating":        true,
	"inStock":       true,
	"discount":      true,
	"description":   true,
	"sku":           true,
	"tags":          true,
}

type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

// Create validates the request, derives the slug from the name when absent
// and rejects slug collisions before inserting.
func (s *ProductService) Create(ctx context.Context, req ProductCreateRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("Product name is required")
	}
	if req.Price == nil {
		return nil, apperrors.Validation("Product price is required")
	}
	if *req.Price < 0 {
		return nil, apperrors.Validation("Price cannot be negative")
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < 0 {
		return nil, apperrors.Validation("Original price cannot be negative")
	}
	if req.Image == "" {
		return nil, apperrors.Validation("Product image is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.Validation("Product category is required")
	}

	rating := 0.0
	if req.Rating != nil {
		rating = *req.Rating
		if rating < 0 || rating > 5 {
			return nil, apperrors.Validation("Rating must be between 0 and 5")
		}
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		return nil, apperrors.Validation("Discount must be between 0 and 100")
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, apperrors.Validation("Product slug is required")
	}

	exists, err := s.repo.SlugExists(ctx, slug, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("A product with this slug already exists")
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Slug:          slug,
		Price:         *req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Images:        images,
		Category:      strings.TrimSpace(req.Category),
		Rating:        rating,
		InStock:       inStock,
		Discount:      req.Discount,
		Description:   strings.TrimSpace(req.Description),
		SKU:           strings.TrimSpace(req.SKU),
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByIDOrSlug resolves a product by identifier first and falls back to a
// slug lookup when the identifier is not ObjectID-shaped or matches nothing.
// The fallback order is a compatibility shim for human-readable URLs.
func (s *ProductService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Product, error) {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		product, err := s.repo.FindByID(ctx, oid)
		if err == nil {
			return product, nil
		}
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

// List returns products newest first, optionally filtered by exact category,
// free-text search and a result cap.
func (s *ProductService) List(ctx context.Context, params ProductListParams) ([]models.Product, error) {
	return s.repo.Find(ctx, repository.ProductQuery{
		Category: params.Category,
		Search:   params.Search,
		Sort:     repository.SortNewest,
		Limit:    params.Limit,
	})
}

// Update applies a partial patch: only supplied fields are overwritten.
// Slug changes are re-checked for uniqueness against other products.
func (s *ProductService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Product not found")
	}

	patch := map[string]interface{}{}
	for k, v := range updates {
		if productPatchFields[k] {
			patch[k] = v
		}
	}
	if len(patch) == 0 {
		return nil, apperrors.Validation("No update fields provided")
	}
	if err := validateProductPatch(patch); err != nil {
		return nil, err
	}

	if raw, ok := patch["slug"]; ok {
		slug := strings.ToLower(strings.TrimSpace(raw.(string)))
		patch["slug"] = slug
		exists, err := s.repo.SlugExists(ctx, slug, oid)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Conflict("A product with this slug already exists")
		}
	}

	patch["updatedAt"] = time.Now().UTC()
	return s.repo.Update(ctx, oid, patch)
}

// Delete removes a product. Deleting a missing product is an error, not a
// silent success.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Product not found")
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("Product not found")
	}
	return nil
}

// Counts powers the admin dashboard summary.
func (s *ProductService) Counts(ctx context.Context) (ProductCounts, error) {
	total, err := s.repo.Count(ctx, repository.ProductQuery{})
	if err != nil {
		return ProductCounts{}, err
	}
	inStock, err := s.repo.Count(ctx, repository.ProductQuery{InStockOnly: true})
	if err != nil {
		return ProductCounts{}, err
	}
	discounted, err := s.repo.Count(ctx, repository.ProductQuery{DiscountedOnly: true})
	if err != nil {
		return ProductCounts{}, err
	}
	return ProductCounts{Total: total, InStock: inStock, Discounted: discounted}, nil
}

func validateProductPatch(patch map[string]interface{}) error {
	if v, ok := patch["name"]; ok {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return apperrors.Validation("Product name is required")
		}
	}
	if v, ok := patch["slug"]; ok {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return apperrors.Validation("Product slug is required")
		}
	}
	if v, ok := patch["price"]; ok {
		f, ok := v.(float64)
		if !ok || f < 0 {
			return apperrors.Validation("Price cannot be negative")
		}
	}
	if v, ok := patch["originalPrice"]; ok && v != nil {
		f, ok := v.(float64)
		if !ok || f < 0 {
			return apperrors.Validation("Original price cannot be negative")
		}
	}
	if v, ok := patch["rating"]; ok {
		f, ok := v.(float64)
		if !ok || f < 0 || f > 5 {
			return apperrors.Validation("Rating must be between 0 and 5")
		}
	}
	if v, ok := patch["discount"]; ok && v != nil {
		f, ok := v.(float64)
		if !ok || f < 0 || f > 100 {
			return apperrors.Validation("Discount must be between 0 and 100")
		}
	}
	return nil
}
