package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/models"
	"freshmart-backend/repository"
)

// fakeProductRepo is an in-memory ProductRepo for service tests.
type fakeProductRepo struct {
	products  []*models.Product
	lastQuery repository.ProductQuery
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("Product not found")
}

func (f *fakeProductRepo) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("Product not found")
}

func (f *fakeProductRepo) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slug && p.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Find(ctx context.Context, q repository.ProductQuery) ([]models.Product, error) {
	f.lastQuery = q
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, q repository.ProductQuery) (int64, error) {
	var n int64
	for _, p := range f.products {
		if q.InStockOnly && !p.InStock {
			continue
		}
		if q.DiscountedOnly && (p.Discount == nil || *p.Discount <= 0) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeProductRepo) Insert(ctx context.Context, product *models.Product) error {
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			if v, ok := updates["name"].(string); ok {
				p.Name = v
			}
			if v, ok := updates["slug"].(string); ok {
				p.Slug = v
			}
			if v, ok := updates["price"].(float64); ok {
				p.Price = v
			}
			return p, nil
		}
	}
	return nil, apperrors.NotFound("Product not found")
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) EnsureIndexes(ctx context.Context) error { return nil }

func float64Ptr(v float64) *float64 { return &v }

func validCreateRequest() ProductCreateRequest {
	return ProductCreateRequest{
		Name:     "Fresh  Mangoes!!",
		Price:    float64Ptr(4.99),
		Image:    "https://cdn.example.com/mango.jpg",
		Category: "Fresh Fruits",
	}
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	product, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "fresh-mangoes", product.Slug)
	assert.Equal(t, "Fresh  Mangoes!!", product.Name)
	assert.True(t, product.InStock)
	assert.NotNil(t, product.Images)
	assert.NotNil(t, product.Tags)
	assert.False(t, product.ID.IsZero())
	assert.Len(t, repo.products, 1)
}

func TestCreateLowercasesExplicitSlug(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	req := validCreateRequest()
	req.Slug = "Mango-Premium"
	product, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "mango-premium", product.Slug)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.True(t, apperrors.IsConflict(err))
	assert.Len(t, repo.products, 1)
}

func TestCreateValidation(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	cases := []struct {
		name   string
		mutate func(*ProductCreateRequest)
	}{
		{"missing name", func(r *ProductCreateRequest) { r.Name = "  " }},
		{"missing price", func(r *ProductCreateRequest) { r.Price = nil }},
		{"negative price", func(r *ProductCreateRequest) { r.Price = float64Ptr(-1) }},
		{"negative original price", func(r *ProductCreateRequest) { r.OriginalPrice = float64Ptr(-5) }},
		{"missing image", func(r *ProductCreateRequest) { r.Image = "" }},
		{"missing category", func(r *ProductCreateRequest) { r.Category = " " }},
		{"rating above range", func(r *ProductCreateRequest) { r.Rating = float64Ptr(5.5) }},
		{"discount above range", func(r *ProductCreateRequest) { r.Discount = float64Ptr(101) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			assert.True(t, apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func TestGetByIDOrSlugFallsBackToSlug(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	byID, err := svc.GetByIDOrSlug(context.Background(), created.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := svc.GetByIDOrSlug(context.Background(), "fresh-mangoes")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	// A valid but unknown ObjectID falls through to the slug lookup.
	_, err = svc.GetByIDOrSlug(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListQueriesNewestFirst(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, err := svc.List(context.Background(), ProductListParams{Category: "Drinks & Juice", Search: "cola", Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, repository.ProductQuery{
		Category: "Drinks & Juice",
		Search:   "cola",
		Sort:     repository.SortNewest,
		Limit:    10,
	}, repo.lastQuery)
}

func TestUpdateWhitelistsPatchFields(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), map[string]interface{}{
		"name":      "Alphonso Mangoes",
		"_id":       primitive.NewObjectID(),
		"createdAt": "2020-01-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Alphonso Mangoes", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID.Hex(), map[string]interface{}{
		"_id": "ignored",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateValidatesBounds(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID.Hex(), map[string]interface{}{"price": -2.0})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Update(context.Background(), created.ID.Hex(), map[string]interface{}{"rating": 9.0})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Update(context.Background(), created.ID.Hex(), map[string]interface{}{"discount": -1.0})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateRejectsSlugCollision(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	first, err := svc.Create(context.Background(), validCreateRequest())
	assert.NoError(t, err)

	second := validCreateRequest()
	second.Name = "Green Apples"
	other, err := svc.Create(context.Background(), second)
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), other.ID.Hex(), map[string]interface{}{"slug": first.Slug})
	assert.True(t, apperrors.IsConflict(err))

	// Keeping your own slug is not a collision.
	_, err = svc.Update(context.Background(), other.ID.Hex(), map[string]interface{}{"slug": other.Slug})
	assert.NoError(t, err)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	_, err := svc.Update(context.Background(), "not-an-object-id", map[string]interface{}{"name": "x"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteMissingProductIsNotFound(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Delete(context.Background(), "garbage")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCounts(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	inStock := validCreateRequest()
	_, err := svc.Create(context.Background(), inStock)
	assert.NoError(t, err)

	outOfStock := validCreateRequest()
	outOfStock.Name = "Sold Out"
	outOfStock.InStock = new(bool)
	outOfStock.Discount = float64Ptr(25)
	_, err = svc.Create(context.Background(), outOfStock)
	assert.NoError(t, err)

	counts, err := svc.Counts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, ProductCounts{Total: 2, InStock: 1, Discounted: 1}, counts)
}
