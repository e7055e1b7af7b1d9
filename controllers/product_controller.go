package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/services"
)

// ProductController serves the product CRUD endpoints. Reads go through the
// version-keyed cache; every write invalidates it.
type ProductController struct {
	products ProductServiceAPI
	cache    *CacheManager
}

func NewProductController(products ProductServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{
		products: products,
		cache:    cache,
	}
}

// GetProducts lists products, optionally filtered by category, text search
// and a result limit.
func (pc *ProductController) GetProducts(c *gin.Context) {
	params := services.ProductListParams{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		params.Limit = int64(limit)
	}

	cacheKey := fmt.Sprintf("c:%s:q:%s:l:%d", params.Category, params.Search, params.Limit)
	if cached, ok := pc.cache.GetProducts(c.Request.Context(), cacheKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := pc.products.List(c.Request.Context(), params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.SetProductsAsync(cacheKey, products)
	c.JSON(http.StatusOK, products)
}

// GetProduct resolves a single product by ObjectID hex or by slug.
func (pc *ProductController) GetProduct(c *gin.Context) {
	idOrSlug := c.Param("id")
	if cached, ok := pc.cache.GetProduct(c.Request.Context(), idOrSlug); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := pc.products.GetByIDOrSlug(c.Request.Context(), idOrSlug)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.SetProductAsync(idOrSlug, product)
	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product from a JSON body.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": productValidationMessage(err)})
		return
	}

	product, err := pc.products.Create(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	zap.L().Info("Product created",
		zap.String("id", product.ID.Hex()),
		zap.String("slug", product.Slug),
	)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial update. Unknown fields in the body are
// ignored rather than rejected.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}

	product, err := pc.products.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product permanently.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := pc.products.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	zap.L().Info("Product deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
