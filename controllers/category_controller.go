package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/services"
)

// CategoryController serves the category CRUD endpoints.
type CategoryController struct {
	categories CategoryServiceAPI
	cache      *CacheManager
}

func NewCategoryController(categories CategoryServiceAPI, cache *CacheManager) *CategoryController {
	return &CategoryController{
		categories: categories,
		cache:      cache,
	}
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.categories.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and slug are required"})
		return
	}

	category, err := cc.categories.Create(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	zap.L().Info("Category created",
		zap.String("id", category.ID.Hex()),
		zap.String("slug", category.Slug),
	)
	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var req services.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category payload"})
		return
	}

	category, err := cc.categories.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := cc.categories.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.cache.Invalidate(c.Request.Context())
	zap.L().Info("Category deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted",
	})
}
