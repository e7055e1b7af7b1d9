package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "freshmart-backend/errors"
	"freshmart-backend/models"
)

// CatalogController serves the curated storefront sections. All three
// endpoints are public and heavily read, so they sit behind the cache.
type CatalogController struct {
	catalog CatalogServiceAPI
	cache   *CacheManager
}

func NewCatalogController(catalog CatalogServiceAPI, cache *CacheManager) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		cache:   cache,
	}
}

func (cc *CatalogController) HotSale(c *gin.Context) {
	cc.section(c, "hot-sale", cc.catalog.HotSale)
}

func (cc *CatalogController) FreshPicks(c *gin.Context) {
	cc.section(c, "fresh-picks", cc.catalog.FreshPicks)
}

func (cc *CatalogController) FrozenAndDrinks(c *gin.Context) {
	cc.section(c, "frozen-and-drinks", cc.catalog.FrozenAndDrinks)
}

func (cc *CatalogController) section(c *gin.Context, name string, load func(context.Context) ([]models.Product, error)) {
	if cached, ok := cc.cache.GetSection(c.Request.Context(), name); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := load(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	cc.cache.SetSectionAsync(name, products)
	c.JSON(http.StatusOK, products)
}
