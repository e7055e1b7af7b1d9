package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "freshmart-backend/errors"
)

// AdminController serves the admin pages behind the edge gate. The pages
// themselves carry no secrets; the data behind them is fetched through the
// fully authenticated API.
type AdminController struct {
	products   ProductServiceAPI
	categories CategoryServiceAPI
}

func NewAdminController(products ProductServiceAPI, categories CategoryServiceAPI) *AdminController {
	return &AdminController{
		products:   products,
		categories: categories,
	}
}

// Dashboard returns the store totals shown on the admin landing page.
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.products.Counts(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	categoryCount, err := ac.categories.Count(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": gin.H{
			"total":      counts.Total,
			"inStock":    counts.InStock,
			"discounted": counts.Discounted,
		},
		"categories": categoryCount,
	})
}

// LoginPage is the unauthenticated entry point the gate redirects to.
func (ac *AdminController) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "login",
		"from": c.Query("from"),
	})
}
