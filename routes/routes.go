package routes

import (
	"github.com/gin-gonic/gin"

	"freshmart-backend/controllers"
	"freshmart-backend/middleware"
	"freshmart-backend/services"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Category *controllers.CategoryController
	Catalog  *controllers.CatalogController
	Upload   *controllers.UploadController
	Admin    *controllers.AdminController
}

// RegisterRoutes attaches the full HTTP surface. Public reads need no
// session; every mutation and the upload endpoint sit behind the verified
// session middleware, while the admin pages sit behind the cheap edge gate.
func RegisterRoutes(r *gin.Engine, ctrl Controllers, session services.SessionConfig, tokens middleware.TokenVerifier) {
	sessionRequired := middleware.SessionRequired(session, tokens)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/logout", ctrl.Auth.Logout)
			auth.GET("/me", sessionRequired, ctrl.Auth.Me)
		}

		products := api.Group("/products")
		{
			products.GET("", ctrl.Products.GetProducts)
			products.GET("/:id", ctrl.Products.GetProduct)
			products.POST("", sessionRequired, ctrl.Products.CreateProduct)
			products.PUT("/:id", sessionRequired, ctrl.Products.UpdateProduct)
			products.DELETE("/:id", sessionRequired, ctrl.Products.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", ctrl.Category.GetCategories)
			categories.GET("/:id", ctrl.Category.GetCategory)
			categories.POST("", sessionRequired, ctrl.Category.CreateCategory)
			categories.PUT("/:id", sessionRequired, ctrl.Category.UpdateCategory)
			categories.DELETE("/:id", sessionRequired, ctrl.Category.DeleteCategory)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/hot-sale", ctrl.Catalog.HotSale)
			catalog.GET("/fresh-picks", ctrl.Catalog.FreshPicks)
			catalog.GET("/frozen-and-drinks", ctrl.Catalog.FrozenAndDrinks)
		}

		api.POST("/upload", sessionRequired, ctrl.Upload.UploadImages)
	}

	admin := r.Group("/admin", middleware.AdminGate(session))
	{
		admin.GET("", sessionRequired, ctrl.Admin.Dashboard)
		admin.GET("/login", ctrl.Admin.LoginPage)
	}
}
