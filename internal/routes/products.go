package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type ProductRoutes struct {
	handler    *handlers.ProductHandler
	adminGuard gin.HandlerFunc
}

func NewProductRoutes(handler *handlers.ProductHandler, adminGuard gin.HandlerFunc) *ProductRoutes {
	return &ProductRoutes{handler: handler, adminGuard: adminGuard}
}

func (r *ProductRoutes) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", r.handler.ListProducts)
		products.GET("/:id", r.handler.GetProduct)
		products.GET("/:id/variants", r.handler.ListVariants)

		protected := products.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateProduct)
		protected.PUT("/:id", r.handler.UpdateProduct)
		protected.DELETE("/:id", r.handler.DeleteProduct)
	}

	variants := router.Group("/variants")
	{
		variants.GET("/:id", r.handler.GetVariant)

		protected := variants.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateVariant)
		protected.PUT("/:id", r.handler.UpdateVariant)
		protected.DELETE("/:id", r.handler.DeleteVariant)
	}
}
