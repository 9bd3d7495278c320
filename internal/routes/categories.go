package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type CategoryRoutes struct {
	handler    *handlers.CategoryHandler
	adminGuard gin.HandlerFunc
}

func NewCategoryRoutes(handler *handlers.CategoryHandler, adminGuard gin.HandlerFunc) *CategoryRoutes {
	return &CategoryRoutes{handler: handler, adminGuard: adminGuard}
}

func (r *CategoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", r.handler.ListCategories)
		categories.GET("/:id", r.handler.GetCategory)

		protected := categories.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateCategory)
		protected.PUT("/:id", r.handler.UpdateCategory)
		protected.DELETE("/:id", r.handler.DeleteCategory)
	}

	subcategories := router.Group("/subcategories")
	{
		subcategories.GET("", r.handler.ListSubcategories)
		subcategories.GET("/:id", r.handler.GetSubcategory)

		protected := subcategories.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateSubcategory)
		protected.PUT("/:id", r.handler.UpdateSubcategory)
		protected.DELETE("/:id", r.handler.DeleteSubcategory)
	}
}
