package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type TemplateRoutes struct {
	handler    *handlers.TemplateHandler
	adminGuard gin.HandlerFunc
}

func NewTemplateRoutes(handler *handlers.TemplateHandler, adminGuard gin.HandlerFunc) *TemplateRoutes {
	return &TemplateRoutes{handler: handler, adminGuard: adminGuard}
}

func (r *TemplateRoutes) RegisterRoutes(router *gin.RouterGroup) {
	templates := router.Group("/templates")
	templates.Use(middlewares.Authenticate, r.adminGuard) // Templates are back-office only
	{
		templates.POST("/categories", r.handler.CreateCategory)
		templates.GET("/categories", r.handler.ListCategories)
		templates.PUT("/categories/:id", r.handler.UpdateCategory)
		templates.DELETE("/categories/:id", r.handler.DeleteCategory)

		templates.POST("/subcategories", r.handler.CreateSubcategory)
		templates.GET("/subcategories", r.handler.ListSubcategories)
		templates.PUT("/subcategories/:id", r.handler.UpdateSubcategory)
		templates.DELETE("/subcategories/:id", r.handler.DeleteSubcategory)

		templates.POST("/products", r.handler.CreateProduct)
		templates.GET("/products", r.handler.ListProducts)
		templates.PUT("/products/:id", r.handler.UpdateProduct)
		templates.DELETE("/products/:id", r.handler.DeleteProduct)

		templates.POST("/variants", r.handler.CreateVariant)
		templates.GET("/variants", r.handler.ListVariants)
		templates.PUT("/variants/:id", r.handler.UpdateVariant)
		templates.DELETE("/variants/:id", r.handler.DeleteVariant)

		templates.POST("/instantiate", r.handler.Instantiate)
	}
}
