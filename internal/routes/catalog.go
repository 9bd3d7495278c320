package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type CatalogRoutes struct {
	handler    *handlers.ShowerTypeHandler
	adminGuard gin.HandlerFunc
}

func NewCatalogRoutes(handler *handlers.ShowerTypeHandler, adminGuard gin.HandlerFunc) *CatalogRoutes {
	return &CatalogRoutes{handler: handler, adminGuard: adminGuard}
}

func (r *CatalogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projectTypes := router.Group("/project-types")
	{
		projectTypes.GET("", r.handler.ListProjectTypes)
		projectTypes.GET("/:id", r.handler.GetProjectType)

		protected := projectTypes.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateProjectType)
		protected.PUT("/:id", r.handler.UpdateProjectType)
		protected.DELETE("/:id", r.handler.DeleteProjectType)
	}

	showerTypes := router.Group("/shower-types")
	{
		showerTypes.GET("", r.handler.ListShowerTypes)
		showerTypes.GET("/:id", r.handler.GetShowerType)
		showerTypes.GET("/:id/catalog", r.handler.GetCatalog)

		protected := showerTypes.Group("/")
		protected.Use(middlewares.Authenticate, r.adminGuard)
		protected.POST("", r.handler.CreateShowerType)
		protected.PUT("/:id", r.handler.UpdateShowerType)
		protected.DELETE("/:id", r.handler.DeleteShowerType)
	}
}
