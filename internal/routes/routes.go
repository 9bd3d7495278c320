package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
	"github.com/itsfarrukhali/bathfitter-backend/internal/repositories"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	showerTypeHandler *handlers.ShowerTypeHandler,
	categoryHandler *handlers.CategoryHandler,
	productHandler *handlers.ProductHandler,
	templateHandler *handlers.TemplateHandler,
	designHandler *handlers.DesignHandler,
	uploadHandler *handlers.UploadHandler,
	userRepo *repositories.UserRepository,
) {
	api := router.Group("/api/v1")

	// Catalog mutations are back-office operations
	adminGuard := middlewares.RequireAdmin(userRepo)

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	catalogRoutes := NewCatalogRoutes(showerTypeHandler, adminGuard)
	catalogRoutes.RegisterRoutes(api)

	categoryRoutes := NewCategoryRoutes(categoryHandler, adminGuard)
	categoryRoutes.RegisterRoutes(api)

	productRoutes := NewProductRoutes(productHandler, adminGuard)
	productRoutes.RegisterRoutes(api)

	templateRoutes := NewTemplateRoutes(templateHandler, adminGuard)
	templateRoutes.RegisterRoutes(api)

	designRoutes := NewDesignRoutes(designHandler)
	designRoutes.RegisterRoutes(api)

	uploadRoutes := NewUploadRoutes(uploadHandler, adminGuard)
	uploadRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
