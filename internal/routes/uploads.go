package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type UploadRoutes struct {
	handler    *handlers.UploadHandler
	adminGuard gin.HandlerFunc
}

func NewUploadRoutes(handler *handlers.UploadHandler, adminGuard gin.HandlerFunc) *UploadRoutes {
	return &UploadRoutes{handler: handler, adminGuard: adminGuard}
}

func (r *UploadRoutes) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	uploads.Use(middlewares.Authenticate, r.adminGuard) // Catalog images only
	{
		uploads.POST("", r.handler.Upload)
	}
}
