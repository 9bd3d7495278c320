package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/middlewares"
)

type DesignRoutes struct {
	handler *handlers.DesignHandler
}

func NewDesignRoutes(handler *handlers.DesignHandler) *DesignRoutes {
	return &DesignRoutes{handler: handler}
}

func (r *DesignRoutes) RegisterRoutes(router *gin.RouterGroup) {
	designs := router.Group("/designs")
	designs.Use(middlewares.OptionalAuthenticate) // Anonymous saves are allowed
	{
		// Drafts first so gin doesn't treat "draft" as an :id
		designs.PUT("/draft", r.handler.SaveDraft)
		designs.GET("/draft", r.handler.GetDraft)
		designs.DELETE("/draft", r.handler.DeleteDraft)

		designs.POST("", r.handler.CreateDesign)
		designs.GET("", r.handler.ListDesigns)
		designs.GET("/:id", r.handler.GetDesign)
		designs.GET("/:id/layers", r.handler.GetLayers)
		designs.PUT("/:id", r.handler.UpdateDesign)
		designs.DELETE("/:id", r.handler.DeleteDesign)
	}
}
