package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

type ShowerTypeHandler struct {
	catalogService *services.CatalogService
}

func NewShowerTypeHandler(catalogService *services.CatalogService) *ShowerTypeHandler {
	return &ShowerTypeHandler{catalogService: catalogService}
}

func (h *ShowerTypeHandler) CreateProjectType(c *gin.Context) {
	var req services.ProjectTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	pt, err := h.catalogService.CreateProjectType(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the project type")
		return
	}

	responses.Success(c, http.StatusCreated, pt, "Project type created successfully")
}

func (h *ShowerTypeHandler) GetProjectType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	pt, err := h.catalogService.GetProjectType(id)
	if err != nil {
		responses.FailFromError(c, err, "Project type not found")
		return
	}

	responses.Success(c, http.StatusOK, pt, "Project type fetched successfully")
}

func (h *ShowerTypeHandler) ListProjectTypes(c *gin.Context) {
	pts, err := h.catalogService.ListProjectTypes()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list project types")
		return
	}

	responses.Success(c, http.StatusOK, pts, "Project types fetched successfully")
}

func (h *ShowerTypeHandler) UpdateProjectType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.ProjectTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	pt, err := h.catalogService.UpdateProjectType(id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the project type")
		return
	}

	responses.Success(c, http.StatusOK, pt, "Project type updated successfully")
}

func (h *ShowerTypeHandler) DeleteProjectType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.catalogService.DeleteProjectType(id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the project type")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Project type deleted successfully")
}

func (h *ShowerTypeHandler) CreateShowerType(c *gin.Context) {
	var req services.ShowerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	st, err := h.catalogService.CreateShowerType(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the shower type")
		return
	}

	responses.Success(c, http.StatusCreated, st, "Shower type created successfully")
}

func (h *ShowerTypeHandler) GetShowerType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	st, err := h.catalogService.GetShowerType(id)
	if err != nil {
		responses.FailFromError(c, err, "Shower type not found")
		return
	}

	responses.Success(c, http.StatusOK, st, "Shower type fetched successfully")
}

func (h *ShowerTypeHandler) ListShowerTypes(c *gin.Context) {
	var projectTypeID *uuid.UUID
	if raw := c.Query("project_type_id"); raw != "" {
		id, err := utils.ParseUUID(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid project_type_id format")
			return
		}
		projectTypeID = &id
	}

	sts, err := h.catalogService.ListShowerTypes(projectTypeID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list shower types")
		return
	}

	responses.Success(c, http.StatusOK, sts, "Shower types fetched successfully")
}

func (h *ShowerTypeHandler) UpdateShowerType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.ShowerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	st, err := h.catalogService.UpdateShowerType(c.Request.Context(), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the shower type")
		return
	}

	responses.Success(c, http.StatusOK, st, "Shower type updated successfully")
}

func (h *ShowerTypeHandler) DeleteShowerType(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.catalogService.DeleteShowerType(c.Request.Context(), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the shower type")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Shower type deleted successfully")
}

// GetCatalog returns the fully resolved category tree for a shower type.
func (h *ShowerTypeHandler) GetCatalog(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	tree, err := h.catalogService.GetCatalog(c.Request.Context(), id)
	if err != nil {
		responses.FailFromError(c, err, "Could not load catalog")
		return
	}

	responses.Success(c, http.StatusOK, tree, "Catalog fetched successfully")
}
