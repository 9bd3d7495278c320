package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

const DraftTokenHeader = "X-Draft-Token"

type DesignHandler struct {
	designService *services.DesignService
}

func NewDesignHandler(designService *services.DesignService) *DesignHandler {
	return &DesignHandler{designService: designService}
}

// currentUserID returns the authenticated user's ID, or nil for anonymous
// requests. Designs can be saved without an account.
func (h *DesignHandler) currentUserID(c *gin.Context) *uuid.UUID {
	raw, exists := c.Get("userId")
	if !exists {
		return nil
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func (h *DesignHandler) CreateDesign(c *gin.Context) {
	var req services.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	design, err := h.designService.CreateDesign(h.currentUserID(c), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while saving the design")
		return
	}

	responses.Success(c, http.StatusCreated, design, "Design saved successfully")
}

func (h *DesignHandler) GetDesign(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	design, err := h.designService.GetDesign(id)
	if err != nil {
		responses.FailFromError(c, err, "Design not found")
		return
	}

	responses.Success(c, http.StatusOK, design, "Design fetched successfully")
}

func (h *DesignHandler) ListDesigns(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == nil {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	designs, err := h.designService.ListDesigns(userID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list designs")
		return
	}

	responses.Success(c, http.StatusOK, designs, "Designs fetched successfully")
}

func (h *DesignHandler) UpdateDesign(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	design, err := h.designService.UpdateDesign(h.currentUserID(c), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the design")
		return
	}

	responses.Success(c, http.StatusOK, design, "Design updated successfully")
}

func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.designService.DeleteDesign(h.currentUserID(c), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the design")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Design deleted successfully")
}

// GetLayers resolves a design into the ordered layer stack the renderer
// composites, with plumbing-side image selection and mirroring applied.
func (h *DesignHandler) GetLayers(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	layers, err := h.designService.ResolveLayers(id)
	if err != nil {
		responses.FailFromError(c, err, "Could not resolve design layers")
		return
	}

	responses.Success(c, http.StatusOK, layers, "Layers resolved successfully")
}

func (h *DesignHandler) draftToken(c *gin.Context) string {
	if token := c.GetHeader(DraftTokenHeader); token != "" {
		return token
	}
	return c.Query("token")
}

func (h *DesignHandler) SaveDraft(c *gin.Context) {
	var req struct {
		Payload string `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	token, err := h.designService.SaveDraft(c.Request.Context(), h.draftToken(c), req.Payload)
	if err != nil {
		responses.FailFromError(c, err, "Could not save draft")
		return
	}

	res := gin.H{
		"token": token,
	}

	responses.Success(c, http.StatusOK, res, "Draft saved successfully")
}

func (h *DesignHandler) GetDraft(c *gin.Context) {
	token := h.draftToken(c)
	if token == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Draft token is required")
		return
	}

	payload, err := h.designService.GetDraft(c.Request.Context(), token)
	if err != nil {
		responses.FailFromError(c, err, "Draft not found")
		return
	}

	res := gin.H{
		"token":   token,
		"payload": payload,
	}

	responses.Success(c, http.StatusOK, res, "Draft fetched successfully")
}

func (h *DesignHandler) DeleteDraft(c *gin.Context) {
	token := h.draftToken(c)
	if token == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Draft token is required")
		return
	}

	if err := h.designService.DeleteDraft(c.Request.Context(), token); err != nil {
		responses.FailFromError(c, err, "Could not delete draft")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Draft deleted successfully")
}
