package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) CreateCategory(c *gin.Context) {
	var req services.TemplateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tc, err := h.templateService.CreateCategory(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the template category")
		return
	}

	responses.Success(c, http.StatusCreated, tc, "Template category created successfully")
}

func (h *TemplateHandler) ListCategories(c *gin.Context) {
	tcs, err := h.templateService.ListCategories()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list template categories")
		return
	}

	responses.Success(c, http.StatusOK, tcs, "Template categories fetched successfully")
}

func (h *TemplateHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.TemplateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tc, err := h.templateService.UpdateCategory(id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the template category")
		return
	}

	responses.Success(c, http.StatusOK, tc, "Template category updated successfully")
}

func (h *TemplateHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.templateService.DeleteCategory(id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the template category")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Template category deleted successfully")
}

func (h *TemplateHandler) CreateSubcategory(c *gin.Context) {
	var req services.TemplateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ts, err := h.templateService.CreateSubcategory(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the template subcategory")
		return
	}

	responses.Success(c, http.StatusCreated, ts, "Template subcategory created successfully")
}

func (h *TemplateHandler) ListSubcategories(c *gin.Context) {
	templateCategoryID, err := utils.ParseUUID(c.Query("template_category_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "template_category_id query param is required")
		return
	}

	tss, err := h.templateService.ListSubcategories(templateCategoryID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list template subcategories")
		return
	}

	responses.Success(c, http.StatusOK, tss, "Template subcategories fetched successfully")
}

func (h *TemplateHandler) UpdateSubcategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.TemplateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	ts, err := h.templateService.UpdateSubcategory(id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the template subcategory")
		return
	}

	responses.Success(c, http.StatusOK, ts, "Template subcategory updated successfully")
}

func (h *TemplateHandler) DeleteSubcategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.templateService.DeleteSubcategory(id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the template subcategory")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Template subcategory deleted successfully")
}

func (h *TemplateHandler) CreateProduct(c *gin.Context) {
	var req services.TemplateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tp, err := h.templateService.CreateProduct(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the template product")
		return
	}

	responses.Success(c, http.StatusCreated, tp, "Template product created successfully")
}

func (h *TemplateHandler) ListProducts(c *gin.Context) {
	templateSubcategoryID, err := utils.ParseUUID(c.Query("template_subcategory_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "template_subcategory_id query param is required")
		return
	}

	tps, err := h.templateService.ListProducts(templateSubcategoryID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list template products")
		return
	}

	responses.Success(c, http.StatusOK, tps, "Template products fetched successfully")
}

func (h *TemplateHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.TemplateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tp, err := h.templateService.UpdateProduct(id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the template product")
		return
	}

	responses.Success(c, http.StatusOK, tp, "Template product updated successfully")
}

func (h *TemplateHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.templateService.DeleteProduct(id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the template product")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Template product deleted successfully")
}

func (h *TemplateHandler) CreateVariant(c *gin.Context) {
	var req services.TemplateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tv, err := h.templateService.CreateVariant(req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the template variant")
		return
	}

	responses.Success(c, http.StatusCreated, tv, "Template variant created successfully")
}

func (h *TemplateHandler) ListVariants(c *gin.Context) {
	templateProductID, err := utils.ParseUUID(c.Query("template_product_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "template_product_id query param is required")
		return
	}

	tvs, err := h.templateService.ListVariants(templateProductID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list template variants")
		return
	}

	responses.Success(c, http.StatusOK, tvs, "Template variants fetched successfully")
}

func (h *TemplateHandler) UpdateVariant(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.TemplateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tv, err := h.templateService.UpdateVariant(id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the template variant")
		return
	}

	responses.Success(c, http.StatusOK, tv, "Template variant updated successfully")
}

func (h *TemplateHandler) DeleteVariant(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.templateService.DeleteVariant(id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the template variant")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Template variant deleted successfully")
}

// Instantiate copies the template tree into each requested shower type.
func (h *TemplateHandler) Instantiate(c *gin.Context) {
	var req services.InstantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.templateService.Instantiate(c.Request.Context(), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while instantiating templates")
		return
	}

	responses.Success(c, http.StatusOK, result, "Templates instantiated successfully")
}
