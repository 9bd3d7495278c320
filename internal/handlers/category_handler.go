package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the category")
		return
	}

	responses.Success(c, http.StatusCreated, category, "Category created successfully")
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		responses.FailFromError(c, err, "Category not found")
		return
	}

	responses.Success(c, http.StatusOK, category, "Category fetched successfully")
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	showerTypeID, err := utils.ParseUUID(c.Query("shower_type_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "shower_type_id query param is required")
		return
	}

	categories, err := h.categoryService.ListCategories(showerTypeID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list categories")
		return
	}

	responses.Success(c, http.StatusOK, categories, "Categories fetched successfully")
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the category")
		return
	}

	responses.Success(c, http.StatusOK, category, "Category updated successfully")
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the category")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	var req services.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	sub, err := h.categoryService.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the subcategory")
		return
	}

	responses.Success(c, http.StatusCreated, sub, "Subcategory created successfully")
}

func (h *CategoryHandler) GetSubcategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	sub, err := h.categoryService.GetSubcategory(id)
	if err != nil {
		responses.FailFromError(c, err, "Subcategory not found")
		return
	}

	responses.Success(c, http.StatusOK, sub, "Subcategory fetched successfully")
}

func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	categoryID, err := utils.ParseUUID(c.Query("category_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "category_id query param is required")
		return
	}

	subs, err := h.categoryService.ListSubcategories(categoryID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list subcategories")
		return
	}

	responses.Success(c, http.StatusOK, subs, "Subcategories fetched successfully")
}

func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	sub, err := h.categoryService.UpdateSubcategory(c.Request.Context(), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the subcategory")
		return
	}

	responses.Success(c, http.StatusOK, sub, "Subcategory updated successfully")
}

func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.categoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the subcategory")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Subcategory deleted successfully")
}
