package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/models"
	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the product")
		return
	}

	responses.Success(c, http.StatusCreated, product, "Product created successfully")
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		responses.FailFromError(c, err, "Product not found")
		return
	}

	responses.Success(c, http.StatusOK, product, "Product fetched successfully")
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	subcategoryID, err := utils.ParseUUID(c.Query("subcategory_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "subcategory_id query param is required")
		return
	}

	products, err := h.productService.ListProducts(subcategoryID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list products")
		return
	}

	responses.Success(c, http.StatusOK, products, "Products fetched successfully")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the product")
		return
	}

	responses.Success(c, http.StatusOK, product, "Product updated successfully")
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the product")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func (h *ProductHandler) CreateVariant(c *gin.Context) {
	var req services.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	variant, err := h.productService.CreateVariant(c.Request.Context(), req)
	if err != nil {
		responses.FailFromError(c, err, "Error while creating the variant")
		return
	}

	responses.Success(c, http.StatusCreated, variant, "Variant created successfully")
}

func (h *ProductHandler) GetVariant(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	variant, err := h.productService.GetVariant(id)
	if err != nil {
		responses.FailFromError(c, err, "Variant not found")
		return
	}

	responses.Success(c, http.StatusOK, variant, "Variant fetched successfully")
}

// ListVariants returns a product's variants. When a plumbing side is given,
// the response also carries the variant the configurator should preselect.
func (h *ProductHandler) ListVariants(c *gin.Context) {
	productID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	rawSide := c.Query("plumbing")
	if rawSide == "" {
		variants, err := h.productService.ListVariants(productID)
		if err != nil {
			responses.Fail(c, http.StatusInternalServerError, err, "Could not list variants")
			return
		}
		responses.Success(c, http.StatusOK, variants, "Variants fetched successfully")
		return
	}

	side := models.PlumbingConfig(strings.ToUpper(rawSide))
	if !side.Valid() {
		responses.Fail(c, http.StatusBadRequest, nil, "plumbing must be LEFT, RIGHT or BOTH")
		return
	}

	variants, selected, err := h.productService.ListVariantsForPlumbing(productID, side)
	if err != nil {
		responses.FailFromError(c, err, "Could not list variants")
		return
	}

	res := gin.H{
		"variants": variants,
		"selected": selected,
	}

	responses.Success(c, http.StatusOK, res, "Variants fetched successfully")
}

func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	var req services.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	variant, err := h.productService.UpdateVariant(c.Request.Context(), id, req)
	if err != nil {
		responses.FailFromError(c, err, "Error while updating the variant")
		return
	}

	responses.Success(c, http.StatusOK, variant, "Variant updated successfully")
}

func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id format")
		return
	}

	if err := h.productService.DeleteVariant(c.Request.Context(), id); err != nil {
		responses.FailFromError(c, err, "Error while deleting the variant")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Variant deleted successfully")
}
