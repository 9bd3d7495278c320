package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/responses"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
)

// 32 MB, the hosting provider's documented limit
const maxUploadSize = 32 << 20

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload forwards a multipart image to the hosting provider and returns the
// hosted URL. Provider failures surface as 502 so callers can tell them
// apart from bad input.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "An image file is required")
		return
	}

	if fileHeader.Size > maxUploadSize {
		responses.Fail(c, http.StatusBadRequest, nil, "Image exceeds the maximum upload size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		responses.Fail(c, http.StatusBadGateway, err, "Image hosting provider rejected the upload")
		return
	}

	responses.Success(c, http.StatusCreated, result, "Image uploaded successfully")
}
