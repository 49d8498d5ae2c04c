// internal/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /api/uploads/product-image
func (h *UploadHandler) UploadProductImage(c *gin.Context) {
	h.upload(c, "products")
}

// POST /api/uploads/avatar
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	h.upload(c, "avatars")
}

func (h *UploadHandler) upload(c *gin.Context, folder string) {
	if !h.storageService.Enabled() {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "UPLOADS_DISABLED",
			"Image uploads are not configured", nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Missing file field", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, folder)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}
