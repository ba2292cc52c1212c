package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amarhadpad/artistgrade/internal/server/http/dto"
)

const maxUploadSize = 10 << 20

// MediaHandler proxies image uploads to the hosting service.
type MediaHandler struct {
	facade MediaFacade
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(facade MediaFacade) *MediaHandler {
	return &MediaHandler{facade: facade}
}

// Upload handles POST /api/admin/upload.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "image exceeds size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "failed to read image"})
		return
	}

	asset, err := h.facade.UploadImage(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MediaAssetResponse{URL: asset.URL, PublicID: asset.PublicID})
}

// List handles GET /api/admin/images.
func (h *MediaHandler) List(c *gin.Context) {
	assets, err := h.facade.Images(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.MediaAssetResponse, 0, len(assets))
	for _, a := range assets {
		response = append(response, dto.MediaAssetResponse{URL: a.URL, PublicID: a.PublicID})
	}
	c.JSON(http.StatusOK, response)
}
