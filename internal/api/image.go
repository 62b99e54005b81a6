package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// ImageHandler accepts recipe image uploads
type ImageHandler struct {
	imageService service.IImageService
}

// NewImageHandler creates an ImageHandler; a nil service disables uploads
func NewImageHandler(imageService service.IImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// UploadImage handles POST /recipes/images with a multipart "image" field
func (h *ImageHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, types.MessageResponse{Message: "Image uploads are not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageSize+(1<<20))
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.MessageResponse{Message: "Please attach an image file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[API] failed to open uploaded file: %v", err)
		c.JSON(http.StatusBadRequest, types.MessageResponse{Message: "Please attach an image file"})
		return
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		log.Printf("[API] failed to read uploaded file: %v", err)
		c.JSON(http.StatusBadRequest, types.MessageResponse{Message: "Please attach an image file"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), contentType, fileHeader.Size, file)
	if err != nil {
		respondError(c, "upload recipe image", err)
		return
	}

	c.JSON(http.StatusCreated, types.ImageUploadResponse{ImageURL: url})
}

// sniffContentType detects the type from the first bytes instead of trusting the
// client header, then rewinds r.
func sniffContentType(r io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}
