package mediaapi

import (
	"io"
	"net/http"

	"trainerhub-app/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 20 MB multipart cap; well above the 5 MB advisory threshold.
const maxUploadBytes = 20 << 20

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type UploadResponse struct {
	ID        string             `json:"id"`
	Image     media.EncodedImage `json:"image"`
	Optimized bool               `json:"optimized"`
	Notice    string             `json:"notice,omitempty"`
}

// POST /admin/media
// Accepts a single image file and returns an Encoded Image ready to be
// placed into the working copy. Compression is best effort: an image the
// pipeline cannot decode comes back as the unprocessed original.
func UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}

	if !allowedTypes[http.DetectContentType(data)] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only PNG, JPEG and WebP images are accepted"})
		return
	}

	res := media.Ingest(header.Filename, data)

	c.JSON(http.StatusOK, UploadResponse{
		ID:        uuid.NewString(),
		Image:     res.Image,
		Optimized: res.Optimized,
		Notice:    res.Notice,
	})
}
