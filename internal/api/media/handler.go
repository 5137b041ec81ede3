package media

import (
	"net/http"
	"strings"

	"mosque-app/internal/media"
	"mosque-app/pkg/logger"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps dashboard image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type Handler struct {
	uploader *media.Uploader
}

func NewHandler(uploader *media.Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// Upload forwards a dashboard image to the media host and returns its
// permanent URL. The file itself is never stored locally.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		file, err = c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 10 MB)"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	url, err := h.uploader.UploadImage(file.Filename, src)
	if err != nil {
		logger.Error(err, "Media upload failed", map[string]interface{}{
			"filename": file.Filename,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
