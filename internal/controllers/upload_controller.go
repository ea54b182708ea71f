package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadBytes caps image uploads at 5MB.
const MaxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadController stores an image under a generated name and returns
// its URL. Extension and declared MIME type are both checked; the file
// content is not sniffed.
type UploadController struct {
	dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{dir: dir}
}

func (ctrl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if file.Size > MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large (max 5MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime := strings.ToLower(strings.TrimSpace(strings.SplitN(file.Header.Get("Content-Type"), ";", 2)[0]))
	if !allowedImageExts[ext] || !allowedImageMIMEs[mime] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"message": "Only image files are allowed!"})
		return
	}

	if err := os.MkdirAll(ctrl.dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(ctrl.dir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": "/uploads/" + name,
		"message":  "File uploaded successfully",
	})
}
