package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
	".svg": true, ".gif": true, ".pdf": true,
}

// UploadHandler stores multipart uploads in the local media directory
type UploadHandler struct {
	mediaDir string
}

// NewUploadHandler creates a new instance of UploadHandler
func NewUploadHandler(mediaDir string) *UploadHandler {
	return &UploadHandler{mediaDir: mediaDir}
}

// Upload handles POST /api/v1/admin/uploads. The stored filename is
// regenerated, so client-supplied names never reach the filesystem.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file type %q not allowed", ext)})
		return
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(h.mediaDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"path": "/media/" + name}})
}

// RegisterUploadRoutes registers the admin upload route
func RegisterUploadRoutes(admin *gin.RouterGroup, handler *UploadHandler) {
	admin.POST("/uploads", handler.Upload)
}
