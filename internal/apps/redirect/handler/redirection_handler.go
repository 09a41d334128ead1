package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/redirect/models"
	"eduportal-backend/internal/apps/redirect/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// RedirectionHandler handles HTTP requests for URL redirections
type RedirectionHandler struct {
	service service.RedirectionService
}

// NewRedirectionHandler creates a new instance of RedirectionHandler
func NewRedirectionHandler(service service.RedirectionService) *RedirectionHandler {
	return &RedirectionHandler{service: service}
}

// Create handles POST /api/v1/admin/redirections
func (h *RedirectionHandler) Create(c *gin.Context) {
	var req models.CreateRedirectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rd, err := h.service.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": rd})
}

// Update handles PUT /api/v1/admin/redirections/:id
func (h *RedirectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateRedirectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rd, err := h.service.Update(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRedirectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, persistence.ErrNothingToUpdate):
			c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rd})
}

// Resolve handles GET /api/v1/redirections/resolve?path=/old-page
func (h *RedirectionHandler) Resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	rd, err := h.service.Resolve(path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrRedirectionNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rd})
}

// List handles GET /api/v1/admin/redirections
func (h *RedirectionHandler) List(c *gin.Context) {
	out, err := h.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Delete handles DELETE /api/v1/admin/redirections/:id
func (h *RedirectionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// RegisterRedirectionRoutes registers the public resolver and admin CRUD routes
func RegisterRedirectionRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *RedirectionHandler) {
	router.GET("/redirections/resolve", handler.Resolve)

	admin.GET("/redirections", handler.List)
	admin.POST("/redirections", handler.Create)
	admin.PUT("/redirections/:id", handler.Update)
	admin.DELETE("/redirections/:id", handler.Delete)
}
