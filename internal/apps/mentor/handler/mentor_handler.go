package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/mentor/models"
	"eduportal-backend/internal/apps/mentor/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// MentorHandler handles HTTP requests for mentors
type MentorHandler struct {
	service service.MentorService
}

// NewMentorHandler creates a new instance of MentorHandler
func NewMentorHandler(service service.MentorService) *MentorHandler {
	return &MentorHandler{service: service}
}

// Create handles POST /api/v1/admin/mentors
func (h *MentorHandler) Create(c *gin.Context) {
	var req models.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.service.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": m})
}

// Update handles PUT /api/v1/admin/mentors/:id
func (h *MentorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.Update(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMentorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, persistence.ErrNothingToUpdate):
			c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": m})
}

// ListActive handles GET /api/v1/mentors
func (h *MentorHandler) ListActive(c *gin.Context) {
	out, err := h.service.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// List handles GET /api/v1/admin/mentors, including inactive entries
func (h *MentorHandler) List(c *gin.Context) {
	out, err := h.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Delete handles DELETE /api/v1/admin/mentors/:id
func (h *MentorHandler) Delete(c *gin.Context) {
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

// RegisterMentorRoutes registers the public listing and admin CRUD routes
func RegisterMentorRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *MentorHandler) {
	router.GET("/mentors", handler.ListActive)

	admin.GET("/mentors", handler.List)
	admin.POST("/mentors", handler.Create)
	admin.PUT("/mentors/:id", handler.Update)
	admin.DELETE("/mentors/:id", handler.Delete)
}
