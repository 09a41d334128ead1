package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/university/models"
	"eduportal-backend/internal/apps/university/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// UniversityHandler handles HTTP requests for university listings
type UniversityHandler struct {
	service service.UniversityService
}

// NewUniversityHandler creates a new instance of UniversityHandler
func NewUniversityHandler(service service.UniversityService) *UniversityHandler {
	return &UniversityHandler{service: service}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUniversityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, persistence.ErrNothingToUpdate):
		c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// Create handles POST /api/v1/admin/universities
func (h *UniversityHandler) Create(c *gin.Context) {
	var req models.CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.service.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": u})
}

// Update handles PUT /api/v1/admin/universities/:id
func (h *UniversityHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.service.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": u})
}

// GetBySlug handles GET /api/v1/universities/:slug
func (h *UniversityHandler) GetBySlug(c *gin.Context) {
	u, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": u})
}

// List handles GET /api/v1/universities
func (h *UniversityHandler) List(c *gin.Context) {
	typeID, _ := strconv.ParseUint(c.DefaultQuery("type_id", "0"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	out, total, err := h.service.List(uint(typeID), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": total, "page": page})
}

// Delete handles DELETE /api/v1/admin/universities/:id
func (h *UniversityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// CreateType handles POST /api/v1/admin/university-types
func (h *UniversityHandler) CreateType(c *gin.Context) {
	var req models.CreateUniversityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.service.CreateType(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": t})
}

// UpdateType handles PUT /api/v1/admin/university-types/:id
func (h *UniversityHandler) UpdateType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateUniversityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.service.UpdateType(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": t})
}

// ListTypes handles GET /api/v1/university-types
func (h *UniversityHandler) ListTypes(c *gin.Context) {
	out, err := h.service.ListTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// DeleteType handles DELETE /api/v1/admin/university-types/:id
func (h *UniversityHandler) DeleteType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteType(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}
