package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/course/models"
	"eduportal-backend/internal/apps/course/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the course catalog
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
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
	case errors.Is(err, service.ErrCatalogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, persistence.ErrNothingToUpdate):
		c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// CreateDomain handles POST /api/v1/admin/domains
func (h *CatalogHandler) CreateDomain(c *gin.Context) {
	var req models.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.service.CreateDomain(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": d})
}

// UpdateDomain handles PUT /api/v1/admin/domains/:id
func (h *CatalogHandler) UpdateDomain(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.service.UpdateDomain(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": d})
}

// ListDomains handles GET /api/v1/domains
func (h *CatalogHandler) ListDomains(c *gin.Context) {
	out, err := h.service.ListDomains()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// DeleteDomain handles DELETE /api/v1/admin/domains/:id
func (h *CatalogHandler) DeleteDomain(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDomain(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// CreateCourse handles POST /api/v1/admin/courses
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.service.CreateCourse(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": course})
}

// UpdateCourse handles PUT /api/v1/admin/courses/:id
func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.service.UpdateCourse(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": course})
}

// GetCourseBySlug handles GET /api/v1/courses/:slug
func (h *CatalogHandler) GetCourseBySlug(c *gin.Context) {
	course, err := h.service.GetCourseBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": course})
}

// ListCourses handles GET /api/v1/courses?domain_id=1
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	domainID, _ := strconv.ParseUint(c.DefaultQuery("domain_id", "0"), 10, 64)
	out, err := h.service.ListCourses(uint(domainID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// DeleteCourse handles DELETE /api/v1/admin/courses/:id
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCourse(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// CreateSpecialization handles POST /api/v1/admin/specializations
func (h *CatalogHandler) CreateSpecialization(c *gin.Context) {
	var req models.CreateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp, err := h.service.CreateSpecialization(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": sp})
}

// UpdateSpecialization handles PUT /api/v1/admin/specializations/:id
func (h *CatalogHandler) UpdateSpecialization(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp, err := h.service.UpdateSpecialization(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sp})
}

// ListSpecializations handles GET /api/v1/specializations?course_id=1
func (h *CatalogHandler) ListSpecializations(c *gin.Context) {
	courseID, _ := strconv.ParseUint(c.DefaultQuery("course_id", "0"), 10, 64)
	out, err := h.service.ListSpecializations(uint(courseID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// DeleteSpecialization handles DELETE /api/v1/admin/specializations/:id
func (h *CatalogHandler) DeleteSpecialization(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSpecialization(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}
