package handler

import (
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/banner/models"
	"eduportal-backend/internal/apps/banner/service"

	"github.com/gin-gonic/gin"
)

// BannerHandler handles HTTP requests for course banners
type BannerHandler struct {
	service service.BannerService
}

// NewBannerHandler creates a new instance of BannerHandler
func NewBannerHandler(service service.BannerService) *BannerHandler {
	return &BannerHandler{service: service}
}

func parseCourseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return 0, false
	}
	return uint(id), true
}

// ListByCourse handles GET /api/v1/banners?course_id=12
func (h *BannerHandler) ListByCourse(c *gin.Context) {
	courseID64, err := strconv.ParseUint(c.Query("course_id"), 10, 64)
	if err != nil || courseID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id is required"})
		return
	}
	h.listByCourse(c, uint(courseID64))
}

// ListByCourseParam handles GET /api/v1/admin/courses/:id/banners
func (h *BannerHandler) ListByCourseParam(c *gin.Context) {
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}
	h.listByCourse(c, courseID)
}

func (h *BannerHandler) listByCourse(c *gin.Context, courseID uint) {
	out, err := h.service.ListByCourse(courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// ReplaceForCourse handles PUT /api/v1/admin/courses/:id/banners
func (h *BannerHandler) ReplaceForCourse(c *gin.Context) {
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}
	var req models.ReplaceBannersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.service.ReplaceForCourse(courseID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// RegisterBannerRoutes registers the public read route and admin replace routes
func RegisterBannerRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *BannerHandler) {
	router.GET("/banners", handler.ListByCourse)

	admin.GET("/courses/:id/banners", handler.ListByCourseParam)
	admin.PUT("/courses/:id/banners", handler.ReplaceForCourse)
}
