package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/blog/models"
	"eduportal-backend/internal/apps/blog/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles HTTP requests for blogs
type BlogHandler struct {
	service service.BlogService
}

// NewBlogHandler creates a new instance of BlogHandler
func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /api/v1/admin/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.service.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": b})
}

// Update handles PUT /api/v1/admin/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Update(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, persistence.ErrNothingToUpdate):
			c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

// GetBySlug handles GET /api/v1/blogs/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrBlogNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

// List handles GET /api/v1/blogs (published only) and GET /api/v1/admin/blogs (all)
func (h *BlogHandler) List(publishedOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		out, total, err := h.service.List(publishedOnly, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": out, "total": total, "page": page})
	}
}

// Delete handles DELETE /api/v1/admin/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
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

// RegisterBlogRoutes registers public read routes and admin CRUD routes
func RegisterBlogRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *BlogHandler) {
	router.GET("/blogs", handler.List(true))
	router.GET("/blogs/:slug", handler.GetBySlug)

	admin.GET("/blogs", handler.List(false))
	admin.POST("/blogs", handler.Create)
	admin.PUT("/blogs/:id", handler.Update)
	admin.DELETE("/blogs/:id", handler.Delete)
}
