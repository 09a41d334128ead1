package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/faq/models"
	"eduportal-backend/internal/apps/faq/service"
	"eduportal-backend/internal/common/persistence"

	"github.com/gin-gonic/gin"
)

// FaqHandler handles HTTP requests for FAQ categories and questions
type FaqHandler struct {
	service service.FaqService
}

// NewFaqHandler creates a new instance of FaqHandler
func NewFaqHandler(service service.FaqService) *FaqHandler {
	return &FaqHandler{service: service}
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
	case errors.Is(err, service.ErrFaqNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, persistence.ErrNothingToUpdate):
		c.JSON(http.StatusOK, gin.H{"data": nil, "message": "nothing updated"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// CreateCategory handles POST /api/v1/admin/faq/categories
func (h *FaqHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.service.CreateCategory(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": cat})
}

// UpdateCategory handles PUT /api/v1/admin/faq/categories/:id
func (h *FaqHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.service.UpdateCategory(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cat})
}

// ListCategories handles GET /api/v1/faq/categories?scope=course
func (h *FaqHandler) ListCategories(c *gin.Context) {
	scope := models.Scope(c.Query("scope"))
	cats, err := h.service.ListCategories(scope)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}

// DeleteCategory handles DELETE /api/v1/admin/faq/categories/:id
func (h *FaqHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// CreateQuestion handles POST /api/v1/admin/faq/questions
func (h *FaqHandler) CreateQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.service.CreateQuestion(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": q})
}

// UpdateQuestion handles PUT /api/v1/admin/faq/questions/:id
func (h *FaqHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.service.UpdateQuestion(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": q})
}

// DeleteQuestion handles DELETE /api/v1/admin/faq/questions/:id
func (h *FaqHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteQuestion(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

// ListQuestions handles GET /api/v1/faq/questions?scope=course&scope_id=12.
// The response is the aggregated, priority-ordered bucket structure.
func (h *FaqHandler) ListQuestions(c *gin.Context) {
	scope := models.Scope(c.Query("scope"))
	scopeID, _ := strconv.ParseUint(c.DefaultQuery("scope_id", "0"), 10, 64)

	buckets, err := h.service.ListQuestions(scope, uint(scopeID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buckets})
}
