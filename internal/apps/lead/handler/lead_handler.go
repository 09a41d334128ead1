package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eduportal-backend/internal/apps/lead/models"
	"eduportal-backend/internal/apps/lead/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles HTTP requests for website leads
type LeadHandler struct {
	service service.LeadService
}

// NewLeadHandler creates a new instance of LeadHandler
func NewLeadHandler(service service.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// CreateLead handles POST /api/v1/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.service.CreateLead(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": lead})
}

// VerifyLeadOTP handles POST /api/v1/leads/verify-otp
func (h *LeadHandler) VerifyLeadOTP(c *gin.Context) {
	var req models.VerifyLeadOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, err := h.service.VerifyLeadOTP(req.LeadID, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"valid": valid}})
}

// UpdateLeadByContact handles PUT /api/v1/leads/by-contact
func (h *LeadHandler) UpdateLeadByContact(c *gin.Context) {
	var req models.UpdateLeadByContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.service.UpdateByContact(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrLeadNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lead})
}

// GetLead handles GET /api/v1/admin/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}

	lead, err := h.service.GetLeadByID(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrLeadNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lead})
}

// ListLeads handles GET /api/v1/admin/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	leads, total, err := h.service.ListLeads(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leads, "total": total, "page": page})
}
