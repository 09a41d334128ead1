package handler

import (
	"errors"
	"net/http"

	"eduportal-backend/internal/apps/otp/models"
	"eduportal-backend/internal/apps/otp/service"

	"github.com/gin-gonic/gin"
)

// OTPHandler handles HTTP requests for the email verification flow
type OTPHandler struct {
	service service.OTPService
}

// NewOTPHandler creates a new instance of OTPHandler
func NewOTPHandler(service service.OTPService) *OTPHandler {
	return &OTPHandler{service: service}
}

// IssueOTP handles POST /api/v1/otp/request. The code never appears in the
// response; email is the only distribution channel.
func (h *OTPHandler) IssueOTP(c *gin.Context) {
	var req models.IssueOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Issue(req.Email); err != nil {
		if errors.Is(err, service.ErrDeliveryFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "verification code issued but email delivery failed, please retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "verification code sent"}})
}

// VerifyOTP handles POST /api/v1/otp/verify
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, err := h.service.Verify(req.Email, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "OTP verified successfully"
	if !valid {
		message = "Invalid or expired OTP"
	}
	c.JSON(http.StatusOK, gin.H{"data": models.VerifyOTPResponse{Valid: valid, Message: message}})
}

// SweepExpired handles POST /api/v1/otp/sweep (admin)
func (h *OTPHandler) SweepExpired(c *gin.Context) {
	count, err := h.service.SweepExpired()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"removed": count}})
}
