package handler

import "github.com/gin-gonic/gin"

// RegisterOTPRoutes registers public OTP routes and the admin sweep route
func RegisterOTPRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *OTPHandler) {
	otp := router.Group("/otp")
	{
		otp.POST("/request", handler.IssueOTP)
		otp.POST("/verify", handler.VerifyOTP)
	}

	admin.POST("/otp/sweep", handler.SweepExpired)
}
