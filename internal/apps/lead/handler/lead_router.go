package handler

import "github.com/gin-gonic/gin"

// RegisterLeadRoutes registers public capture routes and admin listing routes
func RegisterLeadRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *LeadHandler) {
	leads := router.Group("/leads")
	{
		leads.POST("", handler.CreateLead)
		leads.POST("/verify-otp", handler.VerifyLeadOTP)
		leads.PUT("/by-contact", handler.UpdateLeadByContact)
	}

	adminLeads := admin.Group("/leads")
	{
		adminLeads.GET("", handler.ListLeads)
		adminLeads.GET("/:id", handler.GetLead)
	}
}
