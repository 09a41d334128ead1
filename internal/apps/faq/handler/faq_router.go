package handler

import "github.com/gin-gonic/gin"

// RegisterFaqRoutes registers public read routes and admin CRUD routes
func RegisterFaqRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *FaqHandler) {
	faq := router.Group("/faq")
	{
		faq.GET("/categories", handler.ListCategories)
		faq.GET("/questions", handler.ListQuestions)
	}

	adminFaq := admin.Group("/faq")
	{
		adminFaq.POST("/categories", handler.CreateCategory)
		adminFaq.PUT("/categories/:id", handler.UpdateCategory)
		adminFaq.DELETE("/categories/:id", handler.DeleteCategory)
		adminFaq.POST("/questions", handler.CreateQuestion)
		adminFaq.PUT("/questions/:id", handler.UpdateQuestion)
		adminFaq.DELETE("/questions/:id", handler.DeleteQuestion)
	}
}
