package handler

import "github.com/gin-gonic/gin"

// RegisterUniversityRoutes registers public read routes and admin CRUD routes
func RegisterUniversityRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *UniversityHandler) {
	router.GET("/universities", handler.List)
	router.GET("/universities/:slug", handler.GetBySlug)
	router.GET("/university-types", handler.ListTypes)

	admin.POST("/universities", handler.Create)
	admin.PUT("/universities/:id", handler.Update)
	admin.DELETE("/universities/:id", handler.Delete)
	admin.POST("/university-types", handler.CreateType)
	admin.PUT("/university-types/:id", handler.UpdateType)
	admin.DELETE("/university-types/:id", handler.DeleteType)
}
