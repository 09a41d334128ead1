package handler

import "github.com/gin-gonic/gin"

// RegisterCatalogRoutes registers public read routes and admin CRUD routes
func RegisterCatalogRoutes(router *gin.RouterGroup, admin *gin.RouterGroup, handler *CatalogHandler) {
	router.GET("/domains", handler.ListDomains)
	router.GET("/courses", handler.ListCourses)
	router.GET("/courses/:slug", handler.GetCourseBySlug)
	router.GET("/specializations", handler.ListSpecializations)

	admin.POST("/domains", handler.CreateDomain)
	admin.PUT("/domains/:id", handler.UpdateDomain)
	admin.DELETE("/domains/:id", handler.DeleteDomain)
	admin.POST("/courses", handler.CreateCourse)
	admin.PUT("/courses/:id", handler.UpdateCourse)
	admin.DELETE("/courses/:id", handler.DeleteCourse)
	admin.POST("/specializations", handler.CreateSpecialization)
	admin.PUT("/specializations/:id", handler.UpdateSpecialization)
	admin.DELETE("/specializations/:id", handler.DeleteSpecialization)
}
