package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func PhotoRoutes(public, admin *gin.RouterGroup, ctrl *controllers.PhotoController) {
	public.GET("/photos", ctrl.List)
	public.GET("/photos/featured", ctrl.Featured)
	public.GET("/photos/:id", ctrl.Get)

	admin.POST("/photos", ctrl.Create)
	admin.PUT("/photos/:id", ctrl.Update)
	admin.DELETE("/photos/:id", ctrl.Delete)
}
