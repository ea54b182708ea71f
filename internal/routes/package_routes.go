package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func PackageRoutes(public, admin *gin.RouterGroup, ctrl *controllers.PackageController) {
	public.GET("/packages", ctrl.List)
	public.GET("/packages/:id", ctrl.Get)

	admin.POST("/packages", ctrl.Create)
	admin.PUT("/packages/:id", ctrl.Update)
	admin.DELETE("/packages/:id", ctrl.Delete)
}
