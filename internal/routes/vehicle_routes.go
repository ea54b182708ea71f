package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func VehicleRoutes(public, admin *gin.RouterGroup, ctrl *controllers.VehicleController) {
	public.GET("/vehicles", ctrl.List)
	public.GET("/vehicles/:id", ctrl.Get)

	admin.POST("/vehicles", ctrl.Create)
	admin.PUT("/vehicles/:id", ctrl.Update)
	admin.DELETE("/vehicles/:id", ctrl.Delete)
}
