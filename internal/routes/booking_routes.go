package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func BookingRoutes(public, admin *gin.RouterGroup, ctrl *controllers.BookingController) {
	public.POST("/bookings", ctrl.Create)

	admin.GET("/bookings", ctrl.List)
	admin.GET("/bookings/:id", ctrl.Get)
	admin.PATCH("/bookings/:id/status", ctrl.UpdateStatus)
	admin.DELETE("/bookings/:id", ctrl.Delete)
}
