package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func DashboardRoutes(admin *gin.RouterGroup, ctrl *controllers.DashboardController) {
	admin.GET("/admin/dashboard", ctrl.Stats)
}
