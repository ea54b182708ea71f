package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func AuthRoutes(public *gin.RouterGroup, ctrl *controllers.AuthController) {
	public.POST("/login", ctrl.Login)
	public.POST("/logout", ctrl.Logout)
	public.GET("/auth/user", ctrl.CurrentUser)
}
