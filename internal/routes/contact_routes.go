package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func ContactRoutes(public, admin *gin.RouterGroup, ctrl *controllers.ContactController) {
	public.POST("/contacts", ctrl.Create)

	admin.GET("/contacts", ctrl.List)
	admin.PATCH("/contacts/:id/read", ctrl.MarkRead)
	admin.DELETE("/contacts/:id", ctrl.Delete)
}
