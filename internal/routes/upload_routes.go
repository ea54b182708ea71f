package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

func UploadRoutes(public *gin.RouterGroup, ctrl *controllers.UploadController) {
	public.POST("/upload", ctrl.Upload)
}
