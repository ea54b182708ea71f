package routes

import (
	"github.com/gin-gonic/gin"

	"safari_tours/internal/controllers"
)

// Testimonial creation is public by design: the "share your experience"
// form posts straight here. Only deletion is admin-gated.
func TestimonialRoutes(public, admin *gin.RouterGroup, ctrl *controllers.TestimonialController) {
	public.GET("/testimonials", ctrl.List)
	public.POST("/testimonials", ctrl.Create)

	admin.DELETE("/testimonials/:id", ctrl.Delete)
}
