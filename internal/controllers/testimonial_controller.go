package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type TestimonialController struct {
	store storage.Store
}

func NewTestimonialController(store storage.Store) *TestimonialController {
	return &TestimonialController{store: store}
}

type testimonialInput struct {
	ClientName string `json:"clientName" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     string `json:"rating" binding:"required"`
	ImageUrl   string `json:"imageUrl"`
}

var validRatings = map[string]bool{"1": true, "2": true, "3": true, "4": true, "5": true}

func (ctrl *TestimonialController) List(c *gin.Context) {
	testimonials, err := ctrl.store.Testimonials()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Create is public: visitors submit testimonials from the "share your
// experience" form and they are published immediately.
func (ctrl *TestimonialController) Create(c *gin.Context) {
	var input testimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid testimonial input: " + err.Error()})
		return
	}
	if !validRatings[input.Rating] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "rating must be a string between \"1\" and \"5\""})
		return
	}

	testimonial := models.Testimonial{
		ClientName: input.ClientName,
		Content:    input.Content,
		Rating:     input.Rating,
		ImageUrl:   input.ImageUrl,
	}
	if err := ctrl.store.CreateTestimonial(&testimonial); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (ctrl *TestimonialController) Delete(c *gin.Context) {
	if err := ctrl.store.DeleteTestimonial(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
