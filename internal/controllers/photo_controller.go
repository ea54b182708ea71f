package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type PhotoController struct {
	store storage.Store
}

func NewPhotoController(store storage.Store) *PhotoController {
	return &PhotoController{store: store}
}

type photoInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl" binding:"required"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	TakenDate   string `json:"takenDate"`
	IsFeatured  bool   `json:"isFeatured"`
}

type photoUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Location    *string `json:"location"`
	TakenDate   *string `json:"takenDate"`
	IsFeatured  *bool   `json:"isFeatured"`
}

func parseTakenDate(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (ctrl *PhotoController) List(c *gin.Context) {
	photos, err := ctrl.store.Photos()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (ctrl *PhotoController) Featured(c *gin.Context) {
	photos, err := ctrl.store.FeaturedPhotos()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (ctrl *PhotoController) Get(c *gin.Context) {
	photo, err := ctrl.store.Photo(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (ctrl *PhotoController) Create(c *gin.Context) {
	var input photoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid photo input: " + err.Error()})
		return
	}

	photo := models.SafariPhoto{
		Title:       input.Title,
		Description: input.Description,
		ImageUrl:    input.ImageUrl,
		Category:    input.Category,
		Location:    input.Location,
		IsFeatured:  input.IsFeatured,
	}
	if input.TakenDate != "" {
		d, err := parseTakenDate(input.TakenDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "takenDate must be YYYY-MM-DD"})
			return
		}
		photo.TakenDate = d
	}
	if err := ctrl.store.CreatePhoto(&photo); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (ctrl *PhotoController) Update(c *gin.Context) {
	var input photoUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid photo update: " + err.Error()})
		return
	}

	upd := storage.PhotoUpdate{
		Title:       input.Title,
		Description: input.Description,
		ImageUrl:    input.ImageUrl,
		Category:    input.Category,
		Location:    input.Location,
		IsFeatured:  input.IsFeatured,
	}
	if input.TakenDate != nil && *input.TakenDate != "" {
		d, err := parseTakenDate(*input.TakenDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "takenDate must be YYYY-MM-DD"})
			return
		}
		upd.TakenDate = d
	}
	photo, err := ctrl.store.UpdatePhoto(c.Param("id"), upd)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (ctrl *PhotoController) Delete(c *gin.Context) {
	if err := ctrl.store.DeletePhoto(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
