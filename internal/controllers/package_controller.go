package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type PackageController struct {
	store storage.Store
}

func NewPackageController(store storage.Store) *PackageController {
	return &PackageController{store: store}
}

type packageInput struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Duration    string            `json:"duration" binding:"required"`
	Price       string            `json:"price" binding:"required"`
	Itinerary   models.StringList `json:"itinerary" binding:"required"`
	ImageUrl    string            `json:"imageUrl"`
	IsPopular   bool              `json:"isPopular"`
}

func (ctrl *PackageController) List(c *gin.Context) {
	packages, err := ctrl.store.Packages()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (ctrl *PackageController) Get(c *gin.Context) {
	pkg, err := ctrl.store.Package(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (ctrl *PackageController) Create(c *gin.Context) {
	var input packageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid package input: " + err.Error()})
		return
	}

	pkg := models.Package{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Price:       input.Price,
		Itinerary:   input.Itinerary,
		ImageUrl:    input.ImageUrl,
		IsPopular:   input.IsPopular,
	}
	if err := ctrl.store.CreatePackage(&pkg); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (ctrl *PackageController) Update(c *gin.Context) {
	var upd storage.PackageUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid package update: " + err.Error()})
		return
	}
	pkg, err := ctrl.store.UpdatePackage(c.Param("id"), upd)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (ctrl *PackageController) Delete(c *gin.Context) {
	if err := ctrl.store.DeletePackage(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
