package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type VehicleController struct {
	store storage.Store
}

func NewVehicleController(store storage.Store) *VehicleController {
	return &VehicleController{store: store}
}

type vehicleInput struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Capacity    string            `json:"capacity" binding:"required"`
	Features    models.StringList `json:"features" binding:"required"`
	ImageUrl    string            `json:"imageUrl"`
	Status      string            `json:"status"`
}

func (ctrl *VehicleController) List(c *gin.Context) {
	vehicles, err := ctrl.store.Vehicles()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (ctrl *VehicleController) Get(c *gin.Context) {
	vehicle, err := ctrl.store.Vehicle(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (ctrl *VehicleController) Create(c *gin.Context) {
	var input vehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid vehicle input: " + err.Error()})
		return
	}
	if input.Status == "" {
		input.Status = "available"
	}

	vehicle := models.Vehicle{
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		Features:    input.Features,
		ImageUrl:    input.ImageUrl,
		Status:      input.Status,
	}
	if err := ctrl.store.CreateVehicle(&vehicle); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (ctrl *VehicleController) Update(c *gin.Context) {
	var upd storage.VehicleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid vehicle update: " + err.Error()})
		return
	}
	vehicle, err := ctrl.store.UpdateVehicle(c.Param("id"), upd)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (ctrl *VehicleController) Delete(c *gin.Context) {
	if err := ctrl.store.DeleteVehicle(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
