package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

type BookingController struct {
	store storage.Store
}

func NewBookingController(store storage.Store) *BookingController {
	return &BookingController{store: store}
}

// bookingInput deliberately has no status field: every new lead starts
// out pending no matter what the client sends.
type bookingInput struct {
	CustomerName  string  `json:"customerName" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone" binding:"required"`
	PackageID     *string `json:"packageId"`
	VehicleID     *string `json:"vehicleId"`
	Message       string  `json:"message" binding:"required"`
	PreferredDate string  `json:"preferredDate"`
	GuestCount    *int    `json:"guestCount"`
	InquiryKind   string  `json:"inquiryKind"`
}

func (ctrl *BookingController) List(c *gin.Context) {
	bookings, err := ctrl.store.Bookings()
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) Get(c *gin.Context) {
	booking, err := ctrl.store.Booking(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) Create(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking input: " + err.Error()})
		return
	}

	booking := models.Booking{
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Phone:        input.Phone,
		PackageID:    input.PackageID,
		VehicleID:    input.VehicleID,
		Message:      input.Message,
		GuestCount:   input.GuestCount,
		InquiryKind:  input.InquiryKind,
		Status:       models.BookingPending,
	}
	if input.PreferredDate != "" {
		d, err := time.Parse("2006-01-02", input.PreferredDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "preferredDate must be YYYY-MM-DD"})
			return
		}
		booking.PreferredDate = &d
	}
	if err := ctrl.store.CreateBooking(&booking); err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status input: " + err.Error()})
		return
	}
	next, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := ctrl.store.Booking(c.Param("id"))
	if err != nil {
		storageError(c, err)
		return
	}
	if !booking.Status.CanTransitionTo(next) {
		c.JSON(http.StatusConflict, gin.H{
			"message": fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, next),
		})
		return
	}

	updated, err := ctrl.store.UpdateBookingStatus(booking.ID, next)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctrl *BookingController) Delete(c *gin.Context) {
	if err := ctrl.store.DeleteBooking(c.Param("id")); err != nil {
		storageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
