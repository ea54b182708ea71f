package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"safari_tours/internal/storage"
)

// storageError maps store failures onto the HTTP error contract.
func storageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, storage.ErrReferenced):
		c.JSON(http.StatusConflict, gin.H{"message": "cannot delete: referenced by existing bookings"})
	default:
		logrus.WithError(err).Error("storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Error"})
	}
}
